package auth

import (
	"context"
	"os"
	"testing"

	"github.com/fptrack/attendance-backend-go/internal/domain/auth"
	"github.com/fptrack/attendance-backend-go/internal/domain/user"
	"github.com/fptrack/attendance-backend-go/internal/pkg/database"
	"github.com/fptrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/fptrack/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret = "test-secret-key-for-assertions"
	testExp    = "1h"
)

var testAuthDB *database.DB

func authTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}
	if testAuthDB != nil {
		return
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := testAuthDB.Exec(ctx, "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)
}

func newTestAuthService() (auth.AuthService, user.UserRepository) {
	userRepo := postgresql.NewUserRepository(testAuthDB)
	jwtService := jwt.NewJWTService(testSecret, testExp)
	return NewAuthService(userRepo, jwtService), userRepo
}

func createActiveUser(t *testing.T, ctx context.Context, userRepo user.UserRepository, username string, role user.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	err = userRepo.Create(ctx, &user.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	})
	require.NoError(t, err)
}

func TestAuthService_Register_StartsPending(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService()

	resp, err := svc.Register(ctx, auth.RegisterRequest{Username: "newcomer", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, string(user.RolePending), resp.Role)
	assert.False(t, resp.IsActive)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService()

	_, err := svc.Register(ctx, auth.RegisterRequest{Username: "newcomer", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, auth.RegisterRequest{Username: "newcomer", Password: "password456"})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, userRepo := newTestAuthService()
	createActiveUser(t, ctx, userRepo, "jane", user.RoleUser)

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "jane", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, string(user.RoleUser), resp.Role)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, userRepo := newTestAuthService()
	createActiveUser(t, ctx, userRepo, "jane", user.RoleUser)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "jane", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService()

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "ghost", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_PendingAccountRejected(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService()

	_, err := svc.Register(ctx, auth.RegisterRequest{Username: "newcomer", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Username: "newcomer", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrAccountNotApproved)
}

func TestAuthService_VerifyAssertion_RoundTrip(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, userRepo := newTestAuthService()
	createActiveUser(t, ctx, userRepo, "jane", user.RoleSecondaryAdmin)

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "jane", Password: "password123"})
	require.NoError(t, err)

	identity, err := svc.VerifyAssertion(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "jane", identity.Username)
	assert.Equal(t, user.RoleSecondaryAdmin, identity.Role)
}

func TestAuthService_VerifyAssertion_DemotionTakesEffect(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, userRepo := newTestAuthService()
	createActiveUser(t, ctx, userRepo, "jane", user.RoleSecondaryAdmin)

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "jane", Password: "password123"})
	require.NoError(t, err)

	u, err := userRepo.GetByUsername(ctx, "jane")
	require.NoError(t, err)
	require.NoError(t, userRepo.UpdateRole(ctx, u.ID, user.RoleUser))

	identity, err := svc.VerifyAssertion(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, identity.Role)
}

func TestAuthService_Logout_RevokesAssertion(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, userRepo := newTestAuthService()
	createActiveUser(t, ctx, userRepo, "jane", user.RoleUser)

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "jane", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))

	_, err = svc.VerifyAssertion(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrAssertionRevoked)
}

func TestAuthService_Authorize_RoleGate(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, userRepo := newTestAuthService()
	createActiveUser(t, ctx, userRepo, "jane", user.RoleUser)

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "jane", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, resp.AccessToken, user.ActionViewReports)
	assert.NoError(t, err)

	_, err = svc.Authorize(ctx, resp.AccessToken, user.ActionManageAccounts)
	assert.ErrorIs(t, err, user.ErrInsufficientRole)
}
