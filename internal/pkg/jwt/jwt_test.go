package jwt

import (
	"testing"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/auth"
	"github.com/fptrack/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-assertions"

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAssertion("jane", user.RoleSecondaryAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	username, role, err := svc.VerifyAssertion(token)
	require.NoError(t, err)
	assert.Equal(t, "jane", username)
	assert.Equal(t, user.RoleSecondaryAdmin, role)
}

func TestJWTService_VerifyTampered(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, _, err := svc.GenerateAssertion("jane", user.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.VerifyAssertion(token + "x")
	assert.ErrorIs(t, err, auth.ErrAssertionInvalid)

	_, _, err = svc.VerifyAssertion("not-a-token")
	assert.ErrorIs(t, err, auth.ErrAssertionInvalid)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer := NewJWTService("other-secret", "1h")
	verifier := NewJWTService(testSecret, "1h")

	token, _, err := issuer.GenerateAssertion("jane", user.RoleUser)
	require.NoError(t, err)

	_, _, err = verifier.VerifyAssertion(token)
	assert.ErrorIs(t, err, auth.ErrAssertionInvalid)
}

func TestJWTService_Revocation(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, _, err := svc.GenerateAssertion("jane", user.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.VerifyAssertion(token)
	require.NoError(t, err)

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	_, _, err = svc.VerifyAssertion(token)
	assert.ErrorIs(t, err, auth.ErrAssertionRevoked)
}

func TestJWTService_RevocationListPruned(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	impl := svc.(*JWTService)

	// An entry whose deadline has passed no longer counts as revoked and is
	// dropped from the list by the next revocation.
	impl.mu.Lock()
	impl.revokedTokens["long-gone"] = time.Now().Add(-time.Minute)
	impl.mu.Unlock()

	assert.False(t, svc.IsTokenRevoked("long-gone"))

	token, _, err := svc.GenerateAssertion("jane", user.RoleUser)
	require.NoError(t, err)
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	impl.mu.RLock()
	_, kept := impl.revokedTokens["long-gone"]
	size := len(impl.revokedTokens)
	impl.mu.RUnlock()
	assert.False(t, kept)
	assert.Equal(t, 1, size)
}
