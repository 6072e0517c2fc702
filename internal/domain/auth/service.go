package auth

import (
	"context"

	"github.com/fptrack/attendance-backend-go/internal/domain/user"
)

// Identity is the verified content of an assertion: who the caller is and
// which role the signed token carries. Nothing client-supplied beyond the
// token itself is trusted.
type Identity struct {
	Username string
	Role     user.Role
}

type AuthService interface {
	// Register creates an inactive pending account. It cannot log in until a
	// primary admin approves it.
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)

	// Login verifies credentials against stored account state and issues a
	// signed, time-limited assertion. Inactive accounts fail with
	// ErrAccountNotApproved even when the password is correct.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Logout revokes the given assertion.
	Logout(ctx context.Context, token string) error

	// VerifyAssertion checks signature, expiry and revocation of a raw
	// assertion and returns the identity it carries.
	VerifyAssertion(ctx context.Context, token string) (Identity, error)

	// Authorize verifies the assertion and checks the carried role against
	// the permission table for the given action.
	Authorize(ctx context.Context, token string, action user.Action) (Identity, error)
}
