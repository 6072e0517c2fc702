package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fptrack/attendance-backend-go/internal/domain/auth"
	"github.com/fptrack/attendance-backend-go/internal/handler/http/response"
)

type identityKey struct{}
type tokenKey struct{}

// BearerToken extracts the raw assertion from the Authorization header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}

// AuthRequired verifies the assertion on every request and stores the
// resulting identity in the request context. Role checks are layered on top
// with RequireAction.
func AuthRequired(authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				response.Unauthorized(w, "Missing bearer token")
				return
			}

			identity, err := authService.VerifyAssertion(r.Context(), token)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			ctx = context.WithValue(ctx, tokenKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityFromContext returns the identity stored by AuthRequired.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(auth.Identity)
	return identity, ok
}

// TokenFromContext returns the raw assertion stored by AuthRequired.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok
}
