package middleware

import (
	"net/http"

	"github.com/fptrack/attendance-backend-go/internal/domain/user"
	"github.com/fptrack/attendance-backend-go/internal/handler/http/response"
)

// RequireAction gates a route on the permission table. It must run after
// AuthRequired.
func RequireAction(action user.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Missing bearer token")
				return
			}

			if !user.Allowed(identity.Role, action) {
				response.HandleError(w, user.ErrInsufficientRole)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
