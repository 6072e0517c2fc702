package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/fptrack/attendance-backend-go/internal/handler/http/response"
)

// RequireDeviceKey authenticates kiosk devices by shared API key. Devices
// are not users; they carry no role and can only reach the mark endpoints.
func RequireDeviceKey(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-Key")
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				response.Unauthorized(w, "Invalid device API key")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
