package httpx

import (
	"net/http"
	"strings"
)

// TokenMiddleware lifts the bearer token into the request context. The token
// is not verified here: it only drives which controls are enabled, and the
// catalog API checks it on every forwarded call.
func TokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			if token = strings.TrimSpace(token); token != "" {
				r = r.WithContext(ContextWithToken(r.Context(), token))
			}
		}
		next.ServeHTTP(w, r)
	})
}
