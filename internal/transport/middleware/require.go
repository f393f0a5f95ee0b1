package middleware

import (
	"net/http"

	"github.com/heartmarshall/premier-dashboard/pkg/ctxutil"
)

// RequireUser rejects requests that did not carry a valid access token.
// It must run after Auth.
func RequireUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.IdentityFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
