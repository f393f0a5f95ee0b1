package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/premier-dashboard/pkg/ctxutil"
)

//go:generate moq -out authenticator_mock_test.go -pkg middleware . authenticator

type authenticator interface {
	Authenticate(ctx context.Context, token string) (ctxutil.Identity, error)
}

// Auth resolves a bearer token into the account id and role on the context.
// Requests without a token pass through anonymously; RequireUser decides
// which routes need one. A token that fails validation is rejected here.
func Auth(authn authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, present := bearerToken(r)
			if !present {
				next.ServeHTTP(w, r)
				return
			}
			id, err := authn.Authenticate(r.Context(), token)
			if err != nil || !id.Valid() {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithIdentity(r.Context(), id)))
		})
	}
}

// bearerToken extracts the token of an "Authorization: Bearer" header. The
// scheme is matched case-insensitively. present is false when no bearer
// credentials were sent at all.
func bearerToken(r *http.Request) (token string, present bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, rest, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
