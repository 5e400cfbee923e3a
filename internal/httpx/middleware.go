package httpx

import (
	"net/http"
	"strings"

	"github.com/puregold/inventory-api/internal/auth"
)

// RequireAuth verifies the bearer token and stores the acting user in the
// request context. Handlers pass the actor id into core calls explicitly.
func RequireAuth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if raw == "" || raw == r.Header.Get("Authorization") {
				writeError(w, auth.ErrInvalidToken)
				return
			}
			actor, err := tokens.Verify(raw)
			if err != nil {
				writeError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}
