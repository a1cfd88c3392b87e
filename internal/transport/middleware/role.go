package middleware

import (
	"net/http"

	"github.com/dingla0/TranslationTracker/pkg/ctxutil"
)

// RequireRole rejects requests whose caller lacks role: 401 when anonymous,
// 403 when authenticated with a different role.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
				return
			}
			if !ctxutil.HasRole(r.Context(), role) {
				writeError(w, http.StatusForbidden, "FORBIDDEN", "requires role "+role)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
