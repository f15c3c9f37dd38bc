package middleware

import (
	"net/http"
	"slices"
)

// CanAccess - пускает дальше только перечисленные роли.
// Ставится после Authenticate
func CanAccess(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := AccessClaimsFromContext(r.Context())
			if !ok {
				http.Error(w, "access denied", http.StatusForbidden)
				return
			}

			if !slices.Contains(roles, claims.Role) {
				http.Error(w, "access denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
