// internal/middleware/require_role.go
package middleware

import (
	"net/http"

	"gmao/internal/auth"
	"gmao/internal/models"
)

var roleLevels = map[models.Role]int{
	models.RoleTechnician: 1,
	models.RoleManager:    2,
	models.RoleAdmin:      3,
}

// RequireRole allows the request through when the authenticated user's role
// is at or above the weakest role in allowed. Must run after RequireAuth.
func RequireRole(allowed ...models.Role) func(http.Handler) http.Handler {
	minAllowedLevel := 9999
	for _, role := range allowed {
		if lvl, ok := roleLevels[role]; ok && lvl < minAllowedLevel {
			minAllowedLevel = lvl
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user, ok := auth.UserFromContext(req.Context())
			if !ok || user == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			userLevel, ok := roleLevels[user.Role]
			if !ok || userLevel < minAllowedLevel {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
