// internal/middleware/auth.go
package middleware

import (
	"net/http"

	"gmao/internal/auth"
	"gmao/internal/repo"
)

// RequireAuth authenticates using the "session" cookie (auth.ReadSession),
// then loads the user by Session.UserID and injects both session and user
// into the context. Deactivated accounts lose access immediately, whatever
// their session expiry says.
func RequireAuth(reg *repo.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s := auth.ReadSession(req)
			if s == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := reg.Users.Get(req.Context(), s.UserID)
			if err != nil || !user.Active {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := auth.WithSession(req.Context(), s)
			ctx = auth.WithUser(ctx, &user)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
