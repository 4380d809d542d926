// internal/handlers/auth.go
package handlers

import (
	"net/http"
	"time"

	"gmao/internal/auth"
	httpserver "gmao/internal/http"
	"gmao/internal/models"
	"gmao/internal/service"
)

const sessionTTL = 8 * time.Hour

func sanitizeUser(u models.User) models.User {
	u.PasswordHash = ""
	return u
}

// POST /auth/login
// Body: { "username": "...", "password": "..." }
func LoginHandler(authn *service.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if !decodeBody(w, req, &body) {
			return
		}
		user, err := authn.Authenticate(req.Context(), body.Username, body.Password)
		if err != nil {
			httpserver.Error(w, err, "login failed")
			return
		}
		auth.SetSessionCookie(w, models.Session{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
			Expiry:   time.Now().Add(sessionTTL),
		})
		httpserver.JSON(w, http.StatusOK, sanitizeUser(user))
	}
}

// POST /auth/logout
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		auth.ClearSessionCookie(w, req)
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /auth/me
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		u, ok := auth.UserFromContext(req.Context())
		if !ok || u == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		httpserver.JSON(w, http.StatusOK, sanitizeUser(*u))
	}
}
