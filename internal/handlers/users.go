// internal/handlers/users.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gmao/internal/auth"
	httpserver "gmao/internal/http"
	"gmao/internal/models"
	"gmao/internal/repo"
)

// User management gets dedicated handlers instead of the generic CRUD mount:
// plaintext passwords arrive in the request body and must be hashed before
// they reach the repository, and hashes must never leave it.

type userBody struct {
	Username string      `json:"username"`
	Password string      `json:"password,omitempty"`
	Role     models.Role `json:"role"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Active   bool        `json:"active"`
}

func mountUsers(r chi.Router, users *repo.Collection[models.User]) {
	r.Route("/users", func(sr chi.Router) {
		sr.Get("/", func(w http.ResponseWriter, req *http.Request) {
			records, err := users.All(req.Context())
			if err != nil {
				httpserver.Error(w, err, "list failed")
				return
			}
			out := make([]models.User, 0, len(records))
			for _, u := range records {
				out = append(out, sanitizeUser(u))
			}
			httpserver.JSON(w, http.StatusOK, out)
		})

		sr.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, ok := urlID(req)
			if !ok {
				httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}
			u, err := users.Get(req.Context(), id)
			if err != nil {
				httpserver.Error(w, err, "get failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, sanitizeUser(u))
		})

		sr.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var body userBody
			if !decodeBody(w, req, &body) {
				return
			}
			if body.Password == "" {
				httpserver.Error(w, models.Invalid("password", "required"), "create failed")
				return
			}
			hash, err := auth.HashPassword(body.Password, auth.DefaultParams())
			if err != nil {
				httpserver.Error(w, err, "create failed")
				return
			}
			stored, err := users.Add(req.Context(), models.User{
				Username:     body.Username,
				PasswordHash: hash,
				Role:         body.Role,
				FullName:     body.FullName,
				Email:        body.Email,
				Active:       body.Active,
			})
			if err != nil {
				httpserver.Error(w, err, "create failed")
				return
			}
			httpserver.JSON(w, http.StatusCreated, sanitizeUser(stored))
		})

		sr.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, ok := urlID(req)
			if !ok {
				httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}
			var body userBody
			if !decodeBody(w, req, &body) {
				return
			}
			current, err := users.Get(req.Context(), id)
			if err != nil {
				httpserver.Error(w, err, "update failed")
				return
			}
			// Blank password keeps the stored hash.
			hash := current.PasswordHash
			if body.Password != "" {
				hash, err = auth.HashPassword(body.Password, auth.DefaultParams())
				if err != nil {
					httpserver.Error(w, err, "update failed")
					return
				}
			}
			stored, err := users.Update(req.Context(), id, models.User{
				Username:     body.Username,
				PasswordHash: hash,
				Role:         body.Role,
				FullName:     body.FullName,
				Email:        body.Email,
				Active:       body.Active,
				LastLogin:    current.LastLogin,
			})
			if err != nil {
				httpserver.Error(w, err, "update failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, sanitizeUser(stored))
		})

		sr.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, ok := urlID(req)
			if !ok {
				httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}
			if err := users.Delete(req.Context(), id); err != nil {
				httpserver.Error(w, err, "delete failed")
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}
