// internal/service/credentials.go
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gmao/internal/auth"
	"gmao/internal/models"
	"gmao/internal/repo"
)

// Authenticator verifies local credentials against the user collection.
// There is no lockout or rate limiting at this layer.
type Authenticator struct {
	users *repo.Collection[models.User]
}

func NewAuthenticator(users *repo.Collection[models.User]) *Authenticator {
	return &Authenticator{users: users}
}

// Authenticate looks up an active user by username, verifies the password
// and, on success, stamps and persists last_login. Any failure returns
// ErrAuthentication without touching stored state.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return models.User{}, models.ErrAuthentication
	}
	users, err := a.users.All(ctx)
	if err != nil {
		return models.User{}, err
	}
	var found *models.User
	for i := range users {
		if strings.ToLower(users[i].Username) == username {
			found = &users[i]
			break
		}
	}
	if found == nil || !found.Active {
		slog.DebugContext(ctx, "login rejected", "username", username, "reason", "unknown or inactive")
		return models.User{}, models.ErrAuthentication
	}
	if !auth.VerifyPassword(password, found.PasswordHash) {
		slog.DebugContext(ctx, "login rejected", "username", username, "reason", "bad password")
		return models.User{}, models.ErrAuthentication
	}
	now := time.Now().UTC()
	found.LastLogin = &now
	updated, err := a.users.Update(ctx, found.ID, *found)
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}
