// internal/auth/session.go
package auth

import (
	"context"
	"net/http"
	"time"

	"gmao/internal/models"
	"gmao/internal/session"
)

type ctxKeyUser struct{}
type ctxKeySession struct{}

// cookieSecure controls whether the session cookie is marked Secure.
// Default true; main() overrides based on config for local dev.
var cookieSecure = true

func SetCookieSecurity(secure bool) { cookieSecure = secure }

var sameSiteMode = http.SameSiteLaxMode

// SetCookieSameSite configures the SameSite mode: "lax", "none", "strict".
func SetCookieSameSite(mode string) {
	switch mode {
	case "none":
		sameSiteMode = http.SameSiteNoneMode
	case "strict":
		sameSiteMode = http.SameSiteStrictMode
	default:
		sameSiteMode = http.SameSiteLaxMode
	}
}

// SetSessionCookie stores the session server-side and sets an opaque id cookie.
func SetSessionCookie(w http.ResponseWriter, s models.Session) {
	sid := session.DefaultStore.Create(s)
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: sameSiteMode,
		Expires:  s.Expiry,
	})
}

// ClearSessionCookie deletes the server-side session and expires the cookie.
func ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("session"); err == nil && c.Value != "" {
		session.DefaultStore.Delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: sameSiteMode,
	})
}

// ReadSession resolves the "session" cookie to a live session, or nil.
func ReadSession(r *http.Request) *models.Session {
	c, err := r.Cookie("session")
	if err != nil || c.Value == "" {
		return nil
	}
	sess, ok := session.DefaultStore.Get(c.Value)
	if !ok {
		return nil
	}
	// Return a copy to avoid mutation of store state by callers
	s := sess
	return &s
}

func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, s)
}

func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(ctxKeySession{}).(*models.Session)
	return s, ok
}

func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, u)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ctxKeyUser{}).(*models.User)
	return u, ok
}
