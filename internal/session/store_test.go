package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/models"
	"gmao/internal/session"
)

func TestStore_CreateGetDelete(t *testing.T) {
	s := session.NewStore()

	id := s.Create(models.Session{
		UserID: 1, Username: "admin", Role: models.RoleAdmin,
		Expiry: time.Now().Add(time.Hour),
	})
	require.NotEmpty(t, id)

	sess, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, int64(1), sess.UserID)
	assert.Equal(t, "admin", sess.Username)

	s.Delete(id)
	_, ok = s.Get(id)
	assert.False(t, ok)
}

func TestStore_OpaqueIDsUnique(t *testing.T) {
	s := session.NewStore()
	a := s.Create(models.Session{UserID: 1})
	b := s.Create(models.Session{UserID: 1})
	assert.NotEqual(t, a, b)
}

func TestStore_ExpiredSessionsRejected(t *testing.T) {
	s := session.NewStore()
	id := s.Create(models.Session{UserID: 1, Expiry: time.Now().Add(-time.Minute)})

	_, ok := s.Get(id)
	assert.False(t, ok)

	// lazily deleted on read
	_, ok = s.Get(id)
	assert.False(t, ok)
}

func TestStore_ZeroExpiryNeverExpires(t *testing.T) {
	s := session.NewStore()
	id := s.Create(models.Session{UserID: 1})

	_, ok := s.Get(id)
	assert.True(t, ok)
}
