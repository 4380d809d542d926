package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/auth"
	"gmao/internal/models"
	"gmao/internal/service"
)

func TestAuthenticate_Success(t *testing.T) {
	reg := newRegistry(t)
	authn := service.NewAuthenticator(reg.Users)
	ctx := context.Background()

	u, err := authn.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, models.RoleAdmin, u.Role)
	require.NotNil(t, u.LastLogin)

	// last_login was persisted
	stored, err := reg.Users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestAuthenticate_UsernameNormalized(t *testing.T) {
	reg := newRegistry(t)
	authn := service.NewAuthenticator(reg.Users)

	u, err := authn.Authenticate(context.Background(), "  ADMIN ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
}

func TestAuthenticate_BadPassword(t *testing.T) {
	reg := newRegistry(t)
	authn := service.NewAuthenticator(reg.Users)
	ctx := context.Background()

	_, err := authn.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, models.ErrAuthentication)

	// a failed attempt leaves stored state untouched
	stored, err := reg.Users.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, stored.LastLogin)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	reg := newRegistry(t)
	authn := service.NewAuthenticator(reg.Users)

	_, err := authn.Authenticate(context.Background(), "ghost", "admin123")
	assert.ErrorIs(t, err, models.ErrAuthentication)
}

func TestAuthenticate_EmptyCredentials(t *testing.T) {
	reg := newRegistry(t)
	authn := service.NewAuthenticator(reg.Users)

	_, err := authn.Authenticate(context.Background(), "", "admin123")
	assert.ErrorIs(t, err, models.ErrAuthentication)
	_, err = authn.Authenticate(context.Background(), "admin", "")
	assert.ErrorIs(t, err, models.ErrAuthentication)
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	reg := newRegistry(t)
	authn := service.NewAuthenticator(reg.Users)
	ctx := context.Background()

	hash, err := auth.HashPassword("leaver123", auth.Params{
		Memory: 8 * 1024, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32,
	})
	require.NoError(t, err)
	_, err = reg.Users.Add(ctx, models.User{
		Username: "pleaver", PasswordHash: hash, Role: models.RoleTechnician, Active: false,
	})
	require.NoError(t, err)

	_, err = authn.Authenticate(ctx, "pleaver", "leaver123")
	assert.ErrorIs(t, err, models.ErrAuthentication)
}
