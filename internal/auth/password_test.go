package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/auth"
)

// small cost parameters keep the tests fast
func testParams() auth.Params {
	return auth.Params{Memory: 8 * 1024, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32}
}

func TestHashPassword_PHCFormat(t *testing.T) {
	phc, err := auth.HashPassword("secret123", testParams())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(phc, "$argon2id$v=19$m=8192,t=1,p=1$"))
	assert.Len(t, strings.Split(phc, "$"), 6)
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	_, err := auth.HashPassword("", testParams())
	assert.Error(t, err)

	_, err = auth.HashPassword("   ", testParams())
	assert.Error(t, err)
}

func TestHashPassword_SaltVaries(t *testing.T) {
	a, err := auth.HashPassword("secret123", testParams())
	require.NoError(t, err)
	b, err := auth.HashPassword("secret123", testParams())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPassword(t *testing.T) {
	phc, err := auth.HashPassword("secret123", testParams())
	require.NoError(t, err)

	assert.True(t, auth.VerifyPassword("secret123", phc))
	assert.False(t, auth.VerifyPassword("wrong", phc))
	assert.False(t, auth.VerifyPassword("", phc))
}

func TestVerifyPassword_MalformedPHC(t *testing.T) {
	assert.False(t, auth.VerifyPassword("secret123", ""))
	assert.False(t, auth.VerifyPassword("secret123", "not-a-phc-string"))
	assert.False(t, auth.VerifyPassword("secret123", "$bcrypt$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA"))
}
