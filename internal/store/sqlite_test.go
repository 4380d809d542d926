package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/store"
)

func TestSQLite_SaveLoadRoundTrip(t *testing.T) {
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	_, ok, err := s.Load(ctx, "stocks")
	require.NoError(t, err)
	assert.False(t, ok)

	payload := []byte(`[{"id":1,"reference":"ROUL-6204"}]`)
	require.NoError(t, s.Save(ctx, "stocks", payload))

	got, ok, err := s.Load(ctx, "stocks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestSQLite_Upsert(t *testing.T) {
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "users", []byte(`[]`)))
	require.NoError(t, s.Save(ctx, "users", []byte(`[{"id":1}]`)))

	got, ok, err := s.Load(ctx, "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), got)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := store.NewSQLite(path)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "tiers", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Close())

	s2, err := store.NewSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	got, ok, err := s2.Load(ctx, "tiers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), got)
}
