package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/store"
)

func TestJSONFile_LoadAbsent(t *testing.T) {
	s, err := store.NewJSONFile(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Load(context.Background(), "equipements")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJSONFile_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewJSONFile(dir)
	require.NoError(t, err)

	payload := []byte(`[{"id":1,"name":"Presse hydraulique"}]`)
	require.NoError(t, s.Save(context.Background(), "equipements", payload))

	got, ok, err := s.Load(context.Background(), "equipements")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, got)

	// one file per collection, no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "equipements.json", entries[0].Name())
}

func TestJSONFile_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewJSONFile(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "stocks", []byte(`[]`)))
	require.NoError(t, s.Save(ctx, "stocks", []byte(`[{"id":1}]`)))

	got, ok, err := s.Load(ctx, "stocks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), got)
}

func TestJSONFile_CollectionsIsolated(t *testing.T) {
	s, err := store.NewJSONFile(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "stocks", []byte(`[1]`)))
	require.NoError(t, s.Save(ctx, "outillages", []byte(`[2]`)))

	a, _, err := s.Load(ctx, "stocks")
	require.NoError(t, err)
	b, _, err := s.Load(ctx, "outillages")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := store.Open("etcd", "", "")
	assert.Error(t, err)
}

func TestOpen_JSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	b, err := store.Open("json", dir, "")
	require.NoError(t, err)
	defer b.Close()

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
