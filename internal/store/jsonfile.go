// internal/store/jsonfile.go
package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gmao/internal/models"
)

// JSONFile persists each collection as <dir>/<collection>.json. Writes go
// through a temp file, fsync and rename so a crash cannot leave a
// half-written document behind.
type JSONFile struct {
	dir string
	mu  sync.Mutex
}

func NewJSONFile(dir string) (*JSONFile, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, &models.StorageError{Op: "mkdir", Collection: dir, Err: err}
	}
	return &JSONFile{dir: dir}, nil
}

func (s *JSONFile) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *JSONFile) Load(_ context.Context, collection string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(collection))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &models.StorageError{Op: "read", Collection: collection, Err: err}
	}
	return b, true, nil
}

func (s *JSONFile) Save(_ context.Context, collection string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+collection+"-*")
	if err != nil {
		return &models.StorageError{Op: "write", Collection: collection, Err: err}
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return &models.StorageError{Op: "write", Collection: collection, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &models.StorageError{Op: "sync", Collection: collection, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &models.StorageError{Op: "close", Collection: collection, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		return &models.StorageError{Op: "rename", Collection: collection, Err: err}
	}
	return nil
}

func (s *JSONFile) Close() error { return nil }
