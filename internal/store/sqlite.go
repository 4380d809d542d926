// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"gmao/internal/models"
)

// SQLite keeps every collection payload in a single two-column table.
// Upserts run inside the engine's per-statement atomicity, which is enough
// for the full-snapshot write model.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "gmao.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &models.StorageError{Op: "open", Collection: path, Err: err}
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, &models.StorageError{Op: "migrate", Collection: "collections", Err: err}
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context, collection string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = ?`, collection).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &models.StorageError{Op: "read", Collection: collection, Err: err}
	}
	return payload, true, nil
}

func (s *SQLite) Save(ctx context.Context, collection string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections(name, payload) VALUES(?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		collection, payload)
	if err != nil {
		return &models.StorageError{Op: "write", Collection: collection, Err: err}
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }
