// internal/store/postgres.go
package store

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"gmao/internal/models"
)

// Postgres mirrors the SQLite layout on a shared server: one row per
// collection, payload replaced wholesale on every save.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	if dsn == "" {
		dsn = "postgres://localhost/gmao?sslmode=disable"
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, &models.StorageError{Op: "open", Collection: "postgres", Err: err}
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &models.StorageError{Op: "ping", Collection: "postgres", Err: err}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, &models.StorageError{Op: "migrate", Collection: "collections", Err: err}
	}
	return &Postgres{db: db}, nil
}

func (s *Postgres) Load(ctx context.Context, collection string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = $1`, collection).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &models.StorageError{Op: "read", Collection: collection, Err: err}
	}
	return payload, true, nil
}

func (s *Postgres) Save(ctx context.Context, collection string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections(name, payload) VALUES($1, $2)
		 ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload`,
		collection, payload)
	if err != nil {
		return &models.StorageError{Op: "write", Collection: collection, Err: err}
	}
	return nil
}

func (s *Postgres) Close() error { return s.db.Close() }
