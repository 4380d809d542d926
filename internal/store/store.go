// Package store provides durable storage of named record collections. Each
// collection is persisted as a single JSON document and rewritten in full on
// every mutation; business logic lives above, in the repositories.
package store

import (
	"context"
	"fmt"
)

// Backend stores one opaque JSON payload per named collection.
type Backend interface {
	// Load returns the current payload for a collection. The second return
	// is false when the collection has never been saved.
	Load(ctx context.Context, collection string) ([]byte, bool, error)
	// Save atomically replaces the payload for a collection. A crash
	// mid-write must never truncate the previously stored payload.
	Save(ctx context.Context, collection string, payload []byte) error
	Close() error
}

// Open constructs a backend from config values. backend is one of
// "json", "sqlite", "postgres".
func Open(backend, dir, dsn string) (Backend, error) {
	switch backend {
	case "", "json":
		return NewJSONFile(dir)
	case "sqlite":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(dsn)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
