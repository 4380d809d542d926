// internal/repo/repo.go
package repo

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"gmao/internal/models"
	"gmao/internal/store"
)

// UniqueKey names a field whose (normalized) value must be unique within the
// collection, and must be non-empty.
type UniqueKey[T any] struct {
	Field string
	Value func(T) string
}

// Descriptor wires one entity type into the generic collection machinery.
type Descriptor[T any] struct {
	Collection string
	ID         func(T) int64
	SetID      func(*T, int64)

	// Business code, derived from the allocated id. Zero CodePrefix means
	// the entity has no code field.
	CodePrefix string
	CodeWidth  int
	Code       func(T) string
	SetCode    func(*T, string)

	UniqueKeys []UniqueKey[T]

	// Defaults is applied to a record before validation on Add.
	Defaults func(*T)
	// Validate runs on Add and Update with the registry lock held; it may
	// read sibling collections through their *Locked accessors.
	Validate func(ctx context.Context, rec T) error
	// DeleteCheck runs on Delete with the registry lock held.
	DeleteCheck func(ctx context.Context, rec T) error
	// Seed provides the fixed record set used to initialize an absent
	// collection.
	Seed func() []T
}

// Collection is a load/add/update/delete/get-all repository over one named
// collection. Every mutation rewrites the full collection snapshot through
// the backend. All public methods serialize on a registry-wide mutex so at
// most one mutation runs at a time and reads see linearizable state.
type Collection[T any] struct {
	backend store.Backend
	alloc   *Allocator
	desc    Descriptor[T]

	mu      *sync.Mutex // shared across the registry
	loaded  bool
	records []T
}

func newCollection[T any](backend store.Backend, alloc *Allocator, mu *sync.Mutex, desc Descriptor[T]) *Collection[T] {
	return &Collection[T]{backend: backend, alloc: alloc, desc: desc, mu: mu}
}

// Name returns the persisted collection name.
func (c *Collection[T]) Name() string { return c.desc.Collection }

// load pulls the collection from the backend on first access. An absent
// collection is initialized with the seed set and persisted immediately.
func (c *Collection[T]) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	payload, ok, err := c.backend.Load(ctx, c.desc.Collection)
	if err != nil {
		return err
	}
	if !ok {
		c.records = nil
		if c.desc.Seed != nil {
			c.records = c.desc.Seed()
		}
		c.primeAllocator()
		if err := c.persist(ctx); err != nil {
			return err
		}
		c.loaded = true
		slog.Info("collection seeded", "collection", c.desc.Collection, "records", len(c.records))
		return nil
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return &models.StorageError{Op: "decode", Collection: c.desc.Collection, Err: err}
	}
	c.records = records
	c.primeAllocator()
	c.loaded = true
	return nil
}

func (c *Collection[T]) primeAllocator() {
	var max int64
	for _, r := range c.records {
		if id := c.desc.ID(r); id > max {
			max = id
		}
	}
	c.alloc.Prime(c.desc.Collection, max)
}

func (c *Collection[T]) persist(ctx context.Context) error {
	records := c.records
	if records == nil {
		records = []T{}
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &models.StorageError{Op: "encode", Collection: c.desc.Collection, Err: err}
	}
	return c.backend.Save(ctx, c.desc.Collection, payload)
}

// cloneRecords returns a deep copy so callers can never mutate cached state.
func cloneRecords[T any](in []T) ([]T, error) {
	if len(in) == 0 {
		return []T{}, nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func cloneRecord[T any](in T) (T, error) {
	var out T
	b, err := json.Marshal(in)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(b, &out)
	return out, err
}

// ---------- locked accessors (registry mutex held by the caller) ----------

func (c *Collection[T]) allLocked(ctx context.Context) ([]T, error) {
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	return cloneRecords(c.records)
}

func (c *Collection[T]) getLocked(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := c.load(ctx); err != nil {
		return zero, err
	}
	for _, r := range c.records {
		if c.desc.ID(r) == id {
			return cloneRecord(r)
		}
	}
	return zero, models.ErrNotFound
}

func (c *Collection[T]) checkUnique(rec T, selfID int64) error {
	for _, key := range c.desc.UniqueKeys {
		want := key.Value(rec)
		if want == "" {
			return models.Invalid(key.Field, "required")
		}
		for _, other := range c.records {
			if c.desc.ID(other) == selfID {
				continue
			}
			if key.Value(other) == want {
				return models.Invalid(key.Field, "already in use")
			}
		}
	}
	return nil
}

func (c *Collection[T]) addLocked(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := c.load(ctx); err != nil {
		return zero, err
	}
	if c.desc.Defaults != nil {
		c.desc.Defaults(&rec)
	}
	id := c.alloc.NextID(c.desc.Collection)
	c.desc.SetID(&rec, id)
	if c.desc.SetCode != nil && c.desc.Code(rec) == "" {
		c.desc.SetCode(&rec, FormatCode(c.desc.CodePrefix, c.desc.CodeWidth, id))
	}
	if err := c.checkUnique(rec, id); err != nil {
		return zero, err
	}
	if c.desc.Validate != nil {
		if err := c.desc.Validate(ctx, rec); err != nil {
			return zero, err
		}
	}
	c.records = append(c.records, rec)
	if err := c.persist(ctx); err != nil {
		c.records = c.records[:len(c.records)-1]
		return zero, err
	}
	return cloneRecord(rec)
}

func (c *Collection[T]) updateLocked(ctx context.Context, id int64, rec T) (T, error) {
	var zero T
	if err := c.load(ctx); err != nil {
		return zero, err
	}
	idx := -1
	for i, r := range c.records {
		if c.desc.ID(r) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, models.ErrNotFound
	}
	c.desc.SetID(&rec, id)
	// The allocated code is immutable; a blank code on update keeps it.
	if c.desc.SetCode != nil && c.desc.Code(rec) == "" {
		c.desc.SetCode(&rec, c.desc.Code(c.records[idx]))
	}
	if err := c.checkUnique(rec, id); err != nil {
		return zero, err
	}
	if c.desc.Validate != nil {
		if err := c.desc.Validate(ctx, rec); err != nil {
			return zero, err
		}
	}
	prev := c.records[idx]
	c.records[idx] = rec
	if err := c.persist(ctx); err != nil {
		c.records[idx] = prev
		return zero, err
	}
	return cloneRecord(rec)
}

func (c *Collection[T]) deleteLocked(ctx context.Context, id int64) error {
	if err := c.load(ctx); err != nil {
		return err
	}
	idx := -1
	for i, r := range c.records {
		if c.desc.ID(r) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.ErrNotFound
	}
	if c.desc.DeleteCheck != nil {
		if err := c.desc.DeleteCheck(ctx, c.records[idx]); err != nil {
			return err
		}
	}
	prev := c.records
	c.records = append(append([]T{}, prev[:idx]...), prev[idx+1:]...)
	if err := c.persist(ctx); err != nil {
		c.records = prev
		return err
	}
	return nil
}

// ---------- public API ----------

// All returns a snapshot of the current collection.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allLocked(ctx)
}

// Get returns the record with the given id, or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(ctx, id)
}

// Add allocates an id (and business code), validates the record, appends it
// and persists the full collection. The stored record is returned.
func (c *Collection[T]) Add(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addLocked(ctx, rec)
}

// Update replaces the record with the given id in full.
func (c *Collection[T]) Update(ctx context.Context, id int64, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateLocked(ctx, id, rec)
}

// Delete removes the record with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleteLocked(ctx, id)
}

// Mutate applies fn to a copy of the record with the given id and persists
// the result, all under the registry lock. State-machine transitions go
// through here so a concurrent writer can never act on a stale record.
func (c *Collection[T]) Mutate(ctx context.Context, id int64, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	rec, err := c.getLocked(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := fn(&rec); err != nil {
		return zero, err
	}
	return c.updateLocked(ctx, id, rec)
}
