// internal/repo/allocator.go
package repo

import (
	"fmt"
	"sync"
)

// Allocator hands out collection-scoped numeric ids. It keeps a high-water
// mark per collection so an id is allocated once and never reused, even after
// the record holding the current maximum is deleted.
type Allocator struct {
	mu   sync.Mutex
	last map[string]int64
}

func NewAllocator() *Allocator {
	return &Allocator{last: make(map[string]int64)}
}

// Prime raises the high-water mark for a collection to at least maxID.
// Called once per collection when it is first loaded from the backend.
func (a *Allocator) Prime(collection string, maxID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if maxID > a.last[collection] {
		a.last[collection] = maxID
	}
}

// NextID returns the next id for a collection: high-water mark + 1.
func (a *Allocator) NextID(collection string) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last[collection]++
	return a.last[collection]
}

// FormatCode renders a business code from an allocated sequence number,
// e.g. FormatCode("INT", 4, 4) == "INT0004".
func FormatCode(prefix string, width int, seq int64) string {
	return fmt.Sprintf("%s%0*d", prefix, width, seq)
}
