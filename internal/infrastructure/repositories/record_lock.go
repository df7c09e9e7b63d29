package repositories

import (
	"sync"

	"github.com/google/uuid"
)

// recordLocks serializes mutations per record id. Reads never take a
// lock and mutations to distinct records never contend.
type recordLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newRecordLocks() *recordLocks {
	return &recordLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// lock acquires the mutex for id and returns its release func.
func (r *recordLocks) lock(id uuid.UUID) func() {
	r.mu.Lock()
	m, ok := r.locks[id]
	if !ok {
		m = &sync.Mutex{}
		r.locks[id] = m
	}
	r.mu.Unlock()

	m.Lock()
	return m.Unlock
}
