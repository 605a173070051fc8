// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// This is the keyed registry of live solver sessions: the engine never
// stores anything itself, so the hosting layer owns create/read/delete and
// per-key mutual exclusion.
//
// Characteristics:
//   - Stores *Entry objects keyed by session ID in a map.
//   - Registry is concurrency-safe via RWMutex (concurrent reads allowed).
//   - Each Entry carries its own Mutex; handlers hold it across any
//     mutation of the wrapped session, so at most one in-flight request
//     mutates a session at a time.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/solver-server/internal/solver"
)

// ErrNotFound is returned by Get/Delete for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Entry wraps one solver session with its registry key and a lock that
// serializes mutation of the session.
type Entry struct {
	ID        string
	Sess      *solver.Session
	CreatedAt time.Time

	mu sync.Mutex
}

// Lock acquires the per-session mutation lock.
func (e *Entry) Lock() { e.mu.Lock() }

// Unlock releases the per-session mutation lock.
func (e *Entry) Unlock() { e.mu.Unlock() }

// Store defines the registry interface for solver sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Put registers or replaces a session entry.
	Put(ctx context.Context, e *Entry) error

	// Get retrieves an entry by session ID.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete removes an entry. Returns ErrNotFound for unknown IDs.
	Delete(ctx context.Context, id string) error

	// Len reports the number of live sessions.
	Len(ctx context.Context) (int, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards sessions map
	sessions map[string]*Entry // keyed by Entry.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Entry)}
}

// Put adds or replaces the entry in the map.
func (m *memory) Put(ctx context.Context, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[e.ID] = e
	return nil
}

// Get looks up an entry by session ID.
func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sessions[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

// Delete removes an entry by session ID.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (m *memory) Len(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), nil
}
