// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds puzzle sessions for the lifetime of the process.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex; Get takes the write lock to stamp activity.
//   - Sessions idle for longer than the TTL are dropped by Sweep.
//   - Get returns ErrNotFound for missing IDs.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/robalobadob/crossword/apps/go-server/internal/game"
)

// ErrNotFound is returned when no session has the requested ID.
var ErrNotFound = errors.New("store: not found")

// Store defines the persistence interface for puzzle sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete removes a session. Missing IDs are not an error.
	Delete(ctx context.Context, id string) error

	// ListByOwner returns an owner's sessions, newest first.
	ListByOwner(ctx context.Context, owner string) ([]*game.Game, error)
}

type entry struct {
	g    *game.Game
	seen time.Time
}

// Memory is a map-backed Store.
type Memory struct {
	mu    sync.RWMutex
	games map[string]*entry
	now   func() time.Time
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() *Memory {
	return &Memory{games: make(map[string]*entry), now: time.Now}
}

// Save adds or updates the session.
func (m *Memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = &entry{g: g, seen: m.now()}
	return nil
}

// Get looks up a session by ID and marks it as active.
func (m *Memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.games[id]; ok {
		e.seen = m.now()
		return e.g, nil
	}
	return nil, ErrNotFound
}

// Delete removes the session with the given ID.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

// ListByOwner returns the owner's sessions sorted by creation time, newest first.
func (m *Memory) ListByOwner(ctx context.Context, owner string) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*game.Game
	for _, e := range m.games {
		if e.g.Owner == owner {
			out = append(out, e.g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Sweep drops sessions not saved or read within ttl and returns how many were removed.
func (m *Memory) Sweep(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-ttl)
	n := 0
	for id, e := range m.games {
		if e.seen.Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n
}

// Len reports how many sessions are held.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
