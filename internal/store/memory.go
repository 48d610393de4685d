// internal/store/memory.go
//
// In-memory record of finished games for the running process.
// The host saves a Record each time a board reaches won/lost and reads
// Stats back for its status line.
//
// Characteristics:
//   - Records are kept in finish order and keyed by ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Nothing is written to disk; state is gone when the process exits.

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/werdol/internal/game"
)

// ErrNotFound is returned by Get for an unknown ID.
var ErrNotFound = errors.New("not found")

// Record describes one finished game.
type Record struct {
	ID         string
	Answer     string
	Guesses    int // rows submitted, 1..game.Rows
	Won        bool
	FinishedAt time.Time
}

// Stats summarizes the records in a Store.
type Stats struct {
	Played    int
	Wins      int
	Streak    int // consecutive wins ending at the latest game
	MaxStreak int
	// Distribution[i] counts wins that took i+1 guesses.
	Distribution [game.Rows]int
}

// Store defines the interface for finished-game records.
type Store interface {
	// Save adds or replaces a record. An empty ID is filled in.
	Save(ctx context.Context, r Record) (Record, error)

	// Get retrieves a record by ID.
	// Returns ErrNotFound if the record is missing.
	Get(ctx context.Context, id string) (Record, error)

	// Stats summarizes every saved record.
	Stats(ctx context.Context) (Stats, error)
}

// RecordFor builds a Record from a finished board.
func RecordFor(b *game.Board, at time.Time) Record {
	return Record{
		Answer:     b.Answer(),
		Guesses:    b.Guesses(),
		Won:        b.HasWon(),
		FinishedAt: at,
	}
}

// memory is an in-memory Store implementation.
type memory struct {
	mu    sync.RWMutex   // guards order and byID
	order []string       // IDs in save order
	byID  map[string]Record
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{byID: make(map[string]Record)}
}

// Save adds or updates a record.
func (m *memory) Save(ctx context.Context, r Record) (Record, error) {
	if r.ID == "" {
		r.ID = randomID()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.byID[r.ID] = r
	return r, nil
}

// Get looks up a record by ID.
func (m *memory) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.byID[id]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}

// Stats walks records in save order; a loss resets the current streak.
func (m *memory) Stats(ctx context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var s Stats
	for _, id := range m.order {
		r := m.byID[id]
		s.Played++
		if !r.Won {
			s.Streak = 0
			continue
		}
		s.Wins++
		s.Streak++
		if s.Streak > s.MaxStreak {
			s.MaxStreak = s.Streak
		}
		if r.Guesses >= 1 && r.Guesses <= game.Rows {
			s.Distribution[r.Guesses-1]++
		}
	}
	return s, nil
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
