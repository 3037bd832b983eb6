package conversation

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store is the append-only turn list. Existing turns are never removed or edited.
type Store struct {
	mu    sync.RWMutex
	turns []Turn
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store. Turn IDs are ULIDs, which stay unique and
// sortable even when two turns are created within the same millisecond.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AppendTurn creates a turn and adds it to the end of the history.
// Content is stored as given; blank input is filtered by the caller.
func (s *Store) AppendTurn(role Role, content string) Turn {
	turn := Turn{
		ID:                 s.newID(),
		Role:               role,
		Content:            content,
		CreatedAt:          s.now(),
		IsExpansionRequest: role == RoleUser && IsExpansionRequest(content),
	}

	s.mu.Lock()
	s.turns = append(s.turns, turn)
	s.mu.Unlock()

	return turn
}

// AllTurns returns a copy of the history in insertion order.
func (s *Store) AllTurns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}
