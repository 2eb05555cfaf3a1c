package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrNotFound is returned by read-only lookups of unknown sessions.
var ErrNotFound = errors.New("session not found")

// Journal persists interaction logs outside the process. The store writes
// through to it before changing memory, so a failed write leaves the
// session untouched.
type Journal interface {
	Load(ctx context.Context, sessionID string) ([]Interaction, error)
	Append(ctx context.Context, sessionID string, in Interaction) error
	Delete(ctx context.Context, sessionID string) error
}

// Store is a keyed set of sessions. The map has its own lock and every
// session has another, so sessions never wait on each other.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	journal Journal
	now     func() time.Time
	logger  *slog.Logger
}

type entry struct {
	mu     sync.Mutex
	s      *Session
	loaded bool
}

type Option func(*Store)

func WithJournal(j Journal) Option {
	return func(s *Store) { s.journal = j }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GetOrCreate returns a copy of the session, creating it on first use.
// It fails only when the journal cannot be read.
func (st *Store) GetOrCreate(ctx context.Context, id string) (*Session, error) {
	e, err := st.entry(id, true)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := st.load(ctx, id, e); err != nil {
		return nil, err
	}
	return e.s.Clone(), nil
}

// Append adds in to the session's log and updates its counters as one
// step. A zero timestamp is set to the current time.
func (st *Store) Append(ctx context.Context, id string, in Interaction) (*Session, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.Timestamp.IsZero() {
		in.Timestamp = st.now()
	}

	e, err := st.entry(id, true)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := st.load(ctx, id, e); err != nil {
		return nil, err
	}
	if st.journal != nil {
		if err := st.journal.Append(ctx, id, in); err != nil {
			return nil, fmt.Errorf("journal append: %w", err)
		}
	}
	e.s.append(in)
	return e.s.Clone(), nil
}

// Reset discards a session's history and leaves an empty session under
// the same id. Resetting an unknown or empty session is not an error.
func (st *Store) Reset(ctx context.Context, id string) (*Session, error) {
	e, err := st.entry(id, true)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if st.journal != nil {
		if err := st.journal.Delete(ctx, id); err != nil {
			return nil, fmt.Errorf("journal delete: %w", err)
		}
	}
	e.s = newSession(id, st.now())
	e.loaded = true
	st.logger.Debug("session log cleared", "session", id)
	return e.s.Clone(), nil
}

// Snapshot returns a copy of an existing session without creating one.
// With a journal, sessions not yet in memory are looked up there.
func (st *Store) Snapshot(ctx context.Context, id string) (*Session, error) {
	e, err := st.entry(id, false)
	if err == nil {
		e.mu.Lock()
		defer e.mu.Unlock()
		if err := st.load(ctx, id, e); err != nil {
			return nil, err
		}
		return e.s.Clone(), nil
	}
	if st.journal == nil || !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	log, jerr := st.journal.Load(ctx, id)
	if jerr != nil {
		return nil, fmt.Errorf("journal load: %w", jerr)
	}
	if len(log) == 0 {
		return nil, err
	}
	return st.GetOrCreate(ctx, id)
}

// Len is the number of sessions held in memory.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// IDs lists the sessions held in memory.
func (st *Store) IDs() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	ids := make([]string, 0, len(st.sessions))
	for id := range st.sessions {
		ids = append(ids, id)
	}
	return ids
}

func (st *Store) entry(id string, create bool) (*entry, error) {
	if id == "" {
		return nil, errors.New("session id is required")
	}
	st.mu.RLock()
	e, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return e, nil
	}
	if !create {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if e, ok := st.sessions[id]; ok {
		return e, nil
	}
	e = &entry{s: newSession(id, st.now())}
	st.sessions[id] = e
	return e, nil
}

// load fills e from the journal once. Callers hold e.mu.
func (st *Store) load(ctx context.Context, id string, e *entry) error {
	if e.loaded {
		return nil
	}
	if st.journal != nil {
		log, err := st.journal.Load(ctx, id)
		if err != nil {
			return fmt.Errorf("journal load: %w", err)
		}
		if len(log) > 0 {
			e.s = fromLog(id, log, st.now())
		}
	}
	e.loaded = true
	return nil
}
