// Package session implements the Session Store (spec §4.13, §3): a bounded
// in-memory ring of named picker snapshots that lets a picker be resumed
// where a previous invocation left off.
package session

import (
	"sync"

	"github.com/vim-fall/fall.vim/config"
	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/item"
)

// Session is a single saved picker invocation.
type Session struct {
	Name    string
	Args    []string
	Context item.Context
}

// Store is a bounded, append-only ring of sessions. Multiple sessions may
// share a Name, distinguished only by recency; saving never replaces a
// prior entry in place. Once the ring is at capacity, the oldest entry is
// evicted to make room for a new save. Reserved names
// (config.IsReservedName) are rejected at the save boundary, never
// silently dropped.
type Store struct {
	capacity int

	mu       sync.Mutex
	sessions []Session // insertion order, oldest first
}

// NewStore creates a Session Store bounded to capacity entries. capacity
// <= 0 falls back to config.SessionStoreCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = config.SessionStoreCapacity
	}
	return &Store{capacity: capacity}
}

// Save appends a new session entry under name, args. Returns
// errs.ErrReservedName if name is reserved (starts with
// config.ReservedNamePrefix). The stored context is cloned so later
// mutation of the live picker context cannot corrupt the stored snapshot.
// A name shared with a prior save does not replace it: both entries are
// kept, ordered by insertion.
func (s *Store) Save(name string, args []string, ctx item.Context) error {
	if config.IsReservedName(name) {
		return errs.ErrReservedName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{Name: name, Args: append([]string(nil), args...), Context: ctx.Clone()}

	if len(s.sessions) >= s.capacity {
		s.sessions = s.sessions[1:]
	}
	s.sessions = append(s.sessions, sess)
	return nil
}

// List returns all saved sessions, most-recent first.
func (s *Store) List() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Session, len(s.sessions))
	for i, sess := range s.sessions {
		out[len(s.sessions)-1-i] = sess
	}
	return out
}

// LoadQuery selects a stored session. When Name is set, only sessions with
// that Name are considered. Number is a 1-based recency index into the
// (possibly name-filtered) set, most-recent first; 0 means unset and
// defaults to 1 (the most recent match).
type LoadQuery struct {
	Name   string
	Number int // 1-based; 0 means unset, defaults to 1
}

// Load resolves a query against the store: it filters by Name (when given)
// then indexes the filtered, insertion-ordered set from the most-recent
// end by Number. Returns errs.ErrUnknownSession if nothing matches.
func (s *Store) Load(q LoadQuery) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var filtered []Session
	if q.Name == "" {
		filtered = s.sessions
	} else {
		for _, sess := range s.sessions {
			if sess.Name == q.Name {
				filtered = append(filtered, sess)
			}
		}
	}

	number := q.Number
	if number <= 0 {
		number = 1
	}
	idx := len(filtered) - number
	if idx < 0 || idx >= len(filtered) {
		return Session{}, errs.ErrUnknownSession
	}
	return filtered[idx], nil
}

// Len returns the number of currently stored sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
