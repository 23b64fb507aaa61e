// Package store holds the raw entry sequence for the session. The sequence
// is immutable per load cycle: a reload replaces it wholesale and announces
// the change to subscribers, it never mutates in place.
package store

import (
	"context"

	"jlv/internal/ingest"
	"jlv/internal/model"
)

// Store is owned by the terminal event loop; all access is single-threaded
// (see the concurrency model), so there is no locking here.
type Store struct {
	entries []model.Entry
	dropped int
	loaded  bool
	subs    []func()
}

func New() *Store {
	return &Store{}
}

// Subscribe registers a "source updated" listener, fired on every Load.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// Load materializes the provider's full sequence, replacing any previous
// load cycle. On failure the previous sequence is kept untouched.
func (s *Store) Load(ctx context.Context, p ingest.Provider) error {
	res, err := p.GetLines(ctx)
	if err != nil {
		return err
	}
	s.entries = res.Entries
	s.dropped = res.Dropped
	s.loaded = true
	for _, fn := range s.subs {
		fn()
	}
	return nil
}

func (s *Store) Loaded() bool { return s.loaded }
func (s *Store) Count() int   { return len(s.entries) }

// Dropped is the number of raw lines omitted by the silent-drop parse policy.
func (s *Store) Dropped() int { return s.dropped }

// Entries returns the loaded sequence. Callers must treat it as read-only.
func (s *Store) Entries() []model.Entry { return s.entries }
