// Package view is the line navigation and view-state engine: it owns the
// filtered/sorted projection of the loaded entries, the cursor and viewport,
// forward search, and the interaction mode. All mutation funnels through its
// operations; consumers read immutable snapshots.
package view

import (
	"errors"
	"sort"

	"jlv/internal/model"
	"jlv/internal/store"
	"jlv/internal/util/logx"
)

var (
	// ErrNotLoaded rejects operations issued before the first load
	// cycle completes.
	ErrNotLoaded = errors.New("log source not loaded yet")
	// ErrNoSearchTerm means a repeat-search was asked for with no
	// search history. Informational, not a failure.
	ErrNoSearchTerm = errors.New("no previous search")
)

type Phase int

const (
	PhaseUnloaded Phase = iota
	PhaseReady
)

// Engine is single-threaded by contract: it runs inside the terminal event
// loop and every operation runs to completion, so no locking is needed.
type Engine struct {
	store *store.Store
	phase Phase

	userFilter  *Filter
	levelFilter *Filter
	sortSpec    string

	// Projection cache with generation counter: any state change that
	// affects the projection bumps gen; the cache is rebuilt on first
	// read when cacheGen falls behind.
	gen      uint64
	cacheGen uint64
	cache    []model.Entry

	cursor     int
	first      int
	pageHeight int

	mode       Mode
	lastSearch string

	listeners []func()
}

func NewEngine(pageHeight int) *Engine {
	if pageHeight < 1 {
		pageHeight = 1
	}
	return &Engine{phase: PhaseUnloaded, pageHeight: pageHeight, gen: 1}
}

// Subscribe registers an update listener, fired once after every operation
// that changes projection, cursor, viewport, or mode state.
func (e *Engine) Subscribe(fn func()) {
	e.listeners = append(e.listeners, fn)
}

func (e *Engine) notify() {
	for _, fn := range e.listeners {
		fn()
	}
}

// Attach installs a loaded store and enters the Ready phase atomically.
// Attaching again (a reload) is a new load cycle: projection cache, cursor,
// viewport, filters, sort and search memory all reset.
func (e *Engine) Attach(s *store.Store) {
	e.store = s
	e.phase = PhaseReady
	e.userFilter = nil
	e.levelFilter = nil
	e.sortSpec = ""
	e.lastSearch = ""
	e.mode = ModeNormal
	e.cursor, e.first = 0, 0
	e.invalidate()
	logx.Infof("view: attached store with %d entries", s.Count())
	e.notify()
}

func (e *Engine) Ready() bool { return e.phase == PhaseReady }

func (e *Engine) invalidate() { e.gen++ }

// Projection returns the filtered+sorted entry sequence, rebuilding it
// lazily when stale and reusing it until the next invalidation.
func (e *Engine) Projection() []model.Entry {
	if e.phase != PhaseReady {
		return nil
	}
	if e.cacheGen != e.gen {
		e.cache = e.compute()
		e.cacheGen = e.gen
	}
	return e.cache
}

func (e *Engine) compute() []model.Entry {
	src := e.store.Entries()
	filters := e.activeFilters()

	out := make([]model.Entry, 0, len(src))
	for _, entry := range src {
		rejected := false
		for _, f := range filters {
			if !f.Match(entry) {
				rejected = true
				break
			}
		}
		if !rejected {
			out = append(out, entry)
		}
	}

	if e.sortSpec != "" {
		field, desc := splitSort(e.sortSpec)
		sort.SliceStable(out, func(i, j int) bool {
			return compareEntries(out[i], out[j], field)
		})
		// Descending is reverse-after-ascending-sort rather than an
		// inverted comparator, so ties come out in reversed original
		// order. Tests pin this down.
		if desc {
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

func (e *Engine) activeFilters() []Filter {
	var fs []Filter
	if e.userFilter != nil {
		fs = append(fs, *e.userFilter)
	}
	if e.levelFilter != nil {
		fs = append(fs, *e.levelFilter)
	}
	return fs
}

// SetFilter replaces the user-defined filter slot. It is ANDed with any
// active level filter.
func (e *Engine) SetFilter(f Filter) error {
	if e.phase != PhaseReady {
		return ErrNotLoaded
	}
	e.userFilter = &f
	e.viewChanged()
	return nil
}

// SetLevelFilter sets or, given the empty string, removes the level filter.
func (e *Engine) SetLevelFilter(level string) error {
	if e.phase != PhaseReady {
		return ErrNotLoaded
	}
	if level == "" {
		e.levelFilter = nil
	} else {
		f, _ := NewFilter(model.FieldLevel, level, MethodExact)
		e.levelFilter = &f
	}
	e.viewChanged()
	return nil
}

// ClearFilters removes both the user filter and the level filter.
func (e *Engine) ClearFilters() error {
	if e.phase != PhaseReady {
		return ErrNotLoaded
	}
	e.userFilter = nil
	e.levelFilter = nil
	e.viewChanged()
	return nil
}

// SetSort replaces the sort spec ("field" ascending, "-field" descending,
// "" for load order).
func (e *Engine) SetSort(spec string) error {
	if e.phase != PhaseReady {
		return ErrNotLoaded
	}
	e.sortSpec = spec
	e.viewChanged()
	return nil
}

func (e *Engine) Sort() string { return e.sortSpec }

// SortKey is the sort field without its direction prefix.
func (e *Engine) SortKey() string {
	field, _ := splitSort(e.sortSpec)
	return field
}

func (e *Engine) SortAscending() bool {
	_, desc := splitSort(e.sortSpec)
	return !desc
}

// HasFilters reports whether any predicate is active.
func (e *Engine) HasFilters() bool {
	return e.userFilter != nil || e.levelFilter != nil
}

// viewChanged invalidates the projection and snaps back to the top; a
// shrunk or reordered projection never leaves a stale cursor behind.
func (e *Engine) viewChanged() {
	e.invalidate()
	e.cursor, e.first = 0, 0
	e.notify()
}

func (e *Engine) lastRow() int {
	return len(e.Projection()) - 1
}
