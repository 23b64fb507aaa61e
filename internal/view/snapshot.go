package view

import "jlv/internal/model"

// FilterSummary is the status-line rendering of one active predicate.
type FilterSummary struct {
	Field string
	Value string
}

// Snapshot is the read-only state handed to the rendering layer: enough to
// redraw the visible window, the status line, and any prompt chrome without
// touching engine internals.
type Snapshot struct {
	Ready bool

	// Rows is the visible slice of the projection, starting at First.
	Rows  []model.Entry
	Total int

	Cursor      int
	First       int
	RelativeRow int
	PageHeight  int

	Mode    Mode
	Sort    string
	Filters []FilterSummary

	// Dropped counts raw lines omitted at parse time for this load cycle.
	Dropped int
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Ready:       e.Ready(),
		Cursor:      e.cursor,
		First:       e.first,
		RelativeRow: e.RelativeRow(),
		PageHeight:  e.pageHeight,
		Mode:        e.mode,
		Sort:        e.sortSpec,
	}
	if !s.Ready {
		return s
	}
	proj := e.Projection()
	s.Total = len(proj)
	end := min(e.first+e.pageHeight+1, len(proj))
	if e.first < end {
		s.Rows = proj[e.first:end]
	}
	if e.userFilter != nil {
		s.Filters = append(s.Filters, summarize(*e.userFilter))
	}
	if e.levelFilter != nil {
		s.Filters = append(s.Filters, summarize(*e.levelFilter))
	}
	s.Dropped = e.store.Dropped()
	return s
}

func summarize(f Filter) FilterSummary {
	field := f.Field
	if f.Method == MethodExpr {
		field = "expr"
	}
	return FilterSummary{Field: field, Value: f.Value}
}

// CurrentEntry returns the entry under the cursor, if any row exists.
func (e *Engine) CurrentEntry() (model.Entry, bool) {
	proj := e.Projection()
	if e.cursor < 0 || e.cursor >= len(proj) {
		return model.Entry{}, false
	}
	return proj[e.cursor], true
}
