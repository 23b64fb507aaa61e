package view

import "strings"

// SearchTerm scans the projection forward from startRow (inclusive) and
// returns the first matching row, or -1. Matching is against the entry's
// timestamp and message only, not the extra-data payload, and never wraps
// back to the top.
func (e *Engine) SearchTerm(term string, caseSensitive bool, startRow int) int {
	if !caseSensitive {
		term = strings.ToLower(term)
	}
	proj := e.Projection()
	if startRow < 0 {
		startRow = 0
	}
	for i := startRow; i < len(proj); i++ {
		text := proj[i].Timestamp + " " + proj[i].Message
		if !caseSensitive {
			text = strings.ToLower(text)
		}
		if strings.Contains(text, term) {
			return i
		}
	}
	return -1
}

// Search runs a case-insensitive forward search resuming from the row after
// the cursor and jumps to the hit. An empty term repeats the last search;
// with no history that is ErrNoSearchTerm, which callers surface as an
// informational message. A miss returns -1 with no error.
func (e *Engine) Search(term string) (int, error) {
	if !e.Ready() {
		return -1, ErrNotLoaded
	}
	if term == "" {
		term = e.lastSearch
	}
	if term == "" {
		return -1, ErrNoSearchTerm
	}
	e.lastSearch = term
	pos := e.SearchTerm(term, false, e.cursor+1)
	if pos > -1 {
		e.MoveToLine(pos)
	}
	return pos, nil
}

// LastSearch is the remembered term, shown when reopening the prompt.
func (e *Engine) LastSearch() string { return e.lastSearch }

// ClearSearch forgets the remembered term (a fresh `/` prompt).
func (e *Engine) ClearSearch() { e.lastSearch = "" }
