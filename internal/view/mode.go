package view

// Mode is the active interaction state. It gates which prompt is in effect
// and feeds the status line; it never blocks navigation in the core.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModeSort
	ModeSearch
	ModeGoto
)

func (m Mode) String() string {
	switch m {
	case ModeFilter:
		return "FILTER"
	case ModeSort:
		return "SORT"
	case ModeSearch:
		return "SEARCH"
	case ModeGoto:
		return "GOTO"
	default:
		return "NORMAL"
	}
}

func (e *Engine) Mode() Mode { return e.mode }

func (e *Engine) SetMode(m Mode) {
	e.mode = m
	e.notify()
}

// ResetMode returns to normal, typically on prompt completion or cancel.
func (e *Engine) ResetMode() {
	if e.mode != ModeNormal {
		e.SetMode(ModeNormal)
	}
}
