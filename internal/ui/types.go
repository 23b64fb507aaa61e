package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"jlv/internal/config"
	"jlv/internal/model"
	"jlv/internal/store"
	"jlv/internal/view"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptSearch
	promptFilterValue
	promptCustomFilter
	promptGoto
)

type pickerKind int

const (
	pickerNone pickerKind = iota
	pickerLevel
	pickerSort
	pickerFilterField
)

// picker is a small centered list popup with first-letter quick select,
// in the manner of the classic curses field pickers.
type picker struct {
	kind  pickerKind
	label string
	items []string
	sel   int
}

type Model struct {
	ctx context.Context
	cfg *config.Config

	store  *store.Store
	engine *view.Engine

	styles Styles
	keymap KeyMap
	input  textinput.Model

	termWidth  int
	termHeight int

	prompt      promptKind
	promptField string // pending field for promptFilterValue

	pick *picker

	detailOpen  bool
	detailJSON  bool
	detailEntry model.Entry
	detailVP    viewport.Model

	logsOpen bool

	wrap    bool
	loadErr string
	popMsg  string // one-shot message popup; any key dismisses
	// lastMsg is a transient status trail, cleared on the next view change.
	lastMsg string
}

// Messages

type loadedMsg struct{}

type loadErrMsg struct{ err error }
