package ui

import tea "github.com/charmbracelet/bubbletea"

type KeyMap struct {
	Up           tea.Key
	Down         tea.Key
	PageUp       tea.Key
	PageDown     tea.Key
	FirstPage    tea.Key
	LastPage     tea.Key
	ViewportTop  tea.Key
	ViewportBot  tea.Key
	ViewportMid  tea.Key
	Detail       tea.Key
	Search       tea.Key
	SearchKeep   tea.Key
	SearchNext   tea.Key
	LevelFilter  tea.Key
	Sort         tea.Key
	FilterToggle tea.Key
	Goto         tea.Key
	Export       tea.Key
	Wrap         tea.Key
	AppLogs      tea.Key
	Quit         tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           tea.Key{Type: tea.KeyUp},
		Down:         tea.Key{Type: tea.KeyDown},
		PageUp:       tea.Key{Type: tea.KeyPgUp},
		PageDown:     tea.Key{Type: tea.KeyPgDown},
		FirstPage:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'0'}},
		LastPage:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'$'}},
		ViewportTop:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'A'}},
		ViewportBot:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'G'}},
		ViewportMid:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'C'}},
		Detail:       tea.Key{Type: tea.KeyEnter},
		Search:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'/'}},
		SearchKeep:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'?'}},
		SearchNext:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'n'}},
		LevelFilter:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'l'}},
		Sort:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'s'}},
		FilterToggle: tea.Key{Type: tea.KeyRunes, Runes: []rune{'f'}},
		Goto:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'g'}},
		Export:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'e'}},
		Wrap:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'w'}},
		AppLogs:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'L'}},
		Quit:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}
