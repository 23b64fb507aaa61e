package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jlv/internal/export"
	"jlv/internal/model"
	"jlv/internal/util/logx"
	"jlv/internal/view"
)

// pageHeight is the display area minus fixed chrome: header row, status
// line, prompt line, and the cursor row itself (the viewport band is
// first..first+pageHeight inclusive).
func (m *Model) pageHeight() int {
	h := m.termHeight - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.engine.Resize(m.pageHeight())
		m.detailVP.Width = max(20, m.termWidth*9/10-4)
		m.detailVP.Height = max(5, m.termHeight*8/10-4)
		return m, nil

	case loadedMsg:
		m.engine.Attach(m.store)
		if m.cfg.Level != "" {
			_ = m.engine.SetLevelFilter(m.cfg.Level)
		}
		if m.cfg.Sort != "" {
			_ = m.engine.SetSort(m.cfg.Sort)
		}
		return m, nil

	case loadErrMsg:
		// Ingestion failure is fatal for the session; no retry here.
		m.loadErr = msg.err.Error()
		logx.Errorf("load failed: %v", msg.err)
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.popMsg != "" {
		m.popMsg = ""
		m.engine.ResetMode()
		return m, nil
	}
	if m.detailOpen || m.logsOpen {
		return m.handleModalKey(msg)
	}
	if m.pick != nil {
		return m.handlePickerKey(msg)
	}
	if m.prompt != promptNone {
		return m.handlePromptKey(msg)
	}
	if !m.engine.Ready() {
		if keyMatches(msg, m.keymap.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	return m.handleNormalKey(msg)
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keymap
	switch {
	case keyMatches(msg, km.Quit):
		return m, tea.Quit
	case keyMatches(msg, km.Up):
		m.engine.MoveUp()
	case keyMatches(msg, km.Down):
		m.engine.MoveDown()
	case keyMatches(msg, km.PageUp):
		m.engine.PageUp()
	case keyMatches(msg, km.PageDown):
		m.engine.PageDown()
	case keyMatches(msg, km.FirstPage):
		m.engine.FirstPage()
	case keyMatches(msg, km.LastPage):
		m.engine.LastPage()
	case keyMatches(msg, km.ViewportTop):
		m.engine.MoveToFirstViewportLine()
	case keyMatches(msg, km.ViewportBot):
		m.engine.MoveToLastViewportLine()
	case keyMatches(msg, km.ViewportMid):
		m.engine.MoveToCenterViewportLine()
	case keyMatches(msg, km.Detail):
		m.openDetail()
	case keyMatches(msg, km.Search):
		m.openSearch(true)
	case keyMatches(msg, km.SearchKeep):
		m.openSearch(false)
	case keyMatches(msg, km.SearchNext):
		m.doSearch("")
	case keyMatches(msg, km.LevelFilter):
		m.openLevelPicker()
	case keyMatches(msg, km.Sort):
		m.openSortPicker()
	case keyMatches(msg, km.FilterToggle):
		if m.engine.HasFilters() {
			_ = m.engine.ClearFilters()
			m.lastMsg = "filters cleared"
		} else {
			m.openFilterPicker()
		}
	case keyMatches(msg, km.Goto):
		m.openGoto()
	case keyMatches(msg, km.Export):
		m.doExport()
	case keyMatches(msg, km.Wrap):
		m.wrap = !m.wrap
	case keyMatches(msg, km.AppLogs):
		m.logsOpen = true
		m.detailVP.SetContent(logx.Dump())
		m.detailVP.GotoBottom()
	}
	return m, nil
}

// Prompts

func (m *Model) startPrompt(kind promptKind, label, value string) {
	m.prompt = kind
	m.input.Prompt = label + " "
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.promptField = ""
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) openSearch(clear bool) {
	m.engine.SetMode(view.ModeSearch)
	if clear {
		m.engine.ClearSearch()
	}
	m.startPrompt(promptSearch, "Search:", m.engine.LastSearch())
}

func (m *Model) openGoto() {
	m.engine.SetMode(view.ModeGoto)
	m.startPrompt(promptGoto, "Line:", "")
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		m.engine.ResetMode()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		kind, field := m.prompt, m.promptField
		m.closePrompt()
		if value == "" {
			m.engine.ResetMode()
			return m, nil
		}
		m.applyPrompt(kind, field, value)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applyPrompt(kind promptKind, field, value string) {
	switch kind {
	case promptSearch:
		m.doSearch(value)
	case promptGoto:
		if n, err := strconv.Atoi(value); err == nil {
			m.engine.MoveToLine(n - 1)
		} else {
			m.popMsg = fmt.Sprintf("not a line number: %q", value)
		}
		m.engine.ResetMode()
	case promptFilterValue:
		m.applyFilter(field, value, view.MethodContains)
	case promptCustomFilter:
		// Accepts "field", "field:value" or "expr:<expression>".
		if expr, ok := strings.CutPrefix(value, "expr:"); ok {
			m.applyFilter("", expr, view.MethodExpr)
			return
		}
		if field, val, ok := strings.Cut(value, ":"); ok {
			m.applyFilter(field, val, view.MethodContains)
			return
		}
		m.engine.SetMode(view.ModeFilter)
		m.promptField = value
		m.startPrompt(promptFilterValue, fmt.Sprintf("Filter %s by:", value), "")
	}
}

func (m *Model) applyFilter(field, value string, method view.Method) {
	f, err := view.NewFilter(field, value, method)
	if err != nil {
		m.popMsg = fmt.Sprintf("bad filter: %v", err)
		m.engine.ResetMode()
		return
	}
	if err := m.engine.SetFilter(f); err != nil {
		m.popMsg = err.Error()
	}
	m.engine.ResetMode()
}

func (m *Model) doSearch(term string) {
	pos, err := m.engine.Search(term)
	if err == view.ErrNoSearchTerm {
		m.popMsg = "No previous search"
		return
	}
	if err != nil {
		m.popMsg = err.Error()
		return
	}
	if pos < 0 {
		m.popMsg = fmt.Sprintf("No matches for '%s'", m.engine.LastSearch())
	}
	m.engine.ResetMode()
}

// Pickers

func (m *Model) openPicker(kind pickerKind, label string, items []string) {
	m.pick = &picker{kind: kind, label: label, items: items}
}

func (m *Model) openLevelPicker() {
	m.engine.SetMode(view.ModeFilter)
	m.openPicker(pickerLevel, "Log Level", []string{"all", "debug", "info", "warn", "error"})
}

func (m *Model) openSortPicker() {
	m.engine.SetMode(view.ModeSort)
	m.openPicker(pickerSort, "Sort by",
		[]string{model.FieldTimestamp, model.FieldLevel, model.FieldMessage})
}

func (m *Model) openFilterPicker() {
	m.engine.SetMode(view.ModeFilter)
	m.openPicker(pickerFilterField, "Filter by",
		[]string{model.FieldTimestamp, model.FieldLevel, model.FieldMessage, "other"})
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.pick
	switch msg.Type {
	case tea.KeyEsc:
		m.pick = nil
		m.engine.ResetMode()
		return m, nil
	case tea.KeyUp:
		if p.sel > 0 {
			p.sel--
		}
		return m, nil
	case tea.KeyDown:
		if p.sel+1 < len(p.items) {
			p.sel++
		}
		return m, nil
	case tea.KeyEnter:
		m.pick = nil
		m.applyPicker(p.kind, p.items[p.sel])
		return m, nil
	case tea.KeyRunes:
		// First-letter quick select.
		for _, it := range p.items {
			if strings.HasPrefix(it, msg.String()) {
				m.pick = nil
				m.applyPicker(p.kind, it)
				return m, nil
			}
		}
	}
	return m, nil
}

func (m *Model) applyPicker(kind pickerKind, choice string) {
	switch kind {
	case pickerLevel:
		if choice == "all" {
			_ = m.engine.ClearFilters()
		} else {
			_ = m.engine.SetLevelFilter(choice)
		}
		m.engine.ResetMode()
	case pickerSort:
		if m.engine.SortKey() == choice && m.engine.SortAscending() {
			_ = m.engine.SetSort("-" + choice)
		} else {
			_ = m.engine.SetSort(choice)
		}
		m.engine.ResetMode()
	case pickerFilterField:
		switch choice {
		case model.FieldLevel:
			m.openLevelPicker()
		case "other":
			m.startPrompt(promptCustomFilter, "Field to filter:", "")
		default:
			m.promptField = choice
			m.startPrompt(promptFilterValue, fmt.Sprintf("Filter %s by:", choice), "")
		}
	}
}

// Modals

func (m *Model) openDetail() {
	entry, ok := m.engine.CurrentEntry()
	if !ok {
		m.popMsg = "no row selected"
		return
	}
	m.detailOpen = true
	m.detailJSON = false
	m.detailEntry = entry
	m.detailVP.SetContent(m.detailContent())
	m.detailVP.GotoTop()
}

func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc ||
		(m.logsOpen && keyMatches(msg, m.keymap.Quit)) {
		m.detailOpen = false
		m.logsOpen = false
		return m, nil
	}
	if m.detailOpen && msg.String() == "j" {
		m.detailJSON = !m.detailJSON
		m.detailVP.SetContent(m.detailContent())
		return m, nil
	}
	var cmd tea.Cmd
	m.detailVP, cmd = m.detailVP.Update(msg)
	return m, cmd
}

func (m *Model) doExport() {
	if m.cfg.ExportFormat == "" {
		m.popMsg = "export not configured (run with --export and --out)"
		return
	}
	proj := m.engine.Projection()
	var err error
	switch m.cfg.ExportFormat {
	case "csv":
		err = export.ToCSV(m.cfg.ExportOut, proj)
	default:
		err = export.ToNDJSON(m.cfg.ExportOut, proj)
	}
	if err != nil {
		m.popMsg = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.lastMsg = fmt.Sprintf("exported %d rows to %s", len(proj), m.cfg.ExportOut)
	logx.Infof("export: wrote %d rows to %s (%s)", len(proj), m.cfg.ExportOut, m.cfg.ExportFormat)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
