package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jlv/internal/view"
)

func (m *Model) View() string {
	if m.loadErr != "" {
		return "error: " + m.loadErr + "\n"
	}
	if m.termWidth == 0 {
		return ""
	}
	snap := m.engine.Snapshot()
	if !snap.Ready {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center,
			"loading "+m.sourceName()+"...")
	}
	// A render pass that begins outside an interactive prompt implicitly
	// returns the mode to normal.
	if snap.Mode != view.ModeNormal && m.prompt == promptNone && m.pick == nil && m.popMsg == "" {
		m.engine.ResetMode()
		snap = m.engine.Snapshot()
	}

	var b strings.Builder
	b.WriteString(m.headerRow())
	b.WriteString("\n")
	for i, e := range snap.Rows {
		b.WriteString(m.formatRow(e, i == snap.RelativeRow))
		b.WriteString("\n")
	}
	for i := len(snap.Rows); i <= snap.PageHeight; i++ {
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine(snap))
	b.WriteString("\n")
	b.WriteString(m.bottomLine())

	base := b.String()
	if pop := m.popup(); pop != "" {
		base = overlay(base, lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, pop))
	}
	return base
}

func (m *Model) sourceName() string {
	if m.cfg.UseStdin {
		return "stdin"
	}
	return m.cfg.FilePath
}

// statusLine follows the classic contract: mode label, 1-based position,
// page height, and the active filters as field:value pairs.
func (m *Model) statusLine(snap view.Snapshot) string {
	// Always cursor+1 over the projection length, so an empty view reads 1/0.
	mode := m.styles.StatusMode.Render(" " + snap.Mode.String() + " ")
	line := fmt.Sprintf(" %d/%d | %d", snap.Cursor+1, snap.Total, snap.PageHeight)
	if len(snap.Filters) > 0 {
		pairs := make([]string, 0, len(snap.Filters))
		for _, f := range snap.Filters {
			pairs = append(pairs, f.Field+":"+f.Value)
		}
		line += " | filters: " + strings.Join(pairs, " ")
	}
	if snap.Sort != "" {
		line += " | sort: " + snap.Sort
	}
	if snap.Dropped > 0 {
		line += fmt.Sprintf(" | dropped: %d", snap.Dropped)
	}
	return mode + m.styles.Status.Render(pad(line, max(0, m.termWidth-lipgloss.Width(mode))))
}

func (m *Model) bottomLine() string {
	if m.prompt != promptNone {
		return m.input.View()
	}
	hint := "[?]=search [n]=next [f]=filter [s]=sort [g]=goto [enter]=detail [q]=quit"
	if m.lastMsg != "" {
		hint += " | " + m.lastMsg
	}
	return m.styles.Hint.Render(truncate(hint, m.termWidth))
}

func (m *Model) popup() string {
	switch {
	case m.popMsg != "":
		return m.styles.PopupBox.Render(
			m.styles.PopupTitle.Render("Message") + "\n\n" + m.popMsg + "\n\n(press any key)")
	case m.pick != nil:
		var b strings.Builder
		b.WriteString(m.styles.PopupTitle.Render(m.pick.label))
		b.WriteString("\n\n")
		for i, it := range m.pick.items {
			if i == m.pick.sel {
				b.WriteString(m.styles.PickerSel.Render(" " + it + " "))
			} else {
				b.WriteString(" " + it + " ")
			}
			b.WriteString("\n")
		}
		return m.styles.PopupBox.Render(b.String())
	case m.detailOpen:
		title := fmt.Sprintf("%s - %s - %s",
			m.detailEntry.Timestamp, m.detailEntry.Level,
			strings.SplitN(m.detailEntry.Message, "\n", 2)[0])
		return m.styles.PopupBox.Render(
			m.styles.PopupTitle.Render(truncate(title, m.detailVP.Width)) +
				"\n\n" + m.detailVP.View() + "\n\n[j]=toggle json [esc]=close")
	case m.logsOpen:
		return m.styles.PopupBox.Render(
			m.styles.PopupTitle.Render("Application logs") + "\n\n" + m.detailVP.View())
	}
	return ""
}

// overlay draws the popup on top of the base view, keeping base lines
// wherever the popup line is blank.
func overlay(base, over string) string {
	bLines := strings.Split(base, "\n")
	oLines := strings.Split(over, "\n")
	maxLen := len(bLines)
	if len(oLines) > maxLen {
		maxLen = len(oLines)
	}
	for len(bLines) < maxLen {
		bLines = append(bLines, "")
	}
	for len(oLines) < maxLen {
		oLines = append(oLines, "")
	}
	out := make([]string, maxLen)
	for i := 0; i < maxLen; i++ {
		if strings.TrimSpace(oLines[i]) != "" {
			out[i] = oLines[i]
		} else {
			out[i] = bLines[i]
		}
	}
	return strings.Join(out, "\n")
}
