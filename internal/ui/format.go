package ui

import (
	"fmt"
	"sort"
	"strings"

	"jlv/internal/model"
)

const (
	tsWidth    = 26
	levelWidth = 6
	colSpacing = 2
)

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width > 0 && len(r) > width {
		return string(r[:width])
	}
	return s
}

func (m *Model) headerRow() string {
	gap := strings.Repeat(" ", colSpacing)
	return m.styles.Header.Render(
		pad("Timestamp", tsWidth) + gap + pad("Level", levelWidth) + gap + "D" + gap + "Message")
}

// formatRow renders one entry as a table row. The D column marks entries
// that carry extra fields beyond the reserved three.
func (m *Model) formatRow(e model.Entry, selected bool) string {
	gap := strings.Repeat(" ", colSpacing)
	marker := " "
	if e.HasData() {
		marker = "*"
	}
	msg := strings.SplitN(e.Message, "\n", 2)[0]
	msgWidth := m.termWidth - tsWidth - levelWidth - 1 - 3*colSpacing
	if m.wrap {
		msg = truncate(msg, msgWidth)
	}
	if selected {
		line := pad(e.Timestamp, tsWidth) + gap + pad(e.Level, levelWidth) + gap + marker + gap + msg
		return m.styles.Selected.Render(pad(line, m.termWidth))
	}
	level := pad(e.Level, levelWidth)
	if st, ok := m.styles.Level[strings.ToLower(e.Level)]; ok {
		level = st.Render(level)
	}
	return pad(e.Timestamp, tsWidth) + gap + level + gap + marker + gap + msg
}

func (m *Model) detailContent() string {
	if m.detailJSON {
		return m.detailEntry.PrettyJSON()
	}
	if !m.detailEntry.HasData() {
		return "(no extra fields)"
	}
	return formatData(m.detailEntry.Data, 0)
}

// formatData renders nested extra fields as an aligned key/value tree.
func formatData(data map[string]any, depth int) string {
	keys := make([]string, 0, len(data))
	padding := 0
	for k := range data {
		keys = append(keys, k)
		if len(k) > padding {
			padding = len(k)
		}
	}
	sort.Strings(keys)
	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	for _, k := range keys {
		switch v := data[k].(type) {
		case map[string]any:
			fmt.Fprintf(&b, "%s%s:\n%s", indent, k, formatData(v, depth+1))
		default:
			fmt.Fprintf(&b, "%s%s %s\n", indent, pad(k+":", padding+1), model.FormatValue(v))
		}
	}
	return b.String()
}
