package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header     lipgloss.Style
	Selected   lipgloss.Style
	Status     lipgloss.Style
	StatusMode lipgloss.Style
	Hint       lipgloss.Style
	Level      map[string]lipgloss.Style
	PopupBox   lipgloss.Style
	PopupTitle lipgloss.Style
	PickerSel  lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Header = lipgloss.NewStyle().Bold(true)
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27"))
		s.StatusMode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
		s.Hint = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	} else {
		s.Header = lipgloss.NewStyle().Bold(true)
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
		s.StatusMode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
		s.Hint = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
	}
	s.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15"))
	s.PickerSel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15"))
	s.Level = map[string]lipgloss.Style{
		"trace": lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		"debug": lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		"info":  lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		"warn":  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		"error": lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		"fatal": lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
	}
	return s
}
