package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Highlight lipgloss.Style
	Faint     lipgloss.Style
	Card      lipgloss.Style
}

// newTheme binds the styles to w so color is dropped when w is not a terminal.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:     r.NewStyle().Faint(true).Width(14),
		Value:     r.NewStyle(),
		Highlight: r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Faint:     r.NewStyle().Faint(true),
		Card: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

// row renders an aligned "label value" line.
func (t theme) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, t.Label.Render(label), t.Value.Render(value))
}
