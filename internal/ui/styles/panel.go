package styles

import "github.com/charmbracelet/lipgloss"

// Panel returns the rounded border style of the player bar. The border
// takes the accent color while the stream is live.
func Panel(live bool) lipgloss.Style {
	t := T()
	border := t.Border
	if live {
		border = t.BorderActive
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
