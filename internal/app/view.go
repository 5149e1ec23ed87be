// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pcsradio/internal/ui/headerbar"
	"github.com/llehouerou/pcsradio/internal/ui/playerbar"
	"github.com/llehouerou/pcsradio/internal/ui/presets"
	"github.com/llehouerou/pcsradio/internal/ui/render"
	"github.com/llehouerou/pcsradio/internal/ui/styles"
)

const defaultWidth = 80

// View renders the application UI.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	width := m.Width
	if width <= 0 {
		width = defaultWidth
	}
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(headerbar.Render(m.headerHint(), width))
	b.WriteString("\n\n")
	b.WriteString(indent(presets.Render(m.Snapshot.Station.Key, width-2)))
	b.WriteString("\n\n")
	b.WriteString(playerbar.Render(playerbar.NewState(m.Snapshot), width))
	b.WriteString("\n")
	b.WriteString(" ")
	b.WriteString(m.help.View(m.helpKeys))

	if m.ErrorMsg != "" {
		b.WriteString("\n ")
		b.WriteString(s.Error.Render(render.Truncate(render.Sanitize(m.ErrorMsg), width-2)))
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	return strings.Join(lines, "\n")
}

func (m Model) headerHint() string {
	if m.ShowHelp {
		return ""
	}
	return m.Snapshot.Station.Name
}
