// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pcsradio/internal/icons"
	"github.com/llehouerou/pcsradio/internal/ui/render"
	"github.com/llehouerou/pcsradio/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Title is the application name shown on the left.
const Title = "PCS Radio"

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

// Render returns the header bar for the given width: the title on the left
// and hint right-aligned. The hint is dropped when both do not fit.
func Render(hint string, width int) string {
	if width < 20 {
		return ""
	}
	title := " " + icons.FormatStation(styles.T().S().Title.Render(Title))
	if hint == "" || lipgloss.Width(title)+lipgloss.Width(hint)+2 > width {
		return title
	}
	return render.Row(title, hintStyle.Render(hint)+" ", width)
}
