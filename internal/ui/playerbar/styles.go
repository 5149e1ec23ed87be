package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pcsradio/internal/ui/styles"
)

func affordanceStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().FgBase).Bold(true)
}

func labelStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func volumeStyle() lipgloss.Style {
	return styles.T().S().Base
}
