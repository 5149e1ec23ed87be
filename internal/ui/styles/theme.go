// Package styles holds the radio's color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - station name start, active preset
	Secondary lipgloss.Color // Gold/orange - station name end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Borders
	Border       lipgloss.Color // Idle player bar
	BorderActive lipgloss.Color // Player bar while live

	// Status dot colors
	Ready     lipgloss.Color // Grey - connected, not live
	Live      lipgloss.Color // Green
	Buffering lipgloss.Color // Yellow
	Error     lipgloss.Color // Red

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Active lipgloss.Style // Selected preset
	Key    lipgloss.Style // Key hints
	Error  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:       lipgloss.Color("#585858"),
	BorderActive: lipgloss.Color("#a78bfa"),

	Ready:     lipgloss.Color("#808080"),
	Live:      lipgloss.Color("#42b883"),
	Buffering: lipgloss.Color("#f1c40f"),
	Error:     lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// IndicatorColor returns the status dot color for an indicator name
// ("ready", "live", "buffering", "error").
func (t *Theme) IndicatorColor(indicator string) lipgloss.Color {
	switch indicator {
	case "live":
		return t.Live
	case "buffering":
		return t.Buffering
	case "error":
		return t.Error
	default:
		return t.Ready
	}
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
