// Package playerbar renders the radio's single-line player bar.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pcsradio/internal/icons"
	"github.com/llehouerou/pcsradio/internal/playback"
	"github.com/llehouerou/pcsradio/internal/ui/render"
	"github.com/llehouerou/pcsradio/internal/ui/styles"
)

// Height is the player bar height: top border, content, bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Station   string
	Playing   bool // user intent, drives the play/pause affordance
	Muted     bool
	Volume    int
	Indicator playback.Indicator
	Label     string
}

// NewState builds the bar state from a playback snapshot.
func NewState(snap playback.Snapshot) State {
	return State{
		Station:   snap.Station.Name,
		Playing:   snap.Playing,
		Muted:     snap.Muted,
		Volume:    snap.Volume,
		Indicator: snap.Indicator(),
		Label:     snap.Label,
	}
}

// Affordance returns the control offered to the user: pause while
// playing, play otherwise.
func (s State) Affordance() string {
	if s.Playing {
		return icons.Pause()
	}
	return icons.Play()
}

// Render returns the player bar for the given outer width.
//
//	▶  Lofi   ● Live                    🔊 ━━━━━━──── 50%
func Render(s State, width int) string {
	// border (2) + padding (2*2)
	inner := max(width-6, 0)

	status := renderStatus(s.Indicator, s.Label)
	volume := RenderVolume(s.Volume, s.Muted, volumeBarWidth(inner))

	sep := "   "
	fixed := lipgloss.Width(s.Affordance()) + 2 + lipgloss.Width(sep) + lipgloss.Width(status)
	nameWidth := max(inner-fixed-lipgloss.Width(volume)-1, 1)
	name := render.Truncate(icons.FormatStation(s.Station), nameWidth)

	var left strings.Builder
	left.WriteString(affordanceStyle().Render(s.Affordance()))
	left.WriteString("  ")
	left.WriteString(styles.StationName(name))
	left.WriteString(sep)
	left.WriteString(status)

	content := render.Row(left.String(), volume, inner)
	return styles.Panel(s.Indicator == playback.IndicatorLive).
		Padding(0, 2).
		Width(width - 2).
		Render(content)
}

func renderStatus(ind playback.Indicator, label string) string {
	dot := lipgloss.NewStyle().
		Foreground(styles.T().IndicatorColor(string(ind))).
		Render(icons.Dot())
	return dot + " " + labelStyle().Render(render.Sanitize(label))
}

func volumeBarWidth(inner int) int {
	switch {
	case inner >= 80:
		return 20
	case inner >= 50:
		return 10
	default:
		return 0
	}
}
