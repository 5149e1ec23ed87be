package playerbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/llehouerou/pcsradio/internal/icons"
	"github.com/llehouerou/pcsradio/internal/ui/styles"
)

// RenderVolume renders the volume icon, a meter of barWidth cells and the
// percentage. The meter is omitted when barWidth is zero. While muted the
// meter shows the level that will be restored.
func RenderVolume(volume int, muted bool, barWidth int) string {
	icon := icons.Volume()
	if muted {
		icon = icons.VolumeMute()
	}
	pct := volumeStyle().Render(fmt.Sprintf("%3d%%", volume))
	if barWidth <= 0 {
		return volumeStyle().Render(icon) + " " + pct
	}
	return volumeStyle().Render(icon) + " " + newMeter(barWidth, muted).ViewAs(float64(volume)/100) + " " + pct
}

func newMeter(width int, muted bool) progress.Model {
	t := styles.T()
	opts := []progress.Option{
		progress.WithoutPercentage(),
		progress.WithWidth(width),
		progress.WithFillCharacters('━', '─'),
	}
	if muted {
		opts = append(opts, progress.WithSolidFill(string(t.FgSubtle)))
	} else {
		opts = append(opts, progress.WithGradient(string(t.Primary), string(t.Secondary)))
	}
	m := progress.New(opts...)
	m.EmptyColor = string(t.FgSubtle)
	return m
}
