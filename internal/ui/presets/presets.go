// Package presets renders the numbered station list.
package presets

import (
	"strconv"
	"strings"

	"github.com/llehouerou/pcsradio/internal/station"
	"github.com/llehouerou/pcsradio/internal/ui/render"
	"github.com/llehouerou/pcsradio/internal/ui/styles"
)

const (
	activeMarker   = "▸ "
	inactiveMarker = "  "
)

// Render returns one line per station in registry order. The station
// whose key is active is marked and highlighted. Lines are truncated to
// width.
func Render(active string, width int) string {
	s := styles.T().S()
	all := station.All()
	lines := make([]string, 0, len(all))

	for i, st := range all {
		num := s.Key.Render(strconv.Itoa(i + 1))
		if st.Key == active {
			lines = append(lines, render.Truncate(activeMarker+num+" "+s.Active.Render(st.Name), width))
			continue
		}
		lines = append(lines, render.Truncate(inactiveMarker+num+" "+s.Muted.Render(st.Name), width))
	}
	return strings.Join(lines, "\n")
}

// Height returns the number of lines Render produces.
func Height() int {
	return station.Len()
}
