// Package player adapts an external media widget to the radio.
package player

// State is a playback state reported by the widget.
type State int

const (
	Playing State = iota
	Paused
	Buffering
	Ended
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Buffering:
		return "Buffering"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}
