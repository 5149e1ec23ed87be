// Package keymap maps key presses to radio actions.
package keymap

import "strings"

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"

	// Station actions
	ActionStation1    Action = "station_1"
	ActionStation2    Action = "station_2"
	ActionStation3    Action = "station_3"
	ActionStation4    Action = "station_4"
	ActionNextStation Action = "next_station"
	ActionPrevStation Action = "prev_station"
)

// VolumeStep is the volume change of one volume key press.
const VolumeStep = 10

const stationPrefix = "station_"

// StationPosition returns the 1-based registry position selected by a
// station_N action.
func StationPosition(a Action) (int, bool) {
	rest, ok := strings.CutPrefix(string(a), stationPrefix)
	if !ok || len(rest) != 1 || rest[0] < '1' || rest[0] > '9' {
		return 0, false
	}
	return int(rest[0] - '0'), true
}
