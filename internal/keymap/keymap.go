package keymap

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "stations"
}

// Bindings contains every key binding, in help display order.
// Keys use bubbletea's key string form (" " is the space bar).
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionVolumeUp, []string{"up", "+"}, "Volume +10", "playback"},
	{ActionVolumeDown, []string{"down", "-"}, "Volume -10", "playback"},

	// Stations
	{ActionStation1, []string{"1"}, "Station 1", "stations"},
	{ActionStation2, []string{"2"}, "Station 2", "stations"},
	{ActionStation3, []string{"3"}, "Station 3", "stations"},
	{ActionStation4, []string{"4"}, "Station 4", "stations"},
	{ActionNextStation, []string{"right", "l"}, "Next station", "stations"},
	{ActionPrevStation, []string{"left", "h"}, "Previous station", "stations"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// DisplayKey renders a key for help text.
func DisplayKey(key string) string {
	switch key {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	default:
		return key
	}
}
