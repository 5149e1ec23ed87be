// Package icons selects the glyphs used by the player bar.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play       string
	Pause      string
	Volume     string
	VolumeMute string
	Dot        string
	Radio      string
}

var (
	nerdIcons = Icons{
		Play:       "",      // nf-fa-play
		Pause:      "",      // nf-fa-pause
		Volume:     "\U000f057e",  // nf-md-volume_high
		VolumeMute: "\U000f075f",  // nf-md-volume_off
		Dot:        "",      // nf-fa-circle
		Radio:      "\U000f0439 ", // nf-md-radio
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Dot:        "●",
		Radio:      "📻 ",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Volume:     "vol",
		VolumeMute: "mute",
		Dot:        "*",
		Radio:      "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Play returns the play affordance shown while paused.
func Play() string { return current.Play }

// Pause returns the pause affordance shown while playing.
func Pause() string { return current.Pause }

// Volume returns the volume icon.
func Volume() string { return current.Volume }

// VolumeMute returns the icon shown while audio is held muted.
func VolumeMute() string { return current.VolumeMute }

// Dot returns the status dot.
func Dot() string { return current.Dot }

// FormatStation formats a station name with the radio icon.
func FormatStation(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Radio + name
}
