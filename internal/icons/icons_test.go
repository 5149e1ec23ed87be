//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestPlayPause(t *testing.T) {
	tests := []struct {
		style string
		play  string
		pause string
	}{
		{"none", ">", "||"},
		{"unicode", "▶", "⏸"},
		{"nerd", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := Play(); got != tt.play {
				t.Errorf("Play() = %q, want %q", got, tt.play)
			}
			if got := Pause(); got != tt.pause {
				t.Errorf("Pause() = %q, want %q", got, tt.pause)
			}
		})
	}

	Init("none")
}

func TestVolumeIconsDiffer(t *testing.T) {
	for _, style := range []string{"none", "unicode", "nerd"} {
		Init(style)
		if Volume() == VolumeMute() {
			t.Errorf("style %q: Volume and VolumeMute are both %q", style, Volume())
		}
		if Dot() == "" {
			t.Errorf("style %q: Dot is empty", style)
		}
	}

	Init("none")
}

func TestFormatStation(t *testing.T) {
	tests := []struct {
		style    string
		expected string
	}{
		{"none", "Lofi"},
		{"unicode", "📻 Lofi"},
		{"nerd", "\U000f0439 Lofi"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatStation("Lofi"); got != tt.expected {
				t.Errorf("FormatStation(%q) = %q, want %q", "Lofi", got, tt.expected)
			}
		})
	}

	Init("none")
}
