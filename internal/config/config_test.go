//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/radio.log",
			expected: filepath.Join(home, "radio.log"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.cache/pcsradio/assets.db",
			expected: filepath.Join(home, ".cache", "pcsradio", "assets.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/run/user/1000/mpv.sock",
			expected: "/run/user/1000/mpv.sock",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/radio.log",
			expected: "logs/radio.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, "config.toml", paths[len(paths)-1])
	assert.Equal(t, "config.toml", filepath.Base(paths[0]))
	assert.Equal(t, appName, filepath.Base(filepath.Dir(paths[0])))
}

func TestGetVolume(t *testing.T) {
	tests := []struct {
		name   string
		volume *int
		want   int
	}{
		{"unset defaults to 50", nil, 50},
		{"explicit zero", intPtr(0), 0},
		{"in range", intPtr(70), 70},
		{"above range", intPtr(140), 100},
		{"below range", intPtr(-5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Volume: tt.volume}
			assert.Equal(t, tt.want, cfg.GetVolume())
		})
	}
}

func TestToggles_DefaultOn(t *testing.T) {
	cfg := &Config{}
	assert.True(t, cfg.NotificationsEnabled())
	assert.True(t, cfg.MPRISEnabled())

	cfg = &Config{Notifications: boolPtr(false), MPRIS: boolPtr(false)}
	assert.False(t, cfg.NotificationsEnabled())
	assert.False(t, cfg.MPRISEnabled())
}

func TestGetPlayerConfig_Defaults(t *testing.T) {
	cfg := &Config{}

	pc := cfg.GetPlayerConfig()

	assert.Equal(t, "mpv", pc.MPVPath)
	assert.Equal(t, "bestaudio/best", pc.YtdlFormat)
	assert.Equal(t, "mpv.sock", filepath.Base(pc.Socket))
}

func TestGetPlayerConfig_CustomValues(t *testing.T) {
	cfg := &Config{Player: PlayerConfig{
		MPVPath:    "/opt/mpv/bin/mpv",
		Socket:     "/tmp/radio.sock",
		YtdlFormat: "251",
	}}

	pc := cfg.GetPlayerConfig()

	assert.Equal(t, "/opt/mpv/bin/mpv", pc.MPVPath)
	assert.Equal(t, "/tmp/radio.sock", pc.Socket)
	assert.Equal(t, "251", pc.YtdlFormat)
}

func TestGetTimings(t *testing.T) {
	tests := []struct {
		name     string
		playback PlaybackConfig
		want     Timings
	}{
		{
			name:     "defaults",
			playback: PlaybackConfig{},
			want:     Timings{300 * time.Millisecond, 3 * time.Second, 30 * time.Second},
		},
		{
			name: "custom",
			playback: PlaybackConfig{
				ConfirmIntervalMs: 500,
				AdCooldownMs:      5000,
				ConfirmTimeoutMs:  intPtr(10000),
			},
			want: Timings{500 * time.Millisecond, 5 * time.Second, 10 * time.Second},
		},
		{
			name:     "timeout disabled",
			playback: PlaybackConfig{ConfirmTimeoutMs: intPtr(0)},
			want:     Timings{300 * time.Millisecond, 3 * time.Second, 0},
		},
		{
			name: "invalid values fall back",
			playback: PlaybackConfig{
				ConfirmIntervalMs: -1,
				AdCooldownMs:      0,
				ConfirmTimeoutMs:  intPtr(-20),
			},
			want: Timings{300 * time.Millisecond, 3 * time.Second, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Playback: tt.playback}
			assert.Equal(t, tt.want, cfg.GetTimings())
		})
	}
}

func TestGetLogConfig_Defaults(t *testing.T) {
	lc := (&Config{}).GetLogConfig()

	assert.Equal(t, "info", lc.Level)
	assert.Equal(t, "pcsradio.log", filepath.Base(lc.File))
	assert.False(t, lc.JSON)
}

func TestGetAssetsConfig_Defaults(t *testing.T) {
	cfg := &Config{}

	ac := cfg.GetAssetsConfig()

	assert.Equal(t, "127.0.0.1:8347", ac.Listen)
	assert.Equal(t, "assets.db", filepath.Base(ac.DBPath))
	assert.False(t, cfg.HasAssetsOrigin())
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(originalWd) })
	return tmpDir
}

func TestLoad_EmptyConfig(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("config.toml", []byte(""), 0o600))

	// Load should succeed even with empty config
	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	// Values may be inherited from the user's config file if it exists.
}

func TestLoad_BasicConfig(t *testing.T) {
	chdirTemp(t)
	configContent := `
icons = "nerd"
station = "synthwave"
volume = 30
notifications = false

[player]
socket = "~/radio.sock"

[playback]
ad_cooldown_ms = 4000
confirm_timeout_ms = 0

[log]
level = "debug"
json = true

[assets]
origin = "https://radio.example.com/"
`
	require.NoError(t, os.WriteFile("config.toml", []byte(configContent), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "nerd", cfg.Icons)
	assert.Equal(t, "synthwave", cfg.Station)
	assert.Equal(t, 30, cfg.GetVolume())
	assert.False(t, cfg.NotificationsEnabled())
	assert.Equal(t, 4*time.Second, cfg.GetTimings().AdCooldown)
	assert.Equal(t, time.Duration(0), cfg.GetTimings().ConfirmTimeout)
	assert.Equal(t, "debug", cfg.GetLogConfig().Level)
	assert.True(t, cfg.Log.JSON)

	// Trailing slash is removed from the origin
	assert.Equal(t, "https://radio.example.com", cfg.Assets.Origin)

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, "radio.sock"), cfg.Player.Socket)
}

func TestLoad_ExtraPathWins(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile("config.toml", []byte(`station = "lofi"`), 0o600))
	extra := filepath.Join(dir, "override.toml")
	require.NoError(t, os.WriteFile(extra, []byte(`station = "ambient"`), 0o600))

	cfg, err := Load(extra)

	require.NoError(t, err)
	assert.Equal(t, "ambient", cfg.Station)
}

func TestLoad_MissingExtraPathIgnored(t *testing.T) {
	chdirTemp(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.NoError(t, err)
}

func TestLoad_InvalidToml(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("config.toml", []byte("station = [unclosed"), 0o600))

	_, err := Load()

	assert.Error(t, err)
}
