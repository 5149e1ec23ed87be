// Package config loads the radio's TOML configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "pcsradio"

type Config struct {
	Icons   string `koanf:"icons"`   // "nerd", "unicode", or "none"
	Station string `koanf:"station"` // station key tuned in at startup
	Volume  *int   `koanf:"volume"`  // initial volume 0-100 (default: 50)

	Notifications *bool `koanf:"notifications"` // desktop notifications (default: true)
	MPRIS         *bool `koanf:"mpris"`         // D-Bus media controls (default: true)

	Player   PlayerConfig   `koanf:"player"`
	Playback PlaybackConfig `koanf:"playback"`
	Log      LogConfig      `koanf:"log"`
	Assets   AssetsConfig   `koanf:"assets"`
}

// PlayerConfig configures the mpv process.
type PlayerConfig struct {
	MPVPath    string   `koanf:"mpv_path"`    // default: "mpv" from PATH
	Socket     string   `koanf:"socket"`      // IPC socket (default: $XDG_RUNTIME_DIR/pcsradio/mpv.sock)
	YtdlFormat string   `koanf:"ytdl_format"` // default: "bestaudio/best"
	ExtraArgs  []string `koanf:"extra_args"`
}

// PlaybackConfig tunes the ad mitigation.
type PlaybackConfig struct {
	ConfirmIntervalMs int  `koanf:"confirm_interval_ms"` // default: 300
	AdCooldownMs      int  `koanf:"ad_cooldown_ms"`      // default: 3000
	ConfirmTimeoutMs  *int `koanf:"confirm_timeout_ms"`  // default: 30000, 0 disables
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `koanf:"level"` // logrus level (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/pcsradio/pcsradio.log
	JSON  bool   `koanf:"json"`
}

// AssetsConfig configures the offline asset cache.
type AssetsConfig struct {
	Origin string `koanf:"origin"`  // web front end to mirror, e.g. "https://radio.example.com"
	Listen string `koanf:"listen"`  // default: "127.0.0.1:8347"
	DBPath string `koanf:"db_path"` // default: $XDG_CACHE_HOME/pcsradio/assets.db
}

// Timings holds the resolved playback durations.
type Timings struct {
	ConfirmInterval time.Duration
	AdCooldown      time.Duration
	ConfirmTimeout  time.Duration // zero means unbounded
}

// Load reads the configuration files. extra paths, typically from the
// command line, take priority over the default locations.
func Load(extra ...string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := append(getConfigPaths(), extra...)

	for _, path := range configPaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Player.MPVPath = expandPath(cfg.Player.MPVPath)
	cfg.Player.Socket = expandPath(cfg.Player.Socket)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Assets.DBPath = expandPath(cfg.Assets.DBPath)

	// Normalize origin (remove trailing slash)
	cfg.Assets.Origin = strings.TrimSuffix(cfg.Assets.Origin, "/")

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/pcsradio/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetVolume returns the initial volume, clamped to [0,100].
func (c *Config) GetVolume() int {
	if c.Volume == nil {
		return 50
	}
	return max(0, min(100, *c.Volume))
}

// NotificationsEnabled reports whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// MPRISEnabled reports whether the MPRIS bridge is on.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player
	if cfg.MPVPath == "" {
		cfg.MPVPath = "mpv"
	}
	if cfg.Socket == "" {
		cfg.Socket = filepath.Join(xdg.RuntimeDir, appName, "mpv.sock")
	}
	if cfg.YtdlFormat == "" {
		cfg.YtdlFormat = "bestaudio/best"
	}
	return cfg
}

// GetTimings returns the playback timings with defaults applied.
func (c *Config) GetTimings() Timings {
	t := Timings{
		ConfirmInterval: 300 * time.Millisecond,
		AdCooldown:      3000 * time.Millisecond,
		ConfirmTimeout:  30 * time.Second,
	}
	if ms := c.Playback.ConfirmIntervalMs; ms > 0 {
		t.ConfirmInterval = time.Duration(ms) * time.Millisecond
	}
	if ms := c.Playback.AdCooldownMs; ms > 0 {
		t.AdCooldown = time.Duration(ms) * time.Millisecond
	}
	if p := c.Playback.ConfirmTimeoutMs; p != nil {
		t.ConfirmTimeout = time.Duration(max(0, *p)) * time.Millisecond
	}
	return t
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	return cfg
}

// GetAssetsConfig returns the asset cache configuration with defaults applied.
func (c *Config) GetAssetsConfig() AssetsConfig {
	cfg := c.Assets
	if cfg.Listen == "" {
		cfg.Listen = "127.0.0.1:8347"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(xdg.CacheHome, appName, "assets.db")
	}
	return cfg
}

// HasAssetsOrigin returns true if an origin to mirror is configured.
func (c *Config) HasAssetsOrigin() bool {
	return c.Assets.Origin != ""
}
