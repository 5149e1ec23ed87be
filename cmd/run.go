package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pcsradio/internal/app"
	"github.com/llehouerou/pcsradio/internal/config"
	"github.com/llehouerou/pcsradio/internal/errmsg"
	"github.com/llehouerou/pcsradio/internal/icons"
	"github.com/llehouerou/pcsradio/internal/logging"
	"github.com/llehouerou/pcsradio/internal/mpris"
	"github.com/llehouerou/pcsradio/internal/notify"
	"github.com/llehouerou/pcsradio/internal/playback"
	"github.com/llehouerou/pcsradio/internal/player"
	"github.com/llehouerou/pcsradio/internal/station"
)

// runRadio runs the TUI until the user quits.
func runRadio(stationFlag string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	icons.Init(cfg.Icons)

	stationKey := startupStation(cfg, stationFlag)
	if _, err := station.Find(stationKey); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpStationTune, stationKey, err))
	}

	pc := cfg.GetPlayerConfig()
	widget := player.NewMPV(player.MPVOptions{
		Path:       pc.MPVPath,
		Socket:     pc.Socket,
		YtdlFormat: pc.YtdlFormat,
		ExtraArgs:  pc.ExtraArgs,
	})
	svc := playback.New(widget, playbackOptions(stationKey, cfg.GetVolume(), cfg.GetTimings()))
	defer func() {
		if err := svc.Close(); err != nil {
			logging.Warnf("close playback: %v", err)
		}
	}()

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(svc)
		if err != nil {
			logging.Warnf("%s", errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer adapter.Close()
		}
	}

	notifier := notify.Disabled()
	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			logging.Warnf("%s", errmsg.Format(errmsg.OpNotify, err))
		} else {
			notifier = n
		}
	}

	logging.WithField("station", stationKey).Info("starting radio")

	m := app.New(svc, app.Options{Notifier: notifier})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

// startupStation picks the station tuned in at startup: the command line
// flag, then the config file, then the default.
func startupStation(cfg *config.Config, flag string) string {
	switch {
	case flag != "":
		return flag
	case cfg.Station != "":
		return cfg.Station
	default:
		return station.DefaultKey
	}
}

// playbackOptions maps the startup values and configured timings onto the
// service options. A zero configured timeout means unbounded.
func playbackOptions(stationKey string, volume int, t config.Timings) playback.Options {
	opts := playback.Options{
		Station:         stationKey,
		Volume:          volume,
		ConfirmInterval: t.ConfirmInterval,
		AdCooldown:      t.AdCooldown,
		ConfirmTimeout:  t.ConfirmTimeout,
	}
	if t.ConfirmTimeout == 0 {
		opts.ConfirmTimeout = -1
	}
	return opts
}

func formatStation(s station.Station, active bool) string {
	marker := " "
	if active {
		marker = "*"
	}
	return fmt.Sprintf("%s %d  %-10s %s", marker, station.Position(s.Key), s.Key, s.Name)
}
