package mpris

import (
	"math"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/pcsradio/internal/playback"
	"github.com/llehouerou/pcsradio/internal/station"
)

// Controller is the part of playback.Service the media keys drive.
type Controller interface {
	TogglePlayPause()
	StepStation(delta int)
	ChangeVolume(delta int)
	Snapshot() playback.Snapshot
}

const (
	identity    = "PCS Radio"
	busName     = "pcsradio"
	trackPrefix = "/org/mpris/MediaPlayer2/pcsradio/station/"
)

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return identity, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter over a
// playback controller. Play and Pause are expressed as toggles guarded by
// the current intent, so repeated media keys are idempotent.
type playerAdapter struct {
	ctl Controller
}

func (p *playerAdapter) Next() error {
	p.ctl.StepStation(1)
	return nil
}

func (p *playerAdapter) Previous() error {
	p.ctl.StepStation(-1)
	return nil
}

// wantsPlay reports the current play intent: playing, or a play queued
// before the widget is ready.
func (p *playerAdapter) wantsPlay() bool {
	snap := p.ctl.Snapshot()
	return snap.Playing || snap.PendingPlay
}

func (p *playerAdapter) Pause() error {
	if p.wantsPlay() {
		p.ctl.TogglePlayPause()
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.ctl.TogglePlayPause()
	return nil
}

// Stop pauses: a livestream has no stopped position to return to.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	if !p.wantsPlay() {
		p.ctl.TogglePlayPause()
	}
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Livestreams cannot seek
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	snap := p.ctl.Snapshot()
	switch {
	case snap.Status == playback.StatusUninitialized:
		return types.PlaybackStatusStopped, nil
	case snap.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.ctl.Snapshot()
	return types.Metadata{
		TrackId: dbus.ObjectPath(trackPrefix + snap.Station.Key),
		Title:   snap.Station.Name,
		Artist:  []string{identity},
		Album:   snap.Label,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.ctl.Snapshot().Volume) / 100, nil
}

// SetVolume maps the MPRIS 0..1 range onto the radio's 0..100 volume.
func (p *playerAdapter) SetVolume(v float64) error {
	target := int(math.Round(min(max(v, 0), 1) * 100))
	if delta := target - p.ctl.Snapshot().Volume; delta != 0 {
		p.ctl.ChangeVolume(delta)
	}
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return station.Len() > 1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return station.Len() > 1, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}
