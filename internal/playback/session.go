package playback

import (
	"time"

	"github.com/llehouerou/pcsradio/internal/logging"
	"github.com/llehouerou/pcsradio/internal/player"
	"github.com/llehouerou/pcsradio/internal/station"
)

// Session is the playback state machine.
//
// A Session is not safe for concurrent use: every method must run on the
// same goroutine, one at a time. Service provides that goroutine.
type Session struct {
	widget player.Interface
	clock  Clock
	opts   Options

	station     station.Station
	volume      int
	playing     bool // confirmed by the widget, never optimistic
	ready       bool
	pendingPlay bool
	muted       bool
	lastAdSkip  time.Time

	poll    *confirmPoll
	lastGen uint64

	status Status
	label  string
}

// NewSession creates a session for widget. Unknown stations fall back to
// the registry default and the volume is clamped to [0,100].
func NewSession(widget player.Interface, opts Options) *Session {
	opts = opts.withDefaults()

	st, ok := station.Lookup(opts.Station)
	if !ok {
		st = station.Default()
	}

	return &Session{
		widget:  widget,
		clock:   opts.Clock,
		opts:    opts,
		station: st,
		volume:  clampVolume(opts.Volume),
		status:  StatusUninitialized,
		label:   LabelConnecting,
	}
}

func clampVolume(v int) int {
	return max(0, min(100, v))
}

func (s *Session) setStatus(status Status, label string) {
	s.status = status
	s.label = label
}

// TogglePlayPause plays or pauses. Before readiness it only queues or
// cancels the play intent.
func (s *Session) TogglePlayPause() {
	if !s.ready {
		s.pendingPlay = !s.pendingPlay
		logging.WithField("pending", s.pendingPlay).Debug("play intent toggled before ready")
		return
	}

	if s.playing {
		s.cancelConfirm()
		s.unmute()
		s.widget.Pause()
		return
	}

	s.muteUntilConfirmed()
	s.widget.Play()
}

// SwitchStation tunes into key. It reports whether a switch happened:
// unknown keys, the current station and a widget that is not ready are
// no-ops.
func (s *Session) SwitchStation(key string) bool {
	if !s.ready || key == s.station.Key {
		return false
	}
	st, ok := station.Lookup(key)
	if !ok {
		return false
	}

	s.station = st
	s.muteUntilConfirmed()
	s.widget.Load(st.StreamID)
	s.setStatus(StatusBuffering, LabelBuffering)

	logging.WithField("station", st.Key).Info("station switched")
	return true
}

// SwitchStationAt tunes into the station at a 1-based registry position.
func (s *Session) SwitchStationAt(position int) bool {
	st, ok := station.At(position)
	if !ok {
		return false
	}
	return s.SwitchStation(st.Key)
}

// StepStation tunes into the station delta registry positions away from the
// current one, wrapping around. Steps accumulate on the session's own
// station, so quick repeated steps each move one further.
func (s *Session) StepStation(delta int) bool {
	target := s.station
	for ; delta > 0; delta-- {
		target = station.Next(target.Key)
	}
	for ; delta < 0; delta++ {
		target = station.Previous(target.Key)
	}
	return s.SwitchStation(target.Key)
}

// ChangeVolume adjusts the volume by delta, clamped to [0,100]. The widget
// only hears about it once ready; the stored volume always changes.
func (s *Session) ChangeVolume(delta int) {
	s.volume = clampVolume(s.volume + delta)
	if s.ready {
		s.widget.SetVolume(s.volume)
	}
}

// HandleEvent dispatches a widget notification.
func (s *Session) HandleEvent(e player.Event) {
	switch e.Kind {
	case player.EventReady:
		s.HandleReady()
	case player.EventStateChange:
		s.HandleStateChange(e.State)
	case player.EventError:
		s.HandleError(e.Err)
	}
}

// HandleReady marks the widget ready and replays a queued play intent.
func (s *Session) HandleReady() {
	s.ready = true
	s.widget.SetVolume(s.volume)
	s.setStatus(StatusReady, LabelReady)

	if s.pendingPlay {
		s.pendingPlay = false
		s.muteUntilConfirmed()
		s.widget.Play()
	}
}

// HandleStateChange applies a widget state report. The ad gate runs first
// and swallows the report when it reloads the station.
func (s *Session) HandleStateChange(state player.State) {
	if !s.ready {
		return
	}
	if state == player.Playing && s.skipAd() {
		return
	}

	switch state {
	case player.Playing:
		s.playing = true
		s.restoreIfConfirmed()
		s.setStatus(StatusPlaying, LabelLive)
	case player.Paused:
		s.playing = false
		s.setStatus(StatusPaused, LabelPaused)
	case player.Buffering:
		s.setStatus(StatusBuffering, LabelBuffering)
	case player.Ended:
		// Livestreams are not expected to end.
		logging.WithField("station", s.station.Key).Info("stream ended, reloading")
		s.widget.Load(s.station.StreamID)
	}
}

// HandleError reports the station offline. The session stays usable; a
// pending confirmation is dropped and the audio stays muted until the
// widget plays the requested stream again.
func (s *Session) HandleError(err error) {
	s.playing = false
	s.cancelConfirm()
	s.setStatus(StatusError, LabelOffline)
	logging.WithField("station", s.station.Key).Warnf("playback error: %v", err)
}

// Snapshot returns the observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Station:     s.station,
		Volume:      s.volume,
		Playing:     s.playing,
		Ready:       s.ready,
		PendingPlay: s.pendingPlay,
		Muted:       s.muted,
		Confirming:  s.poll != nil,
		Status:      s.status,
		Label:       s.label,
	}
}
