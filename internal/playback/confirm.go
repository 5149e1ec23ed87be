package playback

import (
	"time"

	"github.com/llehouerou/pcsradio/internal/logging"
)

// confirmPoll is the single active mute-until-confirmed poll.
// Ticks carrying another generation are stale and ignored.
type confirmPoll struct {
	gen     uint64
	started time.Time
}

// muteUntilConfirmed silences the widget until the requested stream is
// confirmed to be rendering. Any previous poll is replaced, so restoration
// always binds to the latest request.
func (s *Session) muteUntilConfirmed() {
	s.widget.Mute()
	s.muted = true
	s.cancelConfirm()

	s.lastGen++
	s.poll = &confirmPoll{gen: s.lastGen, started: s.clock.Now()}
}

func (s *Session) cancelConfirm() {
	s.poll = nil
}

func (s *Session) unmute() {
	s.widget.Unmute()
	s.muted = false
}

// PollGeneration returns the active poll's generation.
func (s *Session) PollGeneration() (uint64, bool) {
	if s.poll == nil {
		return 0, false
	}
	return s.poll.gen, true
}

// ConfirmTick runs one tick of the poll identified by gen.
func (s *Session) ConfirmTick(gen uint64) {
	if s.poll == nil || s.poll.gen != gen {
		return
	}

	if s.widget.CurrentItemID() == s.station.StreamID {
		s.cancelConfirm()
		s.unmute()
		s.widget.SetVolume(s.volume)
		logging.WithField("station", s.station.Key).Debug("stream confirmed, audio restored")
		return
	}

	if s.opts.ConfirmTimeout > 0 && s.clock.Now().Sub(s.poll.started) >= s.opts.ConfirmTimeout {
		// Audio stays muted: an unconfirmed stream may be an ad.
		s.cancelConfirm()
		s.playing = false
		s.setStatus(StatusError, LabelUnconfirmed)
		logging.WithFields(map[string]any{
			"station": s.station.Key,
			"timeout": s.opts.ConfirmTimeout,
		}).Warn("stream not confirmed, giving up")
	}
}

// restoreIfConfirmed unmutes a session left muted without a running poll,
// after a timeout or an error, once the widget renders the requested stream.
func (s *Session) restoreIfConfirmed() {
	if !s.muted || s.poll != nil || s.widget.CurrentItemID() != s.station.StreamID {
		return
	}
	s.unmute()
	s.widget.SetVolume(s.volume)
	logging.WithField("station", s.station.Key).Debug("stream recovered, audio restored")
}

// skipAd reloads the station when the widget reports playing something
// other than the requested stream. Reloads are spaced by AdCooldown so the
// same content cannot trigger a reload loop.
func (s *Session) skipAd() bool {
	current := s.widget.CurrentItemID()
	if current == "" || current == s.station.StreamID {
		return false
	}

	now := s.clock.Now()
	if !s.lastAdSkip.IsZero() && now.Sub(s.lastAdSkip) < s.opts.AdCooldown {
		return false
	}

	s.lastAdSkip = now
	s.widget.Load(s.station.StreamID)
	logging.WithFields(map[string]any{
		"station":  s.station.Key,
		"rendered": current,
	}).Info("unexpected item playing, reloading station")
	return true
}
