// Package playback owns the radio's playback state machine.
package playback

import (
	"context"
	"errors"
	"time"
)

// Defaults for Options.
const (
	DefaultVolume          = 50
	DefaultConfirmInterval = 300 * time.Millisecond
	DefaultAdCooldown      = 3000 * time.Millisecond
	DefaultConfirmTimeout  = 30 * time.Second
)

// ErrClosed is returned when using a closed service.
var ErrClosed = errors.New("playback service closed")

// Options configures a session.
type Options struct {
	Station         string // initial station key
	Volume          int    // initial volume, clamped to [0,100]
	ConfirmInterval time.Duration
	AdCooldown      time.Duration
	// ConfirmTimeout bounds the mute-until-confirmed poll. Zero uses the
	// default; a negative value disables the bound.
	ConfirmTimeout time.Duration
	Clock          Clock
}

// DefaultOptions returns the options of a fresh radio: default station,
// volume 50.
func DefaultOptions() Options {
	return Options{Volume: DefaultVolume}
}

func (o Options) withDefaults() Options {
	if o.ConfirmInterval <= 0 {
		o.ConfirmInterval = DefaultConfirmInterval
	}
	if o.AdCooldown <= 0 {
		o.AdCooldown = DefaultAdCooldown
	}
	switch {
	case o.ConfirmTimeout == 0:
		o.ConfirmTimeout = DefaultConfirmTimeout
	case o.ConfirmTimeout < 0:
		o.ConfirmTimeout = 0
	}
	if o.Clock == nil {
		o.Clock = systemClock{}
	}
	return o
}

// Service runs a Session on its own goroutine.
//
// Intents, widget notifications and poll ticks are handled one at a time in
// arrival order. Intent methods never block on the widget; their effect is
// observable through Snapshot and Subscribe.
type Service interface {
	// Start initialises the widget with the current station and starts the
	// event loop.
	Start(ctx context.Context) error

	// Intents
	TogglePlayPause()
	SwitchStation(key string)
	SwitchStationAt(position int)
	StepStation(delta int)
	ChangeVolume(delta int)

	// State queries
	Snapshot() Snapshot

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
