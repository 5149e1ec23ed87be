package player

import "context"

// Interface is the media widget contract consumed by the playback service.
//
// All commands are fire-and-forget: their outcome is only observable through
// later notifications on Events. Commands issued before EventReady are
// dropped.
type Interface interface {
	// Init starts the widget with streamID cued but not playing.
	// EventReady fires once the widget accepts commands.
	Init(ctx context.Context, streamID string) error
	Load(streamID string)
	Play()
	Pause()
	Mute()
	Unmute()
	SetVolume(level int)
	// CurrentItemID reports what is actually rendering, "" if nothing.
	// It may differ from the requested stream, e.g. during an inserted ad.
	CurrentItemID() string
	Events() <-chan Event
	Close() error
}

// Verify implementations at compile time.
var (
	_ Interface = (*MPV)(nil)
	_ Interface = (*Mock)(nil)
)
