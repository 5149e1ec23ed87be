package playback

// Status is the session's position in the playback state machine.
//
//	Uninitialized ──ready──▶ Ready ──▶ {Playing, Paused, Buffering, Error}
//
// There is no terminal state: Error is left by any later notification or
// user command once the widget recovers.
type Status int

const (
	StatusUninitialized Status = iota
	StatusReady
	StatusPlaying
	StatusPaused
	StatusBuffering
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "Uninitialized"
	case StatusReady:
		return "Ready"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	case StatusBuffering:
		return "Buffering"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Indicator is one of the four visual states of the status dot.
type Indicator string

const (
	IndicatorReady     Indicator = "ready"
	IndicatorLive      Indicator = "live"
	IndicatorBuffering Indicator = "buffering"
	IndicatorError     Indicator = "error"
)

// Indicator maps a status to its status dot.
func (s Status) Indicator() Indicator {
	switch s {
	case StatusPlaying:
		return IndicatorLive
	case StatusBuffering:
		return IndicatorBuffering
	case StatusError:
		return IndicatorError
	case StatusUninitialized, StatusReady, StatusPaused:
		return IndicatorReady
	default:
		return IndicatorReady
	}
}

// Status labels shown next to the dot.
const (
	LabelConnecting  = "Connecting"
	LabelReady       = "Ready"
	LabelLive        = "Live"
	LabelPaused      = "Paused"
	LabelBuffering   = "Buffering"
	LabelOffline     = "Station Offline"
	LabelUnconfirmed = "Stream Unconfirmed"
)
