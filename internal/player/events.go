package player

// EventKind identifies a widget notification.
type EventKind int

const (
	EventReady EventKind = iota
	EventStateChange
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventReady:
		return "ready"
	case EventStateChange:
		return "state"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a notification delivered by the widget.
type Event struct {
	Kind  EventKind
	State State // set for EventStateChange
	Err   error // set for EventError
}

const eventBufferSize = 64

// emit sends e without blocking. A full buffer drops the oldest event so the
// most recent widget state always gets through.
func emit(ch chan Event, e Event) {
	for {
		select {
		case ch <- e:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
