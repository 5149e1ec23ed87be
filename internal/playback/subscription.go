package playback

const eventBufferSize = 16

// Subscription delivers snapshots to one subscriber.
type Subscription struct {
	Changed <-chan Snapshot
	Done    <-chan struct{}

	// Internal write channels
	changedCh chan Snapshot
	doneCh    chan struct{}
}

// newSubscription creates a new subscription with a buffered channel.
func newSubscription() *Subscription {
	s := &Subscription{
		changedCh: make(chan Snapshot, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.Changed = s.changedCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers a snapshot without blocking. A slow subscriber loses the
// oldest snapshots, never the newest.
func (s *Subscription) send(snap Snapshot) {
	for {
		select {
		case s.changedCh <- snap:
			return
		default:
		}
		select {
		case <-s.changedCh:
		default:
		}
	}
}
