package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/llehouerou/pcsradio/internal/logging"
	"github.com/llehouerou/pcsradio/internal/player"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

const intentBufferSize = 32

type serviceImpl struct {
	widget   player.Interface
	session  *Session
	interval time.Duration

	// intents is the single inbox: user intents and widget notifications.
	intents chan func(*Session)

	mu       sync.RWMutex
	snapshot Snapshot

	subs   []*Subscription
	subsMu sync.RWMutex

	startOnce sync.Once
	closeOnce sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

// New creates a playback service driving widget.
func New(widget player.Interface, opts Options) Service {
	session := NewSession(widget, opts)
	return &serviceImpl{
		widget:   widget,
		session:  session,
		interval: session.opts.ConfirmInterval,
		intents:  make(chan func(*Session), intentBufferSize),
		snapshot: session.Snapshot(),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start launches the event loop and initialises the widget. An Init failure
// is also reported as a playback error so the UI shows the station offline.
func (s *serviceImpl) Start(ctx context.Context) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}

	// Read before the loop owns the session.
	var streamID string
	started := false
	s.startOnce.Do(func() {
		streamID = s.session.station.StreamID
		started = true
		go s.run()
		go s.pump()
	})
	if !started {
		return nil
	}

	if err := s.widget.Init(ctx, streamID); err != nil {
		s.enqueue(func(sess *Session) { sess.HandleError(err) })
		return fmt.Errorf("init player: %w", err)
	}
	return nil
}

func (s *serviceImpl) TogglePlayPause() {
	s.enqueue(func(sess *Session) { sess.TogglePlayPause() })
}

func (s *serviceImpl) SwitchStation(key string) {
	s.enqueue(func(sess *Session) { sess.SwitchStation(key) })
}

func (s *serviceImpl) SwitchStationAt(position int) {
	s.enqueue(func(sess *Session) { sess.SwitchStationAt(position) })
}

func (s *serviceImpl) StepStation(delta int) {
	s.enqueue(func(sess *Session) { sess.StepStation(delta) })
}

func (s *serviceImpl) ChangeVolume(delta int) {
	s.enqueue(func(sess *Session) { sess.ChangeVolume(delta) })
}

func (s *serviceImpl) enqueue(fn func(*Session)) {
	select {
	case s.intents <- fn:
	case <-s.done:
	}
}

// Snapshot returns the state published after the last handled step.
func (s *serviceImpl) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	select {
	case <-s.done:
		sub.close()
	default:
		s.subs = append(s.subs, sub)
	}
	return sub
}

// run is the only goroutine touching the session.
func (s *serviceImpl) run() {
	defer close(s.stopped)

	var (
		ticker    *time.Ticker
		tickerGen uint64
		tickC     <-chan time.Time
	)
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tickC = nil, nil
		}
	}
	defer stopTicker()

	// syncTicker keeps exactly one ticker alive for the session's current
	// poll generation.
	syncTicker := func() {
		gen, active := s.session.PollGeneration()
		switch {
		case !active:
			stopTicker()
		case ticker == nil || gen != tickerGen:
			stopTicker()
			ticker = time.NewTicker(s.interval)
			tickC = ticker.C
			tickerGen = gen
		}
	}

	for {
		select {
		case <-s.done:
			return
		case fn := <-s.intents:
			fn(s.session)
		case <-tickC:
			s.session.ConfirmTick(tickerGen)
		}
		syncTicker()
		s.publish()
	}
}

// pump queues widget notifications behind the intents that arrived before
// them, so both are handled in arrival order.
func (s *serviceImpl) pump() {
	events := s.widget.Events()
	for {
		select {
		case <-s.done:
			return
		case e := <-events:
			logging.WithFields(map[string]any{
				"kind":  e.Kind.String(),
				"state": e.State.String(),
			}).Debug("widget event")
			s.enqueue(func(sess *Session) { sess.HandleEvent(e) })
		}
	}
}

func (s *serviceImpl) publish() {
	snap := s.session.Snapshot()

	s.mu.Lock()
	changed := snap != s.snapshot
	s.snapshot = snap
	s.mu.Unlock()

	if !changed {
		return
	}

	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.send(snap)
	}
}

// Close stops the loop, closes the widget and ends all subscriptions.
func (s *serviceImpl) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		s.startOnce.Do(func() { close(s.stopped) })
		<-s.stopped

		err = s.widget.Close()

		s.subsMu.Lock()
		for _, sub := range s.subs {
			sub.close()
		}
		s.subs = nil
		s.subsMu.Unlock()
	})
	return err
}
