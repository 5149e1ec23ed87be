package player

import (
	"context"
	"strconv"
	"sync"
)

// Call is a command recorded by Mock.
type Call struct {
	Op  string
	Arg string
}

// Mock is a test double for the media widget.
type Mock struct {
	mu       sync.Mutex
	calls    []Call
	current  string
	initErr  error
	closed   bool
	eventsCh chan Event
}

// NewMock creates a mock widget. Nothing fires until a Simulate* helper is called.
func NewMock() *Mock {
	return &Mock{eventsCh: make(chan Event, eventBufferSize)}
}

func (m *Mock) record(op, arg string) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Op: op, Arg: arg})
	m.mu.Unlock()
}

func (m *Mock) Init(_ context.Context, streamID string) error {
	m.record("init", streamID)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initErr
}

func (m *Mock) Load(streamID string) { m.record("load", streamID) }

func (m *Mock) Play() { m.record("play", "") }

func (m *Mock) Pause() { m.record("pause", "") }

func (m *Mock) Mute() { m.record("mute", "") }

func (m *Mock) Unmute() { m.record("unmute", "") }

func (m *Mock) SetVolume(level int) { m.record("volume", strconv.Itoa(level)) }

func (m *Mock) CurrentItemID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Mock) Events() <-chan Event { return m.eventsCh }

func (m *Mock) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

// Test helpers

func (m *Mock) SetCurrentItem(id string) {
	m.mu.Lock()
	m.current = id
	m.mu.Unlock()
}

func (m *Mock) SetInitError(err error) {
	m.mu.Lock()
	m.initErr = err
	m.mu.Unlock()
}

// Calls returns a copy of the recorded commands.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Ops returns the recorded command names in order.
func (m *Mock) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ops := make([]string, len(m.calls))
	for i, c := range m.calls {
		ops[i] = c.Op
	}
	return ops
}

// CountOp returns how many times op was issued.
func (m *Mock) CountOp(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (m *Mock) ResetCalls() {
	m.mu.Lock()
	m.calls = nil
	m.mu.Unlock()
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Mock) SimulateReady() { emit(m.eventsCh, Event{Kind: EventReady}) }

func (m *Mock) SimulateState(s State) {
	emit(m.eventsCh, Event{Kind: EventStateChange, State: s})
}

func (m *Mock) SimulateError(err error) {
	emit(m.eventsCh, Event{Kind: EventError, Err: err})
}
