package player

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock()

	require.NoError(t, m.Init(context.Background(), "abc"))
	m.Mute()
	m.Load("def")
	m.SetVolume(40)
	m.Unmute()

	assert.Equal(t, []string{"init", "mute", "load", "volume", "unmute"}, m.Ops())
	assert.Equal(t, Call{Op: "volume", Arg: "40"}, m.Calls()[3])
	assert.Equal(t, 1, m.CountOp("load"))

	m.ResetCalls()
	assert.Empty(t, m.Calls())
}

func TestMock_InitError(t *testing.T) {
	m := NewMock()
	m.SetInitError(errors.New("boom"))

	assert.Error(t, m.Init(context.Background(), "abc"))
}

func TestMock_SimulatedEvents(t *testing.T) {
	m := NewMock()

	m.SimulateReady()
	m.SimulateState(Buffering)
	m.SimulateError(errors.New("offline"))

	assert.Equal(t, Event{Kind: EventReady}, <-m.Events())
	assert.Equal(t, Event{Kind: EventStateChange, State: Buffering}, <-m.Events())
	e := <-m.Events()
	assert.Equal(t, EventError, e.Kind)
	assert.EqualError(t, e.Err, "offline")
}

func TestEmit_DropsOldestWhenFull(t *testing.T) {
	ch := make(chan Event, 2)

	emit(ch, Event{Kind: EventStateChange, State: Playing})
	emit(ch, Event{Kind: EventStateChange, State: Paused})
	emit(ch, Event{Kind: EventStateChange, State: Ended})

	assert.Equal(t, Paused, (<-ch).State)
	assert.Equal(t, Ended, (<-ch).State)
}
