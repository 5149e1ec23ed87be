package player

import (
	"bufio"
	"encoding/json"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, line string) ipcMessage {
	t.Helper()
	var msg ipcMessage
	require.NoError(t, json.Unmarshal([]byte(line), &msg))
	return msg
}

func drain(m *MPV) []Event {
	var out []Event
	for {
		select {
		case e := <-m.events:
			out = append(out, e)
		default:
			return out
		}
	}
}

func TestMPV_Args(t *testing.T) {
	m := NewMPV(MPVOptions{Socket: "/tmp/radio.sock", ExtraArgs: []string{"--volume=0"}})

	args := m.args()

	assert.Contains(t, args, "--input-ipc-server=/tmp/radio.sock")
	assert.Contains(t, args, "--ytdl-format=bestaudio/best")
	assert.Contains(t, args, "--pause")
	assert.Equal(t, "--volume=0", args[len(args)-1])
	assert.Equal(t, "mpv", m.opts.Path)
}

func TestMPV_PathPropertySetsCurrentItem(t *testing.T) {
	m := NewMPV(MPVOptions{})

	m.handle(decode(t, `{"event":"property-change","id":1,"name":"path","data":"https://www.youtube.com/watch?v=jfKfPfyJRdk"}`))
	assert.Equal(t, "jfKfPfyJRdk", m.CurrentItemID())

	m.handle(decode(t, `{"event":"property-change","id":1,"name":"path","data":null}`))
	assert.Equal(t, "", m.CurrentItemID())
}

func TestMPV_CueDoesNotReportState(t *testing.T) {
	m := NewMPV(MPVOptions{})

	m.handle(decode(t, `{"event":"property-change","id":2,"name":"pause","data":true}`))
	m.handle(decode(t, `{"event":"property-change","id":3,"name":"paused-for-cache","data":false}`))

	assert.Empty(t, drain(m))
}

func TestMPV_LoadThenPlaySequence(t *testing.T) {
	m := NewMPV(MPVOptions{})
	m.handle(decode(t, `{"event":"property-change","id":2,"name":"pause","data":true}`))

	m.handle(decode(t, `{"event":"start-file","playlist_entry_id":1}`))
	m.handle(decode(t, `{"event":"file-loaded"}`))
	m.handle(decode(t, `{"event":"property-change","id":2,"name":"pause","data":false}`))
	m.handle(decode(t, `{"event":"playback-restart"}`))

	events := drain(m)
	require.Len(t, events, 2)
	assert.Equal(t, Buffering, events[0].State)
	assert.Equal(t, Playing, events[1].State)
}

func TestMPV_CacheStallReportsBuffering(t *testing.T) {
	m := NewMPV(MPVOptions{})
	m.handle(decode(t, `{"event":"file-loaded"}`))
	m.handle(decode(t, `{"event":"property-change","id":2,"name":"pause","data":false}`))

	m.handle(decode(t, `{"event":"property-change","id":3,"name":"paused-for-cache","data":true}`))
	m.handle(decode(t, `{"event":"property-change","id":3,"name":"paused-for-cache","data":false}`))

	events := drain(m)
	require.Len(t, events, 3)
	assert.Equal(t, []State{Playing, Buffering, Playing},
		[]State{events[0].State, events[1].State, events[2].State})
}

func TestMPV_EndFile(t *testing.T) {
	m := NewMPV(MPVOptions{})

	m.handle(decode(t, `{"event":"end-file","reason":"stop"}`))
	assert.Empty(t, drain(m))

	m.handle(decode(t, `{"event":"end-file","reason":"eof"}`))
	events := drain(m)
	require.Len(t, events, 1)
	assert.Equal(t, Ended, events[0].State)

	m.handle(decode(t, `{"event":"end-file","reason":"error","file_error":"loading failed"}`))
	events = drain(m)
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Kind)
	assert.EqualError(t, events[0].Err, "mpv: loading failed")
}

func TestMPV_RepliesAreNotEvents(t *testing.T) {
	m := NewMPV(MPVOptions{})

	m.handle(decode(t, `{"error":"success","data":null,"request_id":3}`))
	m.handle(decode(t, `{"error":"property unavailable","request_id":4}`))

	assert.Empty(t, drain(m))
}

func TestMPV_CommandsDroppedBeforeReady(t *testing.T) {
	m := NewMPV(MPVOptions{})

	// ipc is nil: any attempt to send would panic.
	m.Play()
	m.Mute()
	m.SetVolume(30)
	m.Load("abc")

	assert.ErrorIs(t, m.send("set_property", "pause", false), ErrNotReady)
}

func TestMPV_CloseBeforeConnect(t *testing.T) {
	m := NewMPV(MPVOptions{})
	require.NoError(t, m.Close())

	client, server := net.Pipe()
	defer server.Close()

	_, ok := m.attach(client)

	assert.False(t, ok)
	_, err := server.Write([]byte("{}\n"))
	assert.ErrorIs(t, err, io.ErrClosedPipe, "late connection must be closed")
	assert.ErrorIs(t, m.send("set_property", "pause", false), ErrNotReady)
}

func TestMPV_CloseRacingConnect(t *testing.T) {
	for range 50 {
		m := NewMPV(MPVOptions{})
		client, server := net.Pipe()

		attached := make(chan struct{})
		go func() {
			defer close(attached)
			m.attach(client)
		}()
		require.NoError(t, m.Close())
		<-attached

		// Whichever side ran first, the connection ends up closed.
		_, err := server.Write([]byte("{}\n"))
		assert.ErrorIs(t, err, io.ErrClosedPipe)
		server.Close()
	}
}

func TestIPCConn_Send(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	c := newIPCConn(client)
	lines := make(chan string, 2)
	go func() {
		sc := bufio.NewScanner(server)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	id1, err := c.send("set_property", "volume", 50)
	require.NoError(t, err)
	id2, err := c.send("loadfile", "https://www.youtube.com/watch?v=abc", "replace")
	require.NoError(t, err)
	assert.Equal(t, id1+1, id2)

	select {
	case line := <-lines:
		var req ipcRequest
		require.NoError(t, json.Unmarshal([]byte(line), &req))
		assert.Equal(t, []any{"set_property", "volume", float64(50)}, req.Command)
		assert.Equal(t, id1, req.RequestID)
	case <-time.After(time.Second):
		t.Fatal("no command written")
	}
}

func TestReadMessages_SkipsGarbage(t *testing.T) {
	input := strings.Join([]string{
		`{"event":"file-loaded"}`,
		`not json`,
		``,
		`{"event":"end-file","reason":"eof"}`,
	}, "\n")

	var got []string
	err := readMessages(strings.NewReader(input), func(m ipcMessage) {
		got = append(got, m.Event)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"file-loaded", "end-file"}, got)
}
