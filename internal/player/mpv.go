package player

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/llehouerou/pcsradio/internal/logging"
)

// Observed property ids.
const (
	obsPath int64 = iota + 1
	obsPause
	obsPausedForCache
)

const (
	dialInterval = 50 * time.Millisecond
	dialTimeout  = 10 * time.Second
	quitGrace    = 2 * time.Second
)

var (
	// ErrProcessExited is reported when mpv goes away while in use.
	ErrProcessExited = errors.New("mpv exited")
	// ErrNotReady is returned for commands sent before the IPC connection
	// is up.
	ErrNotReady = errors.New("mpv not ready")
)

// MPVOptions configures the mpv-backed widget.
type MPVOptions struct {
	Path       string // mpv binary, default "mpv"
	Socket     string // IPC socket path
	YtdlFormat string // yt-dlp format selector, default "bestaudio/best"
	ExtraArgs  []string
}

// MPV drives an mpv process over its JSON IPC socket.
// YouTube stream ids are resolved by mpv's yt-dlp hook.
type MPV struct {
	opts   MPVOptions
	cmd    *exec.Cmd
	events chan Event
	ready  atomic.Bool
	closed atomic.Bool

	connMu sync.Mutex
	ipc    *ipcConn

	mu      sync.Mutex
	current string

	// Owned by the reader goroutine.
	loaded       bool
	paused       bool
	cachePaused  bool
	lastReported State
	reported     bool

	closeOnce sync.Once
}

// NewMPV creates an mpv widget. The process starts in Init.
func NewMPV(opts MPVOptions) *MPV {
	if opts.Path == "" {
		opts.Path = "mpv"
	}
	if opts.YtdlFormat == "" {
		opts.YtdlFormat = "bestaudio/best"
	}
	return &MPV{
		opts:   opts,
		events: make(chan Event, eventBufferSize),
		paused: true,
	}
}

func (m *MPV) args() []string {
	args := []string{
		"--idle=yes",
		"--no-video",
		"--no-terminal",
		"--pause",
		"--input-ipc-server=" + m.opts.Socket,
		"--ytdl-format=" + m.opts.YtdlFormat,
	}
	return append(args, m.opts.ExtraArgs...)
}

// Init starts mpv and cues streamID. Readiness is reported asynchronously.
func (m *MPV) Init(ctx context.Context, streamID string) error {
	if m.opts.Socket == "" {
		return errors.New("mpv: socket path not configured")
	}
	_ = os.Remove(m.opts.Socket)

	cmd := exec.Command(m.opts.Path, m.args()...) //nolint:gosec // binary comes from user config
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}
	m.cmd = cmd
	logging.WithField("pid", cmd.Process.Pid).Debug("mpv started")

	go m.connect(ctx, streamID)
	return nil
}

func (m *MPV) connect(ctx context.Context, streamID string) {
	conn, err := dialSocket(ctx, m.opts.Socket)
	if err != nil {
		emit(m.events, Event{Kind: EventError, Err: err})
		return
	}
	ipc, ok := m.attach(conn)
	if !ok {
		return
	}

	go m.readLoop(ipc)

	for _, obs := range []struct {
		id   int64
		name string
	}{
		{obsPath, "path"},
		{obsPause, "pause"},
		{obsPausedForCache, "paused-for-cache"},
	} {
		if _, err := ipc.send("observe_property", obs.id, obs.name); err != nil {
			emit(m.events, Event{Kind: EventError, Err: err})
			return
		}
	}
	if _, err := ipc.send("loadfile", WatchURL(streamID), "replace"); err != nil {
		emit(m.events, Event{Kind: EventError, Err: err})
		return
	}

	m.ready.Store(true)
	emit(m.events, Event{Kind: EventReady})
}

// attach installs conn as the IPC connection. It closes conn and reports
// false once Close has run.
func (m *MPV) attach(conn net.Conn) (*ipcConn, bool) {
	m.connMu.Lock()
	defer m.connMu.Unlock()
	if m.closed.Load() {
		_ = conn.Close()
		return nil, false
	}
	m.ipc = newIPCConn(conn)
	return m.ipc, true
}

// detach marks the widget closed and hands back the connection, if any.
func (m *MPV) detach() *ipcConn {
	m.connMu.Lock()
	defer m.connMu.Unlock()
	m.closed.Store(true)
	ipc := m.ipc
	m.ipc = nil
	return ipc
}

func (m *MPV) conn() *ipcConn {
	m.connMu.Lock()
	defer m.connMu.Unlock()
	return m.ipc
}

func dialSocket(ctx context.Context, path string) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	var d net.Dialer
	for {
		conn, err := d.DialContext(ctx, "unix", path)
		if err == nil {
			return conn, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to mpv: %w", err)
		case <-time.After(dialInterval):
		}
	}
}

func (m *MPV) readLoop(ipc *ipcConn) {
	err := readMessages(ipc.conn, m.handle)
	if m.closed.Load() {
		return
	}
	m.ready.Store(false)
	if err == nil {
		err = ErrProcessExited
	}
	emit(m.events, Event{Kind: EventError, Err: err})
}

// handle maps one IPC message onto widget notifications.
func (m *MPV) handle(msg ipcMessage) {
	if msg.isReply() {
		if msg.Error != "success" {
			logging.WithFields(map[string]any{
				"request": msg.RequestID,
				"error":   msg.Error,
			}).Debug("mpv command failed")
		}
		return
	}

	switch msg.Event {
	case "property-change":
		m.handleProperty(msg)
	case "start-file":
		m.loaded = false
		m.report(Buffering)
	case "file-loaded":
		m.loaded = true
	case "playback-restart":
		if !m.paused && !m.cachePaused {
			m.report(Playing)
		}
	case "end-file":
		switch msg.Reason {
		case "eof":
			m.loaded = false
			m.report(Ended)
		case "error":
			m.loaded = false
			m.reported = false
			emit(m.events, Event{Kind: EventError, Err: fmt.Errorf("mpv: %s", msg.FileError)})
		}
	}
}

func (m *MPV) handleProperty(msg ipcMessage) {
	switch msg.ID {
	case obsPath:
		m.mu.Lock()
		m.current = VideoID(msg.stringData())
		m.mu.Unlock()
	case obsPause:
		v, ok := msg.boolData()
		if !ok {
			return
		}
		m.paused = v
		if !m.loaded {
			return
		}
		if v {
			m.report(Paused)
		} else if !m.cachePaused {
			m.report(Playing)
		}
	case obsPausedForCache:
		v, ok := msg.boolData()
		if !ok {
			return
		}
		m.cachePaused = v
		switch {
		case v:
			m.report(Buffering)
		case m.loaded && !m.paused:
			m.report(Playing)
		}
	}
}

// report emits a state change unless it repeats the last one.
func (m *MPV) report(s State) {
	if m.reported && m.lastReported == s {
		return
	}
	m.reported = true
	m.lastReported = s
	emit(m.events, Event{Kind: EventStateChange, State: s})
}

// command sends a fire-and-forget command. Failures are logged only.
func (m *MPV) command(args ...any) {
	err := m.send(args...)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotReady):
		logging.WithField("command", args[0]).Debug("command dropped")
	default:
		logging.WithField("command", args[0]).Warnf("%v", err)
	}
}

func (m *MPV) send(args ...any) error {
	ipc := m.conn()
	if ipc == nil || !m.ready.Load() {
		return ErrNotReady
	}
	_, err := ipc.send(args...)
	return err
}

func (m *MPV) Load(streamID string) {
	m.command("loadfile", WatchURL(streamID), "replace")
	// loadfile keeps the pause flag; a station switch must start playing.
	m.command("set_property", "pause", false)
}

func (m *MPV) Play() { m.command("set_property", "pause", false) }

func (m *MPV) Pause() { m.command("set_property", "pause", true) }

func (m *MPV) Mute() { m.command("set_property", "mute", true) }

func (m *MPV) Unmute() { m.command("set_property", "mute", false) }

func (m *MPV) SetVolume(level int) {
	m.command("set_property", "volume", max(0, min(100, level)))
}

func (m *MPV) CurrentItemID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *MPV) Events() <-chan Event { return m.events }

// Close asks mpv to quit and kills it if it lingers.
func (m *MPV) Close() error {
	var err error
	m.closeOnce.Do(func() {
		if ipc := m.detach(); ipc != nil {
			if m.ready.Swap(false) {
				_, _ = ipc.send("quit")
			}
			_ = ipc.close()
		}
		if m.cmd != nil && m.cmd.Process != nil {
			err = waitOrKill(m.cmd, quitGrace)
		}
		_ = os.Remove(m.opts.Socket)
	})
	return err
}

func waitOrKill(cmd *exec.Cmd, grace time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case <-done:
		return nil
	case <-time.After(grace):
		if err := cmd.Process.Kill(); err != nil {
			return fmt.Errorf("kill mpv: %w", err)
		}
		<-done
		return nil
	}
}
