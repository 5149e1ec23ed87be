package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
)

// ipcRequest is one command line of mpv's JSON IPC protocol.
type ipcRequest struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// ipcMessage is either a command reply or an asynchronous event.
type ipcMessage struct {
	Event     string          `json:"event,omitempty"`
	ID        int64           `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	FileError string          `json:"file_error,omitempty"`
	Error     string          `json:"error,omitempty"`
	RequestID int64           `json:"request_id,omitempty"`
}

func (m ipcMessage) isReply() bool {
	return m.Event == "" && m.Error != ""
}

func (m ipcMessage) boolData() (bool, bool) {
	var v bool
	if err := json.Unmarshal(m.Data, &v); err != nil {
		return false, false
	}
	return v, true
}

func (m ipcMessage) stringData() string {
	var v string
	if err := json.Unmarshal(m.Data, &v); err != nil {
		return ""
	}
	return v
}

// ipcConn writes commands to an mpv IPC socket.
type ipcConn struct {
	conn   net.Conn
	mu     sync.Mutex
	enc    *json.Encoder
	nextID atomic.Int64
}

func newIPCConn(conn net.Conn) *ipcConn {
	return &ipcConn{conn: conn, enc: json.NewEncoder(conn)}
}

// send writes a command and returns its request id.
// The reply arrives asynchronously through readMessages.
func (c *ipcConn) send(args ...any) (int64, error) {
	id := c.nextID.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.enc.Encode(ipcRequest{Command: args, RequestID: id}); err != nil {
		return 0, fmt.Errorf("mpv ipc %v: %w", args[0], err)
	}
	return id, nil
}

func (c *ipcConn) close() error {
	return c.conn.Close()
}

// readMessages decodes newline-delimited messages until r is exhausted.
// Lines that are not valid JSON are skipped.
func readMessages(r io.Reader, fn func(ipcMessage)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var msg ipcMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			continue
		}
		fn(msg)
	}
	return sc.Err()
}
