// internal/app/commands.go
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pcsradio/internal/playback"
)

// StartServiceCmd starts the playback service. A start failure is reported
// as ServiceStartErrMsg; the service itself shows the station offline.
func StartServiceCmd(svc playback.Service) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Start(context.Background()); err != nil {
			return ServiceStartErrMsg{Err: err}
		}
		return nil
	}
}

// WatchServiceEvents returns a command that waits for the next playback
// snapshot. It must be re-issued after each SnapshotMsg.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.playbackSub == nil {
		return nil
	}
	sub := m.playbackSub
	return func() tea.Msg {
		select {
		case snap := <-sub.Changed:
			return SnapshotMsg{Snapshot: snap}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}
