// internal/app/update.go
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pcsradio/internal/errmsg"
	"github.com/llehouerou/pcsradio/internal/logging"
	"github.com/llehouerou/pcsradio/internal/playback"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SnapshotMsg:
		return m.handleSnapshot(msg.Snapshot)

	case ServiceStartErrMsg:
		m.ErrorMsg = errmsg.Format(errmsg.OpPlayerStart, msg.Err)
		logging.Warnf("%s", m.ErrorMsg)
		return m, nil

	case ServiceClosedMsg:
		m.playbackSub = nil
		return m, tea.Quit
	}
	return m, nil
}

var errUnconfirmed = errors.New("stream did not start, audio kept muted")

func (m Model) handleSnapshot(snap playback.Snapshot) (tea.Model, tea.Cmd) {
	prev := m.Snapshot
	m.Snapshot = snap

	switch {
	case snap.Status != playback.StatusError:
		m.ErrorMsg = ""
	case snap.Label == playback.LabelUnconfirmed && prev.Label != playback.LabelUnconfirmed:
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpStreamConfirm, snap.Station.Name, errUnconfirmed)
	}
	m.notifyTransition(prev, snap)

	return m, m.WatchServiceEvents()
}
