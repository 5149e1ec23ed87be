// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pcsradio/internal/app/handler"
	"github.com/llehouerou/pcsradio/internal/keymap"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())
	_, cmd := handler.Chain(action,
		m.handleGlobalKeys,
		m.handlePlaybackKeys,
		m.handleStationKeys,
	)
	if action == keymap.ActionHelp {
		m.ShowHelp = !m.ShowHelp
		m.help.ShowAll = m.ShowHelp
	}
	if action == keymap.ActionQuit {
		m.Quitting = true
	}
	return m, cmd
}

func (m Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		return handler.HandledNoCmd
	default:
		return handler.NotHandled
	}
}

func (m Model) handlePlaybackKeys(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionPlayPause:
		m.Playback.TogglePlayPause()
	case keymap.ActionVolumeUp:
		m.Playback.ChangeVolume(keymap.VolumeStep)
	case keymap.ActionVolumeDown:
		m.Playback.ChangeVolume(-keymap.VolumeStep)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m Model) handleStationKeys(a keymap.Action) handler.Result {
	if pos, ok := keymap.StationPosition(a); ok {
		m.Playback.SwitchStationAt(pos)
		return handler.HandledNoCmd
	}

	switch a {
	case keymap.ActionNextStation:
		m.Playback.StepStation(1)
	case keymap.ActionPrevStation:
		m.Playback.StepStation(-1)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}
