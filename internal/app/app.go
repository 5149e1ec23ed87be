// Package app is the radio's bubbletea program: it turns key presses into
// playback intents and renders playback snapshots.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pcsradio/internal/keymap"
	"github.com/llehouerou/pcsradio/internal/logging"
	"github.com/llehouerou/pcsradio/internal/notify"
	"github.com/llehouerou/pcsradio/internal/playback"
	"github.com/llehouerou/pcsradio/internal/ui/helpbindings"
)

// Options carries the optional collaborators of the model.
type Options struct {
	Notifier notify.Notifier // nil disables notifications
}

// Model is the root bubbletea model.
type Model struct {
	Playback playback.Service
	Snapshot playback.Snapshot

	Width    int
	Height   int
	ShowHelp bool
	ErrorMsg string
	Quitting bool

	playbackSub *playback.Subscription
	keys        *keymap.Resolver
	help        help.Model
	helpKeys    helpbindings.KeyMap

	notifier notify.Notifier
	notifyID uint32
}

// New creates the model and subscribes to svc. svc is started by Init.
func New(svc playback.Service, opts Options) Model {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Disabled()
	}
	keys := keymap.Default()
	for _, c := range keys.Conflicts() {
		logging.WithFields(map[string]any{
			"key":     keymap.DisplayKey(c.Key),
			"actions": c.Actions,
		}).Warn("key bound to several actions, last one wins")
	}
	return Model{
		Playback:    svc,
		Snapshot:    svc.Snapshot(),
		playbackSub: svc.Subscribe(),
		keys:        keys,
		help:        help.New(),
		helpKeys:    helpbindings.Default(),
		notifier:    notifier,
	}
}

// Init starts playback and begins watching snapshots.
func (m Model) Init() tea.Cmd {
	return tea.Batch(StartServiceCmd(m.Playback), m.WatchServiceEvents())
}
