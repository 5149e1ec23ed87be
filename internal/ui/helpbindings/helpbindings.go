// Package helpbindings exposes the radio's key bindings to bubbles/help.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/pcsradio/internal/keymap"
)

// categoryOrder defines the display order of binding columns.
var categoryOrder = []string{"playback", "stations", "global"}

// Compile-time check that KeyMap implements help.KeyMap.
var _ help.KeyMap = KeyMap{}

// KeyMap adapts keymap bindings to bubbles/help.
type KeyMap struct {
	columns [][]key.Binding
	short   []key.Binding
}

// New builds the help key map from bindings.
func New(bindings []keymap.Binding) KeyMap {
	var km KeyMap
	for _, ctx := range categoryOrder {
		var col []key.Binding
		for _, b := range bindings {
			if b.Context != ctx {
				continue
			}
			kb := toKey(b)
			col = append(col, kb)
			if isShort(b.Action) {
				km.short = append(km.short, kb)
			}
		}
		if len(col) > 0 {
			km.columns = append(km.columns, col)
		}
	}
	return km
}

// Default builds the key map from keymap.Bindings.
func Default() KeyMap {
	return New(keymap.Bindings)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.short
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return k.columns
}

func isShort(a keymap.Action) bool {
	switch a {
	case keymap.ActionPlayPause, keymap.ActionNextStation, keymap.ActionHelp, keymap.ActionQuit:
		return true
	default:
		return false
	}
}

func toKey(b keymap.Binding) key.Binding {
	display := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		display[i] = keymap.DisplayKey(k)
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(strings.Join(display, "/"), strings.ToLower(b.Description)),
	)
}
