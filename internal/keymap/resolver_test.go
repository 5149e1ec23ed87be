package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_RadioKeys(t *testing.T) {
	r := Default()

	tests := []struct {
		key  string
		want Action
	}{
		{" ", ActionPlayPause},
		{"up", ActionVolumeUp},
		{"+", ActionVolumeUp},
		{"down", ActionVolumeDown},
		{"-", ActionVolumeDown},
		{"1", ActionStation1},
		{"2", ActionStation2},
		{"3", ActionStation3},
		{"4", ActionStation4},
		{"right", ActionNextStation},
		{"l", ActionNextStation},
		{"left", ActionPrevStation},
		{"h", ActionPrevStation},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"?", ActionHelp},
		{"5", ""},
		{"space", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(DisplayKey(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.key))
		})
	}
}

func TestResolver_KeysForKeepsBindingOrder(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{"up", "+"}, r.KeysFor(ActionVolumeUp))
	assert.Equal(t, []string{"left", "h"}, r.KeysFor(ActionPrevStation))
	assert.Equal(t, []string{" "}, r.KeysFor(ActionPlayPause))
	assert.Nil(t, r.KeysFor(Action("station_9")))
}

func TestResolver_SameActionInTwoContexts(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionNextStation, []string{"right", "l"}, "Next station", "stations"},
		{ActionNextStation, []string{"l", "n"}, "Next station", "playback"},
	})

	assert.Equal(t, []string{"right", "l", "n"}, r.KeysFor(ActionNextStation))
	assert.Empty(t, r.Conflicts())
}

func TestResolver_DuplicateKeyAcrossContexts(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionStation1, []string{"1"}, "Station 1", "stations"},
		{ActionNextStation, []string{" ", "right"}, "Next station", "stations"},
		{ActionHelp, []string{"1"}, "Toggle help", "global"},
	})

	assert.Equal(t, ActionNextStation, r.Resolve(" "), "last binding wins")
	assert.Equal(t, ActionHelp, r.Resolve("1"))
	assert.Equal(t, []Conflict{
		{Key: " ", Actions: []Action{ActionPlayPause, ActionNextStation}},
		{Key: "1", Actions: []Action{ActionStation1, ActionHelp}},
	}, r.Conflicts())
	assert.Equal(t, []string{" "}, r.KeysFor(ActionPlayPause))
}

func TestDefault_HasNoConflicts(t *testing.T) {
	assert.Empty(t, Default().Conflicts())
}
