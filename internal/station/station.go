// Package station holds the fixed registry of radio stations.
package station

import (
	"errors"
	"fmt"
)

// ErrUnknownStation is returned for keys not in the registry.
var ErrUnknownStation = errors.New("unknown station")

// Station is a named livestream that can be tuned in.
type Station struct {
	Key      string // registry key, e.g. "lofi"
	Name     string // display name
	StreamID string // YouTube video id of the livestream
}

// registry is ordered: position i+1 is selected by digit key i+1.
var registry = []Station{
	{Key: "lofi", Name: "Lofi", StreamID: "jfKfPfyJRdk"},
	{Key: "deephouse", Name: "Deep House", StreamID: "D4MdHQOILdw"},
	{Key: "synthwave", Name: "Synthwave", StreamID: "4xDzrJKXOOY"},
	{Key: "ambient", Name: "Ambient", StreamID: "Y4u7D7xCvtw"},
}

// DefaultKey is the station tuned in at startup when none is configured.
const DefaultKey = "lofi"

// All returns a copy of every station in registry order.
func All() []Station {
	out := make([]Station, len(registry))
	copy(out, registry)
	return out
}

// Len returns the number of stations.
func Len() int {
	return len(registry)
}

// Keys returns the station keys in registry order.
func Keys() []string {
	keys := make([]string, len(registry))
	for i, s := range registry {
		keys[i] = s.Key
	}
	return keys
}

// Lookup returns the station for key.
func Lookup(key string) (Station, bool) {
	for _, s := range registry {
		if s.Key == key {
			return s, true
		}
	}
	return Station{}, false
}

// Find is Lookup with an error naming the key and the valid keys.
func Find(key string) (Station, error) {
	if s, ok := Lookup(key); ok {
		return s, nil
	}
	return Station{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownStation, key, Keys())
}

// At returns the station at a 1-based registry position.
func At(position int) (Station, bool) {
	if position < 1 || position > len(registry) {
		return Station{}, false
	}
	return registry[position-1], true
}

// Position returns the 1-based registry position of key, or 0 if unknown.
func Position(key string) int {
	for i, s := range registry {
		if s.Key == key {
			return i + 1
		}
	}
	return 0
}

// Default returns the default station.
func Default() Station {
	s, _ := Lookup(DefaultKey)
	return s
}

// Next returns the station after key, wrapping around.
// Unknown keys yield the first station.
func Next(key string) Station {
	pos := Position(key)
	if pos == 0 {
		return registry[0]
	}
	return registry[pos%len(registry)]
}

// Previous returns the station before key, wrapping around.
// Unknown keys yield the last station.
func Previous(key string) Station {
	pos := Position(key)
	if pos == 0 {
		return registry[len(registry)-1]
	}
	return registry[(pos-2+len(registry))%len(registry)]
}
