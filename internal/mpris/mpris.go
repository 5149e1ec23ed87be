//go:build linux

// Package mpris exposes the radio to desktop media keys over MPRIS.
package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"

	"github.com/llehouerou/pcsradio/internal/logging"
)

// Adapter connects a playback controller to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(ctl Controller) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer(busName, &rootAdapter{}, &playerAdapter{ctl: ctl}),
	}

	go func() {
		if err := a.server.Listen(); err != nil {
			logging.Warnf("mpris: listen: %v", err)
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}
