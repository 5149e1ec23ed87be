package playback

import "github.com/llehouerou/pcsradio/internal/station"

// Snapshot is the observable state of a session, as rendered by the UI.
type Snapshot struct {
	Station     station.Station
	Volume      int
	Playing     bool
	Ready       bool
	PendingPlay bool
	Muted       bool // held muted until the requested stream is confirmed
	Confirming  bool // confirmation poll active
	Status      Status
	Label       string
}

// Indicator returns the status dot for the snapshot.
func (s Snapshot) Indicator() Indicator {
	return s.Status.Indicator()
}
