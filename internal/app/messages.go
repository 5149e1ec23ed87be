package app

import "github.com/llehouerou/pcsradio/internal/playback"

// SnapshotMsg carries a new playback snapshot.
type SnapshotMsg struct {
	Snapshot playback.Snapshot
}

// ServiceClosedMsg is sent when the playback service shuts down.
type ServiceClosedMsg struct{}

// ServiceStartErrMsg reports a failure to start the player.
type ServiceStartErrMsg struct {
	Err error
}
