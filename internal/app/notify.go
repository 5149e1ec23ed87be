package app

import (
	"github.com/llehouerou/pcsradio/internal/errmsg"
	"github.com/llehouerou/pcsradio/internal/logging"
	"github.com/llehouerou/pcsradio/internal/notify"
	"github.com/llehouerou/pcsradio/internal/playback"
)

const notificationTimeout = 5000

// notifyTransition sends "now playing" when a station goes live and an
// alert when playback enters the error state. Notifications replace each
// other so the desktop shows at most one.
func (m *Model) notifyTransition(prev, snap playback.Snapshot) {
	var n notify.Notification
	switch {
	case snap.Status == playback.StatusPlaying &&
		(prev.Status != playback.StatusPlaying || prev.Station.Key != snap.Station.Key):
		n = notify.Notification{
			Title:   snap.Station.Name,
			Body:    "Now playing on PCS Radio",
			Urgency: notify.UrgencyLow,
		}
	case snap.Status == playback.StatusError && prev.Status != playback.StatusError:
		n = notify.Notification{
			Title:   snap.Label,
			Body:    snap.Station.Name,
			Urgency: notify.UrgencyNormal,
		}
	default:
		return
	}

	n.Timeout = notificationTimeout
	n.ReplacesID = m.notifyID
	id, err := m.notifier.Notify(n)
	if err != nil {
		logging.Debugf("%s", errmsg.Format(errmsg.OpNotify, err))
		return
	}
	m.notifyID = id
}
