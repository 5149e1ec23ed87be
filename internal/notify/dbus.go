//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/llehouerou/pcsradio/internal/logging"
)

const (
	notificationsName = "org.freedesktop.Notifications"
	notificationsPath = "/org/freedesktop/Notifications"

	stationCategory = "x-pcsradio.station"
)

// busCaller is the part of dbus.BusObject the notifier needs.
type busCaller interface {
	Call(method string, flags dbus.Flags, args ...any) *dbus.Call
}

type dbusNotifier struct {
	bus busCaller
}

// New returns a Notifier backed by the session bus, or a disabled one
// when no session bus is reachable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		logging.Debugf("notify: session bus unavailable: %v", err)
		return Disabled(), nil //nolint:nilerr // notifications are optional
	}
	return newDBusNotifier(conn.Object(notificationsName, notificationsPath)), nil
}

func newDBusNotifier(bus busCaller) *dbusNotifier {
	return &dbusNotifier{bus: bus}
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	icon := notif.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(DesktopEntry),
		"category":      dbus.MakeVariant(stationCategory),
	}

	call := n.bus.Call(notificationsName+".Notify", 0,
		AppName, notif.ReplacesID, icon, notif.Title, notif.Body,
		[]string{}, hints, notif.Timeout)

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("notify %q: %w", notif.Title, err)
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	if err := n.bus.Call(notificationsName+".CloseNotification", 0, id).Err; err != nil {
		return fmt.Errorf("close notification %d: %w", id, err)
	}
	return nil
}
