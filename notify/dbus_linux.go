//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"

	notifyTimeoutMS = 3000
)

// dbusNotifier sends notifications via the freedesktop D-Bus service.
type dbusNotifier struct {
	obj dbus.BusObject
}

// New creates a Notifier backed by the session bus.
// Returns a no-op notifier if D-Bus is unavailable.
func New() Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		return stubNotifier{}
	}

	return &dbusNotifier{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(title, body string) error {
	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		"mediactl",
		uint32(0),
		"",
		title,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(notifyTimeoutMS),
	)

	return call.Err
}
