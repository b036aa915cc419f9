// ABOUTME: Desktop notification interface with a no-op fallback
// ABOUTME: Track changes and pause/resume announcements, best-effort only

// Package notify sends desktop notifications via D-Bus. Notifications
// are best-effort: when no notification service is reachable the stub
// silently swallows them.
package notify

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification. Failures are reported but callers
	// treat them as non-fatal.
	Notify(title, body string) error
}

// stubNotifier is used when D-Bus is unavailable or unsupported.
type stubNotifier struct{}

func (stubNotifier) Notify(_, _ string) error {
	return nil
}
