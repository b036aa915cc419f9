//go:build !linux

package notify

// New returns a no-op Notifier on platforms without the freedesktop
// notification service.
func New() Notifier {
	return stubNotifier{}
}
