package marketcap

import "context"

// Notifier announces a finished report.
type Notifier interface {
	// Notify sends the report at path. It never returns an error;
	// the result reports whether the notification went out.
	Notify(ctx context.Context, path string, rowCount int) bool
}
