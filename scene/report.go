package scene

import (
	"log/slog"

	"github.com/ncruces/zenity"
)

// Reporter surfaces subsystem failures to the user.
type Reporter interface {
	Report(err error)
}

// LogReporter reports through slog.
type LogReporter struct{}

// Report logs err at error level.
func (LogReporter) Report(err error) {
	slog.Error("subsystem disabled", "error", err)
}

// NotifyReporter shows a desktop notification.
type NotifyReporter struct {
	Title string
}

// Report sends err as a notification. Failing to notify is logged, not returned.
func (n NotifyReporter) Report(err error) {
	title := n.Title
	if title == "" {
		title = "Portfolio"
	}
	if nerr := zenity.Notify(err.Error(), zenity.Title(title), zenity.WarningIcon); nerr != nil {
		slog.Warn("desktop notification failed", "error", nerr)
	}
}

// MultiReporter fans a report out to several reporters.
type MultiReporter []Reporter

// Report forwards err to every reporter.
func (m MultiReporter) Report(err error) {
	for _, r := range m {
		r.Report(err)
	}
}
