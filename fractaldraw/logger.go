package fractaldraw

import (
	"log/slog"
	"sync/atomic"
)

var (
	silent  = slog.New(slog.DiscardHandler)
	current atomic.Pointer[slog.Logger]
)

// SetLogger sets the logger shared by Render, the backends, the
// exporter and the server. Nil restores the default, which logs nothing.
//
// Render logs the depth and the number of triangles at debug level,
// an export logs its format and size at info level, and painting
// an empty path or a failing backend is logged as a warning.
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
