package palette

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so disabled log
// calls never format their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// pkgLogger is read by every Build and BuildPaintData call.
var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(silent)
}

// SetLogger installs the package logger used by builds that were not
// given WithLogger. The package is silent until SetLogger is called; nil
// makes it silent again. SetLogger is safe for concurrent use.
//
// Records:
//   - [slog.LevelDebug] "palette: built" and "palette: paint data filled"
//     with paint counts, rows used and sampling mode
//   - [slog.LevelWarn] "palette: texture capacity exceeded" with the
//     paint that did not fit
//
// Example:
//
//	palette.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	pkgLogger.Store(l)
}

// Logger returns the package logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}

// loggerOr returns override if set, otherwise the package logger.
func loggerOr(override *slog.Logger) *slog.Logger {
	if override != nil {
		return override
	}
	return Logger()
}
