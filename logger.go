// Package pixeloid hosts the shared configuration surface of the
// pixeloid render engine. The engine itself lives in the pkg/
// subpackages; this package only carries the library logger so that
// every subpackage can share one configuration without import cycles.
package pixeloid

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records. Enabled returns false so callers
// skip message formatting entirely, making disabled logging free.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for the engine and all its
// subpackages. By default the engine produces no log output. Pass nil
// to restore the silent default.
//
// Levels used by the engine:
//   - [slog.LevelDebug]: cache decisions (visibility recompute, texture re-extraction)
//   - [slog.LevelInfo]: lifecycle events (object created, object deleted)
//   - [slog.LevelWarn]: soft-limit breaches and objects skipped for a frame
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger. Subpackages call this to
// share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
