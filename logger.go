// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wallbreak

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for wallbreak and its update pipeline.
// By default, wallbreak produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior. Updates scheduled after the call use the new logger.
//
// Log levels used by wallbreak:
//   - [slog.LevelDebug]: per-update diagnostics (buffer sizes, piece counts, timings)
//   - [slog.LevelInfo]: wall lifecycle (created, closed)
//   - [slog.LevelWarn]: degenerate outcomes (discarded impacts, stalled triangulation)
//   - [slog.LevelError]: an update that failed and was discarded
//
// Example:
//
//	wallbreak.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by wallbreak.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
