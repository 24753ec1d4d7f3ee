// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package guipaint

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/guipaint/painter"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for guipaint and the painter package.
// By default, guipaint produces no log output.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by guipaint:
//   - [slog.LevelDebug]: per-frame statistics, meshes skipped for missing textures
//   - [slog.LevelInfo]: pipeline creation, URL open requests
//   - [slog.LevelWarn]: dropped texture updates, invalid meshes, clipboard errors
//
// Example:
//
//	guipaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	painter.SetLogger(l)
}

// Logger returns the current logger used by guipaint.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
