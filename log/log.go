// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Logger writes leveled, structured records. The variadic context is
// alternating key/value pairs.
type Logger interface {
	With(ctx ...interface{}) Logger

	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})

	Enabled(level slog.Level) bool
}

type logger struct {
	inner *slog.Logger
}

func (l *logger) With(ctx ...interface{}) Logger {
	return &logger{l.inner.With(ctx...)}
}

func (l *logger) write(level slog.Level, msg string, ctx []interface{}) {
	l.inner.Log(context.Background(), level, msg, ctx...)
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(LevelTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(LevelDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(LevelInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(LevelWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(LevelError, msg, ctx) }

func (l *logger) Enabled(level slog.Level) bool {
	return l.inner.Enabled(context.Background(), level)
}

var (
	rootLevel slog.LevelVar
	root      Logger
)

func init() {
	rootLevel.Set(LevelInfo)
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = NewTerminalHandler(os.Stderr, &rootLevel, true)
	} else {
		handler = JSONHandler(os.Stderr, &rootLevel)
	}
	root = &logger{slog.New(handler)}
}

// Root returns the process-wide logger.
func Root() Logger { return root }

// New returns a logger carrying the given context pairs.
func New(ctx ...interface{}) Logger { return root.With(ctx...) }

// WithContext returns a logger tagged with one key/value pair. The usual
// callsite is a package-level `var logger = log.WithContext("pkg", ...)`.
func WithContext(key, value string) Logger {
	return root.With(key, value)
}

// SetLevel adjusts the minimum level of the root logger and every logger
// derived from it.
func SetLevel(level slog.Level) {
	rootLevel.Set(level)
}

// Level returns the minimum level of the root logger.
func Level() slog.Level {
	return rootLevel.Level()
}

// SetHandler replaces the root handler. Loggers created before the call
// keep the old one.
func SetHandler(handler slog.Handler) {
	root = &logger{slog.New(handler)}
}

func Trace(msg string, ctx ...interface{}) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }
