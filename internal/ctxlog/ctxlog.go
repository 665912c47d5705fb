// Package ctxlog carries a slog.Logger through context.Context so the
// pipeline collaborators can log without threading a logger parameter
// through every call.
package ctxlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for logger construction.
var (
	// ErrBadLevel indicates an unrecognized log level name.
	ErrBadLevel = errors.New("ctxlog: unknown log level")
	// ErrBadFormat indicates an unrecognized log format name.
	ErrBadFormat = errors.New("ctxlog: unknown log format")
)

// key is an unexported type to prevent collisions with context keys from
// other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns the default global logger, so library code can always
// log safely.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}

// New builds an isolated slog.Logger writing to w. Level is one of debug,
// info, warn, error; format is text or json. Unknown names are rejected so a
// mistyped CLI flag never silently downgrades to defaults.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadLevel, level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}

	return slog.New(handler), nil
}
