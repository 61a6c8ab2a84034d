// Package logging configures the process-wide logger.
//
// All log output goes to stderr so that JSON-mode stdout stays
// machine-parseable.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// LevelTrace sits below slog's built-in debug level. It maps the CLI's
// most verbose setting, which has no slog equivalent.
const LevelTrace = slog.Level(-8)

// ParseLevel maps a CLI verbosity name onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return 0, fmt.Errorf("invalid log level %q (expected error, warn, info, debug, or trace)", s)
	}
}

// Setup installs a text handler writing to w at the given level as the
// default logger. The process is short-lived, so there is no teardown.
func Setup(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
