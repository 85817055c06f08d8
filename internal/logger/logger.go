// Package logger provides the module-wide zerolog logger, disabled by
// default below Warn level so library consumers see nothing unless they
// opt in to debug output.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger().Level(zerolog.WarnLevel)

// Logger returns the module logger.
func Logger() zerolog.Logger {
	return logger
}

// SetOutput redirects log output to w at Debug level, for callers who want
// phase timings.
func SetOutput(w io.Writer) {
	logger = logger.Output(w).Level(zerolog.DebugLevel)
}

// Disable turns logging off entirely.
func Disable() {
	logger = logger.Level(zerolog.Disabled)
}
