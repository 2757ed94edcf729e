// Package logger is a thin wrapper around zerolog.Logger used throughout the
// application. Constructors attach a role field so logs from different
// components can be filtered; Nop returns a silent logger for tests.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger builds a JSON logger writing to stdout with a role label
// (e.g. "api", "dispatcher").
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
