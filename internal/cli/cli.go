// Package cli holds the pieces the command-line tools share: logger
// construction and exit-code mapping.
package cli

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks an error caused by bad command-line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Usage wraps err as a UsageError. It returns nil for a nil err.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

// NewLogger builds a console logger writing to stderr. Verbose enables
// debug output with caller information.
func NewLogger(verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		encoder.CallerKey = ""
		encoder.StacktraceKey = ""
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       verbose,
		Encoding:          "console",
		EncoderConfig:     encoder,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !verbose,
		DisableStacktrace: !verbose,
	}
	return cfg.Build()
}

// MustLogger is NewLogger falling back to a no-op logger.
func MustLogger(verbose bool) *zap.Logger {
	l, err := NewLogger(verbose)
	if err != nil {
		return zap.NewNop()
	}
	return l
}
