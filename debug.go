package grasp

import (
	"os"

	"github.com/rs/zerolog"
)

// SetDebugMode enables or disables transition tracing. When enabled, pinch
// edges, handle captures and releases, machine fires, and cooldown outcomes
// are logged at debug level to stderr. Disabled, logging is a no-op.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	if enabled {
		e.log = newDebugLogger()
	} else {
		e.log = zerolog.Nop()
	}
}

// SetLogger replaces the engine's logger and enables tracing. Hosts that
// already run zerolog can route engine traces into their own sink.
func (e *Engine) SetLogger(log zerolog.Logger) {
	e.debug = true
	e.log = log
}

// newDebugLogger builds the default stderr console logger.
func newDebugLogger() zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).With().Timestamp().Str("component", "grasp").Logger()
}
