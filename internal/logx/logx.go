package logx

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. Every component receives a child of
// this logger rather than constructing its own.
func New(service string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Str("service", service).Logger()
}
