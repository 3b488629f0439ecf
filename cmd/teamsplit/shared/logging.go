package shared

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogFlags are the logging flags shared by every subcommand.
type LogFlags struct {
	Debug   bool `help:"Enable debug logging"`
	LogJSON bool `name:"log-json" help:"Emit structured JSON logs instead of console output"`
}

// Logger builds the logger selected by the flags.
func (f LogFlags) Logger() zerolog.Logger {
	if f.LogJSON {
		return SetupStructuredLogger(os.Stderr, f.Debug)
	}
	return SetupLogger(os.Stderr, f.Debug)
}

// SetupLogger configures zerolog with pretty console output
func SetupLogger(out io.Writer, debug bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// SetupStructuredLogger configures zerolog for structured (JSON) output
func SetupStructuredLogger(out io.Writer, debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(out).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
