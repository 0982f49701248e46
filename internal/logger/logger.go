package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. Pretty output is for local runs;
// otherwise plain JSON lines go to stdout for collection.
func New(pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	base := zerolog.New(os.Stdout)
	if pretty {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime})
	}

	return base.With().
		Timestamp().
		Str("service", "wager-arena").
		Logger()
}
