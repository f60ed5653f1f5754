// Package logging builds the zerolog logger used across a run.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to out at the given level. Unknown
// levels fall back to info. Standard output is reserved for the report, so
// callers normally pass os.Stderr.
func New(out io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
