package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w at the named level. Every event
// carries a run_id so lines from one invocation can be grouped.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", level)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger(), nil
}
