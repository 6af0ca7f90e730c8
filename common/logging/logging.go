// Package logging configures the global zerolog logger for the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs a console writer on stderr at level. debug forces the
// debug level and adds caller information.
func Setup(level string, debug bool) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	if debug && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(lvl)

	logger := zerolog.New(ConsoleWriter(os.Stderr)).With().Timestamp()
	if debug {
		logger = logger.Caller()
	}
	log.Logger = logger.Logger()

	return nil
}

// isTerminal returns true if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWriter returns a writer for zerolog that has NoColor:!isTerminal(f).
func ConsoleWriter(f *os.File) io.Writer {
	return zerolog.ConsoleWriter{Out: f, NoColor: !isTerminal(f), TimeFormat: time.TimeOnly}
}
