package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// nopCloser is returned when no log file was opened.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the application logger from the logging settings.
//
// console receives human-readable output when non-nil; the TUI passes nil
// because the terminal belongs to Bubble Tea. When settings.File is set the
// log is also appended there. debug forces the debug level.
//
// The returned closer releases the log file, if any.
func NewLogger(settings LoggingSettings, console io.Writer, debug bool) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(settings.Level)
	if err != nil || settings.Level == "" {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		})
	}

	var closer io.Closer = nopCloser{}
	if settings.File != "" {
		if dir := filepath.Dir(settings.File); dir != "." {
			if mkErr := os.MkdirAll(dir, 0750); mkErr != nil {
				return zerolog.Nop(), closer, mkErr
			}
		}
		logFile, fileErr := os.OpenFile(settings.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			return zerolog.Nop(), closer, fileErr
		}
		closer = logFile
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}

// ComponentLogger tags a logger with the component that writes through it
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
