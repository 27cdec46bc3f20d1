// Package logger provides logging functionality.

package logger

import (
	"io"
	"os"
	"time"
	"voice-api-smoke/internal/config"

	"github.com/rs/zerolog"
)

// NewLog initializes a logger.
func NewLog(cfg *config.Config) *zerolog.Logger {
	return newLog(os.Stderr, cfg.Logger.Level)
}

func newLog(out io.Writer, lvl int) *zerolog.Logger {
	var level zerolog.Level
	switch lvl {
	case 0:
		level = zerolog.DebugLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.WarnLevel
	case 3:
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	consoleWriter := zerolog.ConsoleWriter{Out: out, NoColor: out != os.Stderr}
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger().Level(level)
	return &logger
}
