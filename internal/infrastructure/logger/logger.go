package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	once         sync.Once
)

// GetLogger returns the global logger, defaulting to console output at info
// level until Init is called with the configured settings.
func GetLogger() zerolog.Logger {
	once.Do(func() {
		globalLogger = consoleLogger().Level(zerolog.InfoLevel)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	return globalLogger
}

// Init reconfigures the global logger from LOG_LEVEL / LOG_FORMAT values.
// Unknown levels fall back to info, unknown formats to console.
func Init(level, format string) zerolog.Logger {
	GetLogger()

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	switch strings.ToLower(format) {
	case "json":
		globalLogger = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(lvl)
	default:
		globalLogger = consoleLogger().Level(lvl)
	}
	zerolog.SetGlobalLevel(lvl)

	return globalLogger
}

func consoleLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).With().Timestamp().Logger()
}
