package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Setup configures the process-wide logger. Unknown levels fall back to info.
func Setup(level string, devMode bool, service string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if devMode {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	} else {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	}

	SetOutput(zerolog.New(out).Level(lvl).With().Timestamp().Str("service", service).Logger())
}

// SetOutput replaces the process-wide logger, mainly for tests.
func SetOutput(l zerolog.Logger) {
	mu.Lock()
	base = l
	mu.Unlock()
}

// Get returns the current process-wide logger.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// With returns a child logger tagged with the component name.
func With(component string) zerolog.Logger {
	l := Get()
	return l.With().Str("component", component).Logger()
}

func Info(msg string, v ...interface{}) {
	l := Get()
	l.Info().Msgf(msg, v...)
}

func Warn(msg string, v ...interface{}) {
	l := Get()
	l.Warn().Msgf(msg, v...)
}

func Error(msg string, err error, v ...interface{}) {
	l := Get()
	event := l.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msgf(msg, v...)
}
