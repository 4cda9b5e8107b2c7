package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger *zerolog.Logger
)

// Level is debug unless NO_DEBUG is set, in which case it is info.
func Level() zerolog.Level {
	if os.Getenv("NO_DEBUG") != "" {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}

func newConsole() zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(console).Level(Level()).With().Timestamp().Logger()
}

// Get returns the shared logger, a stdout console logger unless Set or
// SetOutput replaced it.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		l := newConsole()
		logger = &l
	}
	return *logger
}

func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = &l
}

// SetOutput sends JSON log lines to w, at the level given by Level.
func SetOutput(w io.Writer) {
	Set(zerolog.New(w).Level(Level()).With().Timestamp().Logger())
}

// Debugf writes a printf-style message at debug level.
func Debugf(format string, args ...any) {
	l := Get()
	l.Debug().Msgf(format, args...)
}
