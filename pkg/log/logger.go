package log

import (
	"os"
	"strings"
	"sync"

	"github.com/YuminosukeSato/goneuron/pkg/errors"
)

var (
	globalMu sync.RWMutex
	global   Logger = NewZerologLogger(os.Stderr, LevelWarn)
)

// GetLogger returns the process-wide logger. Until SetupLogger or SetLogger
// is called it writes warnings and errors to stderr.
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// SetLogger replaces the process-wide logger.
func SetLogger(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = logger
}

// SetupLogger installs a JSON logger on stdout at the given level and routes
// errors.Warn through it.
func SetupLogger(loglevel string) error {
	level, err := ParseLevel(loglevel)
	if err != nil {
		return err
	}

	logger := NewZerologLogger(os.Stdout, level)
	SetLogger(logger)
	errors.SetZerologWarnFunc(func(w error) {
		logger.Warn(w.Error(), ErrorKey, w)
	})
	return nil
}

// ParseLevel converts "debug", "info", "warn" or "error" to a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.NewValidationError("log_level", "must be one of debug, info, warn, error", level)
	}
}
