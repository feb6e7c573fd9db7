// Package log provides the structured logging interface used by goneuron.
//
// The Logger interface mirrors the method set of log/slog so callers can
// swap implementations freely. The default implementation writes JSON lines
// through zerolog; TestLogger captures output in memory for assertions.
//
// Key features:
//   - slog-shaped interface with key/value fields
//   - training-specific attribute keys (solver, epoch, loss, data shape)
//   - error fields carry the cockroachdb/errors stack trace
//   - contextual loggers through With
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ModelNameKey, "LinearNeuron",
//	)
//	logger.Info("Training started",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 300,
//	    log.FeaturesKey, 1,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. Keys are usually one of the
// attribute constants in this package.
type Logger interface {
	// Debug logs a debug-level message. Per-epoch training progress is
	// logged at this level.
	Debug(msg string, fields ...any)

	// Info logs an info-level message.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message for conditions that do not stop
	// the current operation.
	Warn(msg string, fields ...any)

	// Error logs an error-level message. If the first field is an error
	// without a key it is logged under ErrorKey together with its stack
	// trace.
	//
	// Example:
	//   logger.Error("Training failed",
	//       err,
	//       log.OperationKey, log.OperationFit,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to skip building expensive fields:
	//
	//   if logger.Enabled(ctx, LevelDebug) {
	//       logger.Debug("weights", "values", n.Weights())
	//   }
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
