// package logger holds the process-wide structured logger used by every engine
// package. It defaults to a no-op logger so library consumers that never call
// Init are not forced into the engine's logging configuration.
package logger

import (
	"go.uber.org/zap"
)

// Log is the shared logger instance. Safe to use before Init; it starts as a no-op.
var Log = zap.NewNop()

// Init replaces the shared logger with a real one.
// Call once at startup before creating the viewer.
//
// Parameters:
//   - debug: if true, uses the human-readable development configuration
//
// Returns:
//   - error: error if the logger could not be constructed
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	_ = Log.Sync()
}
