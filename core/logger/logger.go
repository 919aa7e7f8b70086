// Package logger defines the logging contract shared by the factories, the
// service layer and the CLI. Implementations live in infra/logger.
package logger

// Logger exposes logging methods for common severity levels.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// Infow logs a message with structured fields.
	Infow(msg string, fields map[string]any)
	// With returns a child logger that adds the field to every entry.
	With(key string, value any) Logger
}
