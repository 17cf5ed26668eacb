package log

// Logger is a structured, leveled logger.
type Logger interface {
	// Debug logs a message for low-level debugging.
	// keysAndValues are treated as key-value pairs (e.g., "scheme", name).
	Debug(msg string, keysAndValues ...any)
	// Info logs routine progress.
	Info(msg string, keysAndValues ...any)
	// Warn logs an unexpected situation that is not an error.
	Warn(msg string, keysAndValues ...any)
	// Error logs a failure that prevents normal operation.
	Error(msg string, keysAndValues ...any)
	// Fatal logs a critical error and terminates the program.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger with an extra key-value pair for all future logs.
	WithKV(key string, value any) Logger
	// GetAllKV returns all persistent key-value pairs for this logger.
	GetAllKV() []any
	// WithName returns a logger with the given name appended to its hierarchy.
	WithName(name string) Logger
	// Name returns the logger's name.
	Name() string
}

// Level represents the severity level of a log message.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)
