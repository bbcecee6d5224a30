package core

// LogLevel is the minimum severity a logger will emit
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Logger is the structured logging port the domain layer writes through.
// Fields may be nil when a message needs no context.
type Logger interface {
	SetLevel(level LogLevel)
	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)
	// Flush writes out any buffered entries, typically on shutdown
	Flush() error
}
