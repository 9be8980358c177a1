// Package logging provides a logging abstraction layer that decouples the
// library from a specific logging framework. Packages log through the Logger
// interface; the logrus adapter is the production implementation and MockLogger
// captures entries for tests.
package logging

import "sync"

// Logger defines the interface for structured logging throughout the library.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names used across the library's log output.
const (
	FieldAccount       = "account"
	FieldAccountNumber = "account_number"
	FieldTransactionID = "transaction_id"
	FieldAttribute     = "attribute"
	FieldEntity        = "entity"
	FieldFixture       = "fixture_file"
	FieldCount         = "count"
	FieldOperation     = "operation"
)

var (
	mu            sync.RWMutex
	defaultLogger Logger = NewLogrusAdapter("info", "text")
)

// Default returns the shared logger used by packages that do not receive an
// explicit Logger.
func Default() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the shared logger. Passing nil is a no-op.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}
