package logging

// MockLogger is a Logger implementation that captures log entries for
// verification in tests.
type MockLogger struct {
	Entries []LogEntry

	pendingError error
	pendingField *Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// Debug captures a debug-level entry.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info captures an info-level entry.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn captures a warn-level entry.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error captures an error-level entry.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// WithError attaches an error to the next captured entry.
func (m *MockLogger) WithError(err error) Logger {
	m.pendingError = err
	return m
}

// WithField attaches a field to the next captured entry.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	m.pendingField = &Field{Key: key, Value: value}
	return m
}

// HasEntry reports whether an entry with the given level and message was
// captured.
func (m *MockLogger) HasEntry(level, msg string) bool {
	for _, e := range m.Entries {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	if m.pendingField != nil {
		fields = append([]Field{*m.pendingField}, fields...)
	}
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  fields,
		Error:   m.pendingError,
	})
	m.pendingError = nil
	m.pendingField = nil
}
