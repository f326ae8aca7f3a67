package helpers

import (
	"sync"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/logging"
)

// LogEntry is one captured log call
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// MockLogger records log calls for assertions
type MockLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ logging.Logger = (*MockLogger)(nil)

// NewMockLogger creates an empty MockLogger
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Log(level, message string, metadata map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// Entries returns a copy of the captured entries
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HasMessage reports whether any entry carries the message at the level
func (m *MockLogger) HasMessage(level, message string) bool {
	for _, e := range m.Entries() {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}
