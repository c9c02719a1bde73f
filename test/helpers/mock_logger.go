package helpers

import "sync"

// LogEntry is one captured log call
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// MockLogger captures log calls for assertions
type MockLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

func (l *MockLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// HasMessage reports whether a message was logged at the given level
func (l *MockLogger) HasMessage(level, message string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}
