// Package memlog keeps recent zerolog output in memory so the TUI can show it
// while it owns the terminal.
package memlog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// DefaultCapacity is the number of entries the global log keeps.
const DefaultCapacity = 500

// Entry is a single decoded log entry.
type Entry = map[string]any

// Global is the log the TUI writes to and shows.
var Global = New(DefaultCapacity)

// Log is an in-memory, bounded log that zerolog can write JSON lines to.
type Log struct {
	mtx      sync.Mutex
	capacity int
	entries  []Entry
}

// New returns a Log keeping at most capacity entries; older ones are dropped.
func New(capacity int) *Log {
	return &Log{capacity: capacity}
}

// Write decodes one JSON log line and appends it.
func (l *Log) Write(p []byte) (int, error) {
	entry := Entry{}
	if err := json.Unmarshal(p, &entry); err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry '%s' (%w)", string(p), err)
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.entries = append(l.entries, entry)
	if l.capacity > 0 && len(l.entries) > l.capacity {
		l.entries = append([]Entry(nil), l.entries[len(l.entries)-l.capacity:]...)
	}
	return len(p), nil
}

// Get returns a copy of the current entries, oldest first.
func (l *Log) Get() []Entry {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Reader allows reading access to a log.
type Reader interface {
	Get() []Entry
}
