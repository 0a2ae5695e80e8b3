// Package logs keeps the in-memory activity log shown on the Logs screen.
// It is separate from the debug log file; these entries are user-facing.
package logs

import (
	"fmt"
	"time"
)

// MaxEntries bounds the buffer; the oldest entries are dropped first.
const MaxEntries = 1000

// Level tags an entry's severity. Stored as a string so it round-trips
// cleanly through the settings file.
type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Entry is a single timestamped log line.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// Buffer collects entries with a fixed capacity. Not safe for concurrent
// use; all writes happen on the event loop.
type Buffer struct {
	entries []Entry
	now     func() time.Time
}

// NewBuffer returns an empty log buffer.
func NewBuffer() *Buffer {
	return &Buffer{now: time.Now}
}

// Log appends an entry, dropping the oldest when over capacity.
func (b *Buffer) Log(level Level, message string) {
	b.entries = append(b.entries, Entry{Time: b.now(), Level: level, Message: message})
	if n := len(b.entries); n > MaxEntries {
		b.entries = b.entries[n-MaxEntries:]
	}
}

func (b *Buffer) Debugf(format string, args ...any) {
	b.Log(LevelDebug, fmt.Sprintf(format, args...))
}

func (b *Buffer) Infof(format string, args ...any) {
	b.Log(LevelInfo, fmt.Sprintf(format, args...))
}

func (b *Buffer) Successf(format string, args ...any) {
	b.Log(LevelSuccess, fmt.Sprintf(format, args...))
}

func (b *Buffer) Warnf(format string, args ...any) {
	b.Log(LevelWarning, fmt.Sprintf(format, args...))
}

func (b *Buffer) Errorf(format string, args ...any) {
	b.Log(LevelError, fmt.Sprintf(format, args...))
}

// Entries returns all entries, oldest first.
func (b *Buffer) Entries() []Entry {
	return b.entries
}
