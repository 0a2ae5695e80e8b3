package logs

import (
	"fmt"
	"testing"
	"time"
)

func TestBufferAppendsInOrder(t *testing.T) {
	b := NewBuffer()
	b.Infof("first")
	b.Successf("second %d", 2)
	b.Errorf("third")

	entries := b.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Message != "first" || entries[0].Level != LevelInfo {
		t.Errorf("entries[0] = %v/%q", entries[0].Level, entries[0].Message)
	}
	if entries[1].Message != "second 2" || entries[1].Level != LevelSuccess {
		t.Errorf("entries[1] = %v/%q", entries[1].Level, entries[1].Message)
	}
	if entries[2].Level != LevelError {
		t.Errorf("entries[2].Level = %v, want error", entries[2].Level)
	}
}

func TestBufferDropsOldest(t *testing.T) {
	b := NewBuffer()
	b.now = func() time.Time { return time.Unix(0, 0) }
	for i := 0; i < MaxEntries+25; i++ {
		b.Infof("entry %d", i)
	}

	entries := b.Entries()
	if len(entries) != MaxEntries {
		t.Fatalf("got %d entries, want %d", len(entries), MaxEntries)
	}
	if entries[0].Message != "entry 25" {
		t.Errorf("oldest entry = %q, want entry 25", entries[0].Message)
	}
	if entries[len(entries)-1].Message != fmt.Sprintf("entry %d", MaxEntries+24) {
		t.Errorf("newest entry = %q", entries[len(entries)-1].Message)
	}
}
