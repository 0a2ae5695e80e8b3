package settings

import (
	"testing"
	"time"

	"github.com/SiRune-Etch/aws-cloud-controller/logs"
)

func TestCycleRefreshIntervalWraps(t *testing.T) {
	s := Default()
	if s.RefreshIntervalSecs != 60 {
		t.Fatalf("default interval = %d, want 60", s.RefreshIntervalSecs)
	}

	// Forward through the whole set and back to start.
	want := []int{120, 300, 15, 30, 60}
	for i, w := range want {
		s.CycleRefreshInterval(true)
		if s.RefreshIntervalSecs != w {
			t.Errorf("step %d: interval = %d, want %d", i, s.RefreshIntervalSecs, w)
		}
	}

	// Backward wraps past the first value.
	s.RefreshIntervalSecs = 15
	s.CycleRefreshInterval(false)
	if s.RefreshIntervalSecs != 300 {
		t.Errorf("backward wrap: interval = %d, want 300", s.RefreshIntervalSecs)
	}
}

func TestCycleRefreshIntervalUnknownValue(t *testing.T) {
	s := Default()
	s.RefreshIntervalSecs = 42 // not in the set
	s.CycleRefreshInterval(true)
	if s.RefreshIntervalSecs != 120 {
		t.Errorf("interval = %d, want 120 (next after the 60s fallback)", s.RefreshIntervalSecs)
	}
}

func TestCycleAlertThresholdWraps(t *testing.T) {
	s := Default()
	s.AlertThresholdSecs = 28800
	s.CycleAlertThreshold(true)
	if s.AlertThresholdSecs != 1800 {
		t.Errorf("threshold = %d, want 1800", s.AlertThresholdSecs)
	}
	s.CycleAlertThreshold(false)
	if s.AlertThresholdSecs != 28800 {
		t.Errorf("threshold = %d, want 28800", s.AlertThresholdSecs)
	}
}

func TestCycleLogLevel(t *testing.T) {
	s := Default()
	forward := []logs.Level{logs.LevelWarning, logs.LevelError, logs.LevelDebug, logs.LevelInfo}
	for i, w := range forward {
		s.CycleLogLevel(true)
		if s.LogLevel != w {
			t.Errorf("forward step %d: level = %v, want %v", i, s.LogLevel, w)
		}
	}

	// Success is output-only and normalizes to Info.
	s.LogLevel = logs.LevelSuccess
	s.CycleLogLevel(true)
	if s.LogLevel != logs.LevelInfo {
		t.Errorf("success normalizes to %v, want info", s.LogLevel)
	}
}

func TestShouldShowLog(t *testing.T) {
	tests := []struct {
		setting logs.Level
		entry   logs.Level
		want    bool
	}{
		{logs.LevelDebug, logs.LevelDebug, true},
		{logs.LevelDebug, logs.LevelError, true},
		{logs.LevelInfo, logs.LevelDebug, false},
		{logs.LevelInfo, logs.LevelSuccess, true},
		{logs.LevelInfo, logs.LevelInfo, true},
		{logs.LevelWarning, logs.LevelInfo, false},
		{logs.LevelWarning, logs.LevelWarning, true},
		{logs.LevelWarning, logs.LevelError, true},
		{logs.LevelError, logs.LevelWarning, false},
		{logs.LevelError, logs.LevelError, true},
	}
	for _, tt := range tests {
		s := Settings{LogLevel: tt.setting}
		if got := s.ShouldShowLog(tt.entry); got != tt.want {
			t.Errorf("setting %v, entry %v: got %v, want %v", tt.setting, tt.entry, got, tt.want)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	s := Settings{RefreshIntervalSecs: 15, AlertThresholdSecs: 7200}
	if got := s.FormatRefreshInterval(); got != "15s" {
		t.Errorf("FormatRefreshInterval = %q, want 15s", got)
	}
	if got := s.FormatAlertThreshold(); got != "2h" {
		t.Errorf("FormatAlertThreshold = %q, want 2h", got)
	}
	s.RefreshIntervalSecs = 120
	if got := s.FormatRefreshInterval(); got != "2m" {
		t.Errorf("FormatRefreshInterval = %q, want 2m", got)
	}
	if s.RefreshInterval() != 120*time.Second {
		t.Errorf("RefreshInterval = %v, want 2m", s.RefreshInterval())
	}
}

func TestFieldCycle(t *testing.T) {
	f := FieldRefreshInterval
	for i := 0; i < FieldCount; i++ {
		f = f.Next()
	}
	if f != FieldRefreshInterval {
		t.Errorf("Next x%d = %v, want FieldRefreshInterval", FieldCount, f)
	}
	if FieldRefreshInterval.Prev() != FieldTestSound {
		t.Errorf("Prev from top = %v, want FieldTestSound", FieldRefreshInterval.Prev())
	}
}
