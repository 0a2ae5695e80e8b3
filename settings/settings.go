// Package settings holds the persisted user configuration and the cyclic
// field editing used by the settings dialog.
package settings

import (
	"fmt"
	"time"

	"github.com/SiRune-Etch/aws-cloud-controller/logs"
)

// Cyclic value sets for the pick-a-value fields. Editing steps through these
// and wraps at either end.
var (
	refreshIntervals = []int{15, 30, 60, 120, 300}            // seconds
	alertThresholds  = []int{1800, 3600, 7200, 14400, 28800}  // seconds
)

// Settings is the persisted configuration. Field names map to keys in the
// settings.json file.
type Settings struct {
	RefreshIntervalSecs int        `mapstructure:"refresh_interval_secs"`
	ShowLogsPanel       bool       `mapstructure:"show_logs_panel"`
	LogLevel            logs.Level `mapstructure:"log_level"`
	AlertThresholdSecs  int        `mapstructure:"alert_threshold_secs"`
	SoundEnabled        bool       `mapstructure:"sound_enabled"`
	DefaultProfile      string     `mapstructure:"default_profile"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		RefreshIntervalSecs: 60,
		ShowLogsPanel:       false,
		LogLevel:            logs.LevelInfo,
		AlertThresholdSecs:  3600,
		SoundEnabled:        true,
	}
}

// RefreshInterval returns the auto-refresh interval as a duration.
func (s Settings) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalSecs) * time.Second
}

// AlertThreshold returns the long-running alert threshold as a duration.
func (s Settings) AlertThreshold() time.Duration {
	return time.Duration(s.AlertThresholdSecs) * time.Second
}

func cycle(values []int, current int, fallback int, forward bool) int {
	idx := fallback
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(values)
	} else {
		idx--
		if idx < 0 {
			idx = len(values) - 1
		}
	}
	return values[idx]
}

// CycleRefreshInterval steps to the next (or previous) refresh interval.
func (s *Settings) CycleRefreshInterval(forward bool) {
	s.RefreshIntervalSecs = cycle(refreshIntervals, s.RefreshIntervalSecs, 2, forward)
}

// CycleAlertThreshold steps to the next (or previous) alert threshold.
func (s *Settings) CycleAlertThreshold(forward bool) {
	s.AlertThresholdSecs = cycle(alertThresholds, s.AlertThresholdSecs, 1, forward)
}

// ToggleLogsPanel flips visibility of the Logs tab.
func (s *Settings) ToggleLogsPanel() {
	s.ShowLogsPanel = !s.ShowLogsPanel
}

// ToggleSound flips alert sound playback.
func (s *Settings) ToggleSound() {
	s.SoundEnabled = !s.SoundEnabled
}

// CycleLogLevel steps the minimum displayed log level. Debug, Info, Warning
// and Error form the cycle; Success is an output-only level and normalizes
// to Info.
func (s *Settings) CycleLogLevel(forward bool) {
	if forward {
		switch s.LogLevel {
		case logs.LevelDebug:
			s.LogLevel = logs.LevelInfo
		case logs.LevelInfo:
			s.LogLevel = logs.LevelWarning
		case logs.LevelWarning:
			s.LogLevel = logs.LevelError
		case logs.LevelError:
			s.LogLevel = logs.LevelDebug
		default:
			s.LogLevel = logs.LevelInfo
		}
		return
	}
	switch s.LogLevel {
	case logs.LevelDebug:
		s.LogLevel = logs.LevelError
	case logs.LevelInfo:
		s.LogLevel = logs.LevelDebug
	case logs.LevelWarning:
		s.LogLevel = logs.LevelInfo
	case logs.LevelError:
		s.LogLevel = logs.LevelWarning
	default:
		s.LogLevel = logs.LevelInfo
	}
}

// ShouldShowLog reports whether an entry of the given level passes the
// verbosity filter.
func (s Settings) ShouldShowLog(level logs.Level) bool {
	switch s.LogLevel {
	case logs.LevelDebug:
		return true
	case logs.LevelWarning:
		return level == logs.LevelWarning || level == logs.LevelError
	case logs.LevelError:
		return level == logs.LevelError
	default: // Info, or Success normalized to Info
		return level != logs.LevelDebug
	}
}

func formatSeconds(secs int) string {
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm", secs/60)
	default:
		return fmt.Sprintf("%dh", secs/3600)
	}
}

// FormatRefreshInterval renders the interval for the settings dialog.
func (s Settings) FormatRefreshInterval() string {
	return formatSeconds(s.RefreshIntervalSecs)
}

// FormatAlertThreshold renders the threshold for the settings dialog.
func (s Settings) FormatAlertThreshold() string {
	return formatSeconds(s.AlertThresholdSecs)
}

// FormatLogLevel renders the verbosity for the settings dialog.
func (s Settings) FormatLogLevel() string {
	switch s.LogLevel {
	case logs.LevelDebug:
		return "Debug (All)"
	case logs.LevelWarning:
		return "Warning"
	case logs.LevelError:
		return "Error Only"
	default:
		return "Info"
	}
}

// Field identifies a row in the settings dialog, in display order.
type Field int

const (
	FieldRefreshInterval Field = iota
	FieldShowLogsPanel
	FieldLogLevel
	FieldAlertThreshold
	FieldSoundEnabled
	FieldTestSound
)

// FieldCount is the number of settings dialog rows.
const FieldCount = 6

// Next returns the following field, wrapping past the bottom.
func (f Field) Next() Field {
	return (f + 1) % FieldCount
}

// Prev returns the preceding field, wrapping past the top.
func (f Field) Prev() Field {
	return (f + FieldCount - 1) % FieldCount
}

func (f Field) String() string {
	switch f {
	case FieldRefreshInterval:
		return "Refresh Interval"
	case FieldShowLogsPanel:
		return "Show Logs Panel"
	case FieldLogLevel:
		return "Log Verbosity"
	case FieldAlertThreshold:
		return "Alert Threshold"
	case FieldSoundEnabled:
		return "Sound Alerts"
	case FieldTestSound:
		return "Test Sound"
	default:
		return "Unknown"
	}
}
