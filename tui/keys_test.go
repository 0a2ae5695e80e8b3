package tui

import (
	"testing"

	"github.com/SiRune-Etch/aws-cloud-controller/app"
)

func TestEventForKey(t *testing.T) {
	cases := []struct {
		key  string
		want app.Event
	}{
		{"q", app.Event{Kind: app.EventQuit}},
		{"ctrl+c", app.Event{Kind: app.EventQuit}},
		{"1", app.Event{Kind: app.EventNavigateTab, Tab: 0}},
		{"5", app.Event{Kind: app.EventNavigateTab, Tab: 4}},
		{"k", app.Event{Kind: app.EventUp}},
		{"up", app.Event{Kind: app.EventUp}},
		{"j", app.Event{Kind: app.EventDown}},
		{"down", app.Event{Kind: app.EventDown}},
		{"enter", app.Event{Kind: app.EventEnter}},
		{"s", app.Event{Kind: app.EventStart}},
		{"x", app.Event{Kind: app.EventStop}},
		{"t", app.Event{Kind: app.EventTerminate}},
		{"r", app.Event{Kind: app.EventRefresh}},
		{"a", app.Event{Kind: app.EventSchedule}},
		{"?", app.Event{Kind: app.EventShowHelp}},
		{"h", app.Event{Kind: app.EventShowHelp}},
		{",", app.Event{Kind: app.EventOpenSettings}},
		{"left", app.Event{Kind: app.EventModifySetting, Delta: -1}},
		{"-", app.Event{Kind: app.EventModifySetting, Delta: -1}},
		{"right", app.Event{Kind: app.EventModifySetting, Delta: 1}},
		{"+", app.Event{Kind: app.EventModifySetting, Delta: 1}},
		{"=", app.Event{Kind: app.EventModifySetting, Delta: 1}},
		{"c", app.Event{Kind: app.EventConfigureProvider}},
		{"l", app.Event{Kind: app.EventSsoLogin}},
		{"v", app.Event{Kind: app.EventShowChangelog}},
		{"esc", app.Event{Kind: app.EventCancelSettings}},
		{"z", app.Event{Kind: app.EventNone}},
		{"", app.Event{Kind: app.EventNone}},
	}
	for _, tc := range cases {
		if got := eventForKey(tc.key); got != tc.want {
			t.Errorf("eventForKey(%q) = %+v, want %+v", tc.key, got, tc.want)
		}
	}
}
