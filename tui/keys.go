package tui

import (
	"github.com/SiRune-Etch/aws-cloud-controller/app"
)

// eventForKey translates a terminal key into the abstract event the state
// machine consumes. Unbound keys map to EventNone.
func eventForKey(key string) app.Event {
	switch key {
	case "q", "ctrl+c":
		return app.Event{Kind: app.EventQuit}
	case "1":
		return app.Event{Kind: app.EventNavigateTab, Tab: 0}
	case "2":
		return app.Event{Kind: app.EventNavigateTab, Tab: 1}
	case "3":
		return app.Event{Kind: app.EventNavigateTab, Tab: 2}
	case "4":
		return app.Event{Kind: app.EventNavigateTab, Tab: 3}
	case "5":
		return app.Event{Kind: app.EventNavigateTab, Tab: 4}
	case "up", "k":
		return app.Event{Kind: app.EventUp}
	case "down", "j":
		return app.Event{Kind: app.EventDown}
	case "enter":
		return app.Event{Kind: app.EventEnter}
	case "s":
		return app.Event{Kind: app.EventStart}
	case "x":
		return app.Event{Kind: app.EventStop}
	case "t":
		return app.Event{Kind: app.EventTerminate}
	case "r":
		return app.Event{Kind: app.EventRefresh}
	case "a":
		return app.Event{Kind: app.EventSchedule}
	case "?", "h":
		return app.Event{Kind: app.EventShowHelp}
	case ",":
		return app.Event{Kind: app.EventOpenSettings}
	case "left", "-":
		return app.Event{Kind: app.EventModifySetting, Delta: -1}
	case "right", "+", "=":
		return app.Event{Kind: app.EventModifySetting, Delta: 1}
	case "c":
		return app.Event{Kind: app.EventConfigureProvider}
	case "l":
		return app.Event{Kind: app.EventSsoLogin}
	case "v":
		return app.Event{Kind: app.EventShowChangelog}
	case "esc":
		return app.Event{Kind: app.EventCancelSettings}
	default:
		return app.Event{Kind: app.EventNone}
	}
}
