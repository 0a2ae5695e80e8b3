package app

// EventKind enumerates the abstract input events the state machine
// understands. The terminal key mapping lives in the tui package.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventNavigateTab
	EventUp
	EventDown
	EventEnter
	EventStart
	EventStop
	EventTerminate
	EventRefresh
	EventSchedule
	EventShowHelp
	EventOpenSettings
	EventModifySetting
	EventCancelSettings
	EventResize
	EventConfigureProvider
	EventSsoLogin
	EventShowChangelog
)

// Event is one abstract input event. Tab is set for NavigateTab, Delta for
// ModifySetting (±1), Width/Height for Resize.
type Event struct {
	Kind          EventKind
	Tab           int
	Delta         int
	Width, Height int
}
