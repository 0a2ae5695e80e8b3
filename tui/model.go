package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SiRune-Etch/aws-cloud-controller/app"
)

// tickInterval drives the maintenance loop: draining async completions,
// alert checks, and the auto-refresh timer.
const tickInterval = 250 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model wrapping the dashboard state machine. The
// state lives in *app.App; Update only translates terminal input into
// events and pumps the tick.
type Model struct {
	app *app.App
}

// NewModel creates the TUI model.
func NewModel(a *app.App) Model {
	return Model{app: a}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	m.app.Refresh()
	return tickCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.app.HandleEvent(app.Event{
			Kind:   app.EventResize,
			Width:  msg.Width,
			Height: msg.Height,
		})
		return m, nil

	case tea.KeyMsg:
		m.app.HandleEvent(eventForKey(msg.String()))
		if m.app.ShouldQuit {
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		m.app.Tick()
		return m, tickCmd()
	}

	return m, nil
}
