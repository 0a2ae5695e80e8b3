package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SiRune-Etch/aws-cloud-controller/app"
	"github.com/SiRune-Etch/aws-cloud-controller/aws"
	"github.com/SiRune-Etch/aws-cloud-controller/logs"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("244"))
	tabActiveStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("39")).Underline(true)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	stateRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	stateStopped = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statePending = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	stateDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	toastSuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	toastErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	toastInfoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	logDebugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	logInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	logSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	logWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	logErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the full frame: tab bar, active screen, status bar, toasts,
// and any open dialog overlaid in the center.
func (m Model) View() string {
	a := m.app

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch a.Screen {
	case app.ScreenHome:
		b.WriteString(m.renderHome())
	case app.ScreenInstances:
		b.WriteString(m.renderInstances())
	case app.ScreenFunctions:
		b.WriteString(m.renderFunctions())
	case app.ScreenAbout:
		b.WriteString(m.renderAbout())
	case app.ScreenLogs:
		b.WriteString(m.renderLogs())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString(m.renderToasts())

	frame := b.String()
	if a.Dialog.Kind != app.DialogNone {
		frame = m.overlayDialog()
	}
	return frame
}

func (m Model) renderTabs() string {
	a := m.app

	tabs := []struct {
		screen app.Screen
		label  string
	}{
		{app.ScreenHome, "[1] Home"},
		{app.ScreenInstances, "[2] Instances"},
		{app.ScreenFunctions, "[3] Functions"},
		{app.ScreenAbout, "[4] About"},
		{app.ScreenLogs, "[5] Logs"},
	}

	var parts []string
	for _, t := range tabs {
		if t.screen == app.ScreenLogs && !a.Settings.ShowLogsPanel {
			continue
		}
		if t.screen == a.Screen {
			parts = append(parts, tabActiveStyle.Render(t.label))
		} else {
			parts = append(parts, tabStyle.Render(t.label))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	profile := dimStyle.Render(fmt.Sprintf("profile: %s  region: %s", a.ActiveProfile, a.Identity.Region))
	gap := a.Width - lipgloss.Width(line) - lipgloss.Width(profile)
	if gap < 1 {
		gap = 1
	}
	return line + strings.Repeat(" ", gap) + profile
}

// visible applies the current scroll offset to the full content of a
// scrolling screen.
func (m Model) visible(lines []string) string {
	off := m.app.ScrollOffset
	if off > len(lines) {
		off = len(lines)
	}
	return strings.Join(lines[off:], "\n")
}

func (m Model) renderHome() string {
	a := m.app

	running, stopped := 0, 0
	for _, in := range a.Instances {
		switch in.State {
		case aws.StateRunning:
			running++
		case aws.StateStopped:
			stopped++
		}
	}

	lines := []string{
		titleStyle.Render("AWS Cloud Controller"),
		"",
		fmt.Sprintf("  Instances:  %d total, %s running, %s stopped",
			len(a.Instances),
			stateRunning.Render(fmt.Sprintf("%d", running)),
			stateStopped.Render(fmt.Sprintf("%d", stopped))),
		fmt.Sprintf("  Functions:  %d", len(a.Functions)),
		fmt.Sprintf("  Schedules:  %d auto-stop pending", len(a.Schedules)),
		"",
	}

	if len(a.Schedules) > 0 {
		lines = append(lines, dimStyle.Render("  Pending auto-stops:"))
		for _, s := range a.Schedules {
			lines = append(lines, fmt.Sprintf("    %s at %s", s.InstanceID, s.StopAt.Format("15:04:05")))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		dimStyle.Render("  Keys: s start  x stop  t terminate  a auto-stop  r refresh"),
		dimStyle.Render("        , settings  c profiles  ? help  q quit"),
	)
	return m.visible(lines)
}

func (m Model) renderInstances() string {
	a := m.app
	if len(a.Instances) == 0 {
		if a.Loading {
			return dimStyle.Render("  Loading instances...")
		}
		return dimStyle.Render("  No instances found. Press r to refresh.")
	}

	header := fmt.Sprintf("  %-20s %-22s %-12s %-12s %-15s %s",
		"ID", "NAME", "TYPE", "STATE", "PUBLIC IP", "AUTO-STOP")
	lines := []string{dimStyle.Render(header)}

	for i, in := range a.Instances {
		schedule := "-"
		for _, s := range a.Schedules {
			if s.InstanceID == in.ID {
				schedule = s.StopAt.Format("15:04:05")
			}
		}
		ip := in.PublicIP
		if ip == "" {
			ip = "-"
		}
		row := fmt.Sprintf("  %-20s %-22s %-12s %-12s %-15s %s",
			in.ID, truncate(in.Name, 22), in.Type, in.State, ip, schedule)
		if i == a.InstanceSelected {
			lines = append(lines, selectedRowStyle.Render(row))
		} else {
			lines = append(lines, renderStateRow(in.State, row))
		}
	}
	return strings.Join(lines, "\n")
}

func renderStateRow(state, row string) string {
	switch state {
	case aws.StateRunning:
		return stateRunning.Render(row)
	case aws.StateStopped, aws.StateTerminated:
		return stateDim.Render(row)
	default:
		return statePending.Render(row)
	}
}

func (m Model) renderFunctions() string {
	a := m.app
	if len(a.Functions) == 0 {
		if a.Loading {
			return dimStyle.Render("  Loading functions...")
		}
		return dimStyle.Render("  No Lambda functions found. Press r to refresh.")
	}

	header := fmt.Sprintf("  %-32s %-14s %8s  %s", "NAME", "RUNTIME", "MEMORY", "LAST MODIFIED")
	lines := []string{dimStyle.Render(header)}

	for i, fn := range a.Functions {
		row := fmt.Sprintf("  %-32s %-14s %6dMB  %s",
			truncate(fn.Name, 32), fn.Runtime, fn.MemoryMB, fn.LastModified)
		if i == a.FunctionSelected {
			lines = append(lines, selectedRowStyle.Render(row))
		} else {
			lines = append(lines, row)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderAbout() string {
	lines := []string{
		titleStyle.Render("About"),
		"",
		"  AWS Cloud Controller " + appVersion,
		"  A terminal dashboard for EC2 instances and Lambda functions.",
		"",
		"  Auto-refresh polls the active resource list and speeds up after",
		"  state-changing actions until every instance settles.",
		"  Long-running instances without an auto-stop schedule raise alerts.",
		"",
		dimStyle.Render("  v changelog  q quit"),
	}
	return m.visible(lines)
}

func (m Model) renderLogs() string {
	a := m.app

	entries := a.Log.Entries()
	lines := []string{titleStyle.Render("Logs"), ""}
	for _, e := range entries {
		if !a.Settings.ShouldShowLog(e.Level) {
			continue
		}
		line := fmt.Sprintf("  %s  %-7s  %s", e.Time.Format("15:04:05"), strings.ToUpper(string(e.Level)), e.Message)
		lines = append(lines, logLineStyle(e.Level).Render(line))
	}
	return m.visible(lines)
}

func logLineStyle(level logs.Level) lipgloss.Style {
	switch level {
	case logs.LevelDebug:
		return logDebugStyle
	case logs.LevelSuccess:
		return logSuccessStyle
	case logs.LevelWarning:
		return logWarnStyle
	case logs.LevelError:
		return logErrorStyle
	default:
		return logInfoStyle
	}
}

func (m Model) renderStatusBar() string {
	a := m.app

	status := a.StatusMessage
	if a.Loading {
		status = "⟳ " + status
	}

	right := ""
	if secs, ok := a.SecondsUntilRefresh(); ok {
		right = fmt.Sprintf("refresh in %ds", secs)
		if a.BoostUntilStable {
			right += " (boost)"
		}
	}

	gap := a.Width - lipgloss.Width(status) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return statusStyle.Width(a.Width).Render(status + strings.Repeat(" ", gap) + right)
}

// renderToasts shows the three newest live toasts under the status bar,
// newest on top.
func (m Model) renderToasts() string {
	toasts := m.app.Toasts
	if len(toasts) == 0 {
		return ""
	}

	newest := make([]app.Toast, 0, 3)
	for i := len(toasts) - 1; i >= 0 && len(newest) < 3; i-- {
		newest = append(newest, toasts[i])
	}

	var b strings.Builder
	for _, t := range newest {
		b.WriteString("\n")
		switch t.Kind {
		case app.ToastSuccess:
			b.WriteString(toastSuccessStyle.Render(t.Message))
		case app.ToastError:
			b.WriteString(toastErrorStyle.Render(t.Message))
		default:
			b.WriteString(toastInfoStyle.Render(t.Message))
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
