package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SiRune-Etch/aws-cloud-controller/app"
	"github.com/SiRune-Etch/aws-cloud-controller/settings"
)

const appVersion = "v1.2.0"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 2)

	dialogTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dialogDangerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dialogFieldStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dialogHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// heightPercent is the share of the terminal height each dialog occupies.
// The scroll bound in the state machine is derived from the same numbers.
func heightPercent(kind app.DialogKind) int {
	switch kind {
	case app.DialogSetup, app.DialogChangelog:
		return 70
	case app.DialogHelp, app.DialogSettings, app.DialogSessionExpired:
		return 60
	case app.DialogConfigureProvider:
		return 50
	case app.DialogConfirmTerminate, app.DialogScheduleAutoStop:
		return 30
	case app.DialogAlert:
		return 25
	default:
		return 50
	}
}

// overlayDialog renders the open dialog centered over a blank backdrop.
// The underlying screen is redrawn on close, so nothing is composited.
func (m Model) overlayDialog() string {
	a := m.app

	lines := m.dialogLines()

	chunk := a.Height * heightPercent(a.Dialog.Kind) / 100
	visible := chunk - 2
	if visible < 1 {
		visible = 1
	}

	off := a.DialogScroll
	if off > len(lines) {
		off = len(lines)
	}
	end := off + visible
	if end > len(lines) {
		end = len(lines)
	}

	box := dialogStyle.Render(strings.Join(lines[off:end], "\n"))
	return lipgloss.Place(a.Width, a.Height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) dialogLines() []string {
	a := m.app

	switch a.Dialog.Kind {
	case app.DialogHelp:
		return helpLines()
	case app.DialogSetup:
		return setupLines()
	case app.DialogSettings:
		return m.settingsLines()
	case app.DialogSessionExpired:
		return m.sessionExpiredLines()
	case app.DialogConfirmTerminate:
		return []string{
			dialogDangerStyle.Render("Terminate instance?"),
			"",
			fmt.Sprintf("  %s", a.Dialog.InstanceID),
			"",
			"This cannot be undone. The instance and its",
			"ephemeral storage will be destroyed.",
			"",
			dialogHintStyle.Render("enter confirm   esc cancel"),
		}
	case app.DialogScheduleAutoStop:
		return []string{
			dialogTitleStyle.Render("Schedule auto-stop"),
			"",
			fmt.Sprintf("  %s", a.Dialog.InstanceID),
			"",
			"Stop this instance automatically in 1 hour.",
			"",
			dialogHintStyle.Render("enter schedule   esc cancel"),
		}
	case app.DialogAlert:
		return []string{
			dialogDangerStyle.Render("⚠ Long-running instance"),
			"",
			a.Dialog.Message,
			"",
			dialogHintStyle.Render("enter dismiss"),
		}
	case app.DialogConfigureProvider:
		return m.providerLines()
	case app.DialogChangelog:
		return changelogLines()
	default:
		return nil
	}
}

func helpLines() []string {
	return []string{
		dialogTitleStyle.Render("Keyboard shortcuts"),
		"",
		"  Navigation",
		"    1-5        switch screen",
		"    ↑/k ↓/j    move selection / scroll",
		"    enter      confirm / refresh list",
		"",
		"  Instances",
		"    s          start selected instance",
		"    x          stop selected instance",
		"    t          terminate selected instance (confirms)",
		"    a          schedule auto-stop in 1 hour",
		"    r          refresh now",
		"",
		"  Application",
		"    ,          settings",
		"    c          switch AWS profile",
		"    l          SSO login",
		"    v          changelog (on About)",
		"    ? / h      this help",
		"    q          quit",
		"",
		dialogHintStyle.Render("enter/esc close"),
	}
}

func setupLines() []string {
	return []string{
		dialogTitleStyle.Render("AWS credentials not configured"),
		"",
		"No AWS credentials were found. Configure one of:",
		"",
		"  1. Environment variables",
		"     export AWS_ACCESS_KEY_ID=...",
		"     export AWS_SECRET_ACCESS_KEY=...",
		"",
		"  2. Shared credentials file",
		"     aws configure",
		"     (writes ~/.aws/credentials)",
		"",
		"  3. SSO",
		"     aws configure sso",
		"     then press l here to log in",
		"",
		"The dashboard works read-only until credentials",
		"are available; every list call will fail until",
		"then.",
		"",
		dialogHintStyle.Render("l sso login   enter close"),
	}
}

func (m Model) settingsLines() []string {
	a := m.app
	s := a.Settings
	if a.Draft != nil {
		s = *a.Draft
	}

	row := func(f settings.Field, label, value string) string {
		line := fmt.Sprintf("  %-18s %s", label, value)
		if a.SettingsField == f {
			return dialogFieldStyle.Render("▸" + line[1:])
		}
		return line
	}

	return []string{
		dialogTitleStyle.Render("Settings"),
		"",
		row(settings.FieldRefreshInterval, "Refresh interval", s.FormatRefreshInterval()),
		"",
		row(settings.FieldShowLogsPanel, "Logs panel", onOff(s.ShowLogsPanel)),
		"",
		row(settings.FieldLogLevel, "Log level", s.FormatLogLevel()),
		"",
		row(settings.FieldAlertThreshold, "Alert threshold", s.FormatAlertThreshold()),
		"",
		row(settings.FieldSoundEnabled, "Alert sound", onOff(s.SoundEnabled)),
		"",
		row(settings.FieldTestSound, "Test sound", "♪"),
		"",
		dialogHintStyle.Render("←/→ change   enter save   esc cancel"),
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m Model) sessionExpiredLines() []string {
	lines := []string{
		dialogDangerStyle.Render("Session expired"),
		"",
		"Your AWS credentials are no longer valid.",
		"Log in again or switch to another profile.",
		"",
	}
	lines = append(lines, m.profileRows()...)
	lines = append(lines,
		"",
		dialogHintStyle.Render("l sso login   enter switch profile   r retry"),
	)
	return lines
}

func (m Model) providerLines() []string {
	lines := []string{
		dialogTitleStyle.Render("AWS profiles"),
		"",
		"Select a profile to activate:",
		"",
		"",
	}
	lines = append(lines, m.profileRows()...)
	lines = append(lines, dialogHintStyle.Render("enter activate   l sso login   esc close"))
	return lines
}

func (m Model) profileRows() []string {
	a := m.app
	if len(a.Profiles) == 0 {
		return []string{dialogHintStyle.Render("  (no profiles in ~/.aws/config)")}
	}

	rows := make([]string, 0, len(a.Profiles))
	for i, p := range a.Profiles {
		marker := " "
		if p == a.ActiveProfile {
			marker = "*"
		}
		row := fmt.Sprintf(" %s %s", marker, p)
		if i == a.ProfileIndex {
			row = dialogFieldStyle.Render("▸" + row[1:])
		}
		rows = append(rows, row)
	}
	return rows
}

func changelogLines() []string {
	return []string{
		dialogTitleStyle.Render("Changelog"),
		"",
		"v1.2.0",
		"  - Lambda function listing",
		"  - Auto-stop schedules with long-running alerts",
		"  - Alert sound with per-settings toggle and test button",
		"  - Profile switching without restart",
		"",
		"v1.1.0",
		"  - SSO login from the session-expired dialog",
		"  - Session expiry detection on refresh errors",
		"  - Boost polling after start/stop/terminate",
		"  - Settings dialog with draft editing",
		"",
		"v1.0.1",
		"  - Logs screen behind a settings toggle",
		"  - Toast notifications for action results",
		"  - Status bar refresh countdown",
		"",
		"v1.0.0",
		"  - EC2 instance listing with start/stop/terminate",
		"  - Auto-refresh with configurable interval",
		"  - Profile and region from flags or environment",
		"",
		"v0.9.0",
		"  - Settings persisted to the user config directory",
		"  - Instance table colored by state",
		"  - Help dialog",
		"",
		"v0.8.0",
		"  - Terminate confirmation dialog",
		"  - Home screen summary with pending schedules",
		"  - Wide and narrow screen layouts",
		"",
		"v0.7.0",
		"  - Keyboard-driven tab navigation",
		"  - Status bar with loading indicator",
		"  - File logging behind --log-file",
		"",
		"v0.6.0",
		"  - First public release",
		"  - Read-only EC2 instance table",
		"",
		dialogHintStyle.Render("enter close"),
	}
}
