package app

import "github.com/SiRune-Etch/aws-cloud-controller/settings"

// HandleEvent applies one input event. While a dialog is open, everything
// routes to the dialog sub-handler; a failed provider call never aborts the
// loop, it only mutates status/log/dialog state.
func (a *App) HandleEvent(ev Event) {
	if a.Dialog.Kind != DialogNone {
		a.handleDialogEvent(ev)
		return
	}

	switch ev.Kind {
	case EventQuit:
		a.ShouldQuit = true

	case EventNavigateTab:
		a.navigateTab(ev.Tab)

	case EventUp:
		a.moveSelection(-1)
	case EventDown:
		a.moveSelection(1)

	case EventRefresh:
		a.Refresh()

	case EventStart:
		a.startSelected()
	case EventStop:
		a.stopSelected()
	case EventTerminate:
		a.confirmTerminate()
	case EventSchedule:
		a.openScheduleDialog()

	case EventShowHelp:
		a.openDialog(Dialog{Kind: DialogHelp})

	case EventEnter:
		a.handleEnter()

	case EventResize:
		a.Width, a.Height = ev.Width, ev.Height

	case EventOpenSettings:
		a.openSettingsDialog()

	case EventConfigureProvider:
		a.openDialog(Dialog{Kind: DialogConfigureProvider})

	case EventShowChangelog:
		if a.Screen == ScreenAbout {
			a.openDialog(Dialog{Kind: DialogChangelog})
		}

	case EventModifySetting, EventCancelSettings, EventSsoLogin, EventNone:
		// Only meaningful inside dialogs.
	}
}

func (a *App) navigateTab(idx int) {
	next := a.Screen
	switch idx {
	case 0:
		next = ScreenHome
	case 1:
		next = ScreenInstances
	case 2:
		next = ScreenFunctions
	case 3:
		next = ScreenAbout
	case 4:
		next = ScreenLogs
	}

	// The Logs tab only exists when enabled in settings.
	if next == ScreenLogs && !a.Settings.ShowLogsPanel {
		next = a.Screen
	}

	if next != a.Screen {
		a.Screen = next
		a.ScrollOffset = 0
		a.Log.Infof("Navigated to %s screen", next)
	}
}

// handleDialogEvent re-interprets events while a modal is open.
func (a *App) handleDialogEvent(ev Event) {
	switch ev.Kind {
	case EventQuit:
		if a.Dialog.Kind == DialogSettings {
			a.cancelSettings()
		} else {
			a.closeDialog()
		}

	case EventUp:
		a.dialogUp()

	case EventDown:
		a.dialogDown()

	case EventEnter:
		a.dialogEnter()

	case EventConfigureProvider:
		a.openDialog(Dialog{Kind: DialogConfigureProvider})

	case EventModifySetting:
		if a.Dialog.Kind == DialogSettings {
			a.modifyCurrentSetting(ev.Delta)
		}

	case EventCancelSettings:
		if a.Dialog.Kind == DialogSettings {
			a.cancelSettings()
		} else {
			a.closeDialog()
		}

	case EventSsoLogin:
		switch a.Dialog.Kind {
		case DialogSessionExpired, DialogConfigureProvider, DialogSetup:
			a.LoginWithSso()
		}

	case EventRefresh:
		// Close first so a failed refresh cannot leave a stale dialog;
		// the refresh protocol reopens SessionExpired if still expired.
		if a.Dialog.Kind == DialogSessionExpired {
			a.closeDialog()
			a.Refresh()
		}
	}
}

func (a *App) dialogUp() {
	switch a.Dialog.Kind {
	case DialogSettings:
		if a.SettingsField != settings.FieldRefreshInterval {
			a.SettingsField = a.SettingsField.Prev()
			a.ensureDialogSelectionVisible()
		} else if a.DialogScroll > 0 {
			a.DialogScroll--
		}
	case DialogConfigureProvider, DialogSessionExpired:
		if a.ProfileIndex > 0 {
			a.ProfileIndex--
			a.ensureDialogSelectionVisible()
		} else if a.DialogScroll > 0 {
			a.DialogScroll--
		}
	default:
		if a.DialogScroll > 0 {
			a.DialogScroll--
		}
	}
}

func (a *App) dialogDown() {
	maxScroll := a.dialogMaxScroll()

	switch a.Dialog.Kind {
	case DialogSettings:
		if a.SettingsField != settings.FieldTestSound {
			a.SettingsField = a.SettingsField.Next()
			a.ensureDialogSelectionVisible()
		} else if a.DialogScroll < maxScroll {
			a.DialogScroll++
		}
	case DialogConfigureProvider, DialogSessionExpired:
		if len(a.Profiles) > 0 && a.ProfileIndex < len(a.Profiles)-1 {
			a.ProfileIndex++
			a.ensureDialogSelectionVisible()
		} else if a.DialogScroll < maxScroll {
			a.DialogScroll++
		}
	default:
		if a.DialogScroll < maxScroll {
			a.DialogScroll++
		}
	}
}

func (a *App) dialogEnter() {
	switch a.Dialog.Kind {
	case DialogConfirmTerminate:
		id := a.Dialog.InstanceID
		a.closeDialog()
		a.terminateInstance(id)

	case DialogScheduleAutoStop:
		id := a.Dialog.InstanceID
		a.closeDialog()
		a.ScheduleAutoStop(id, defaultStopDelay)

	case DialogSettings:
		if a.SettingsField == settings.FieldTestSound {
			a.triggerTestAlert()
		} else {
			a.saveSettings()
		}

	case DialogConfigureProvider, DialogSessionExpired:
		if len(a.Profiles) > 0 {
			a.ActivateProfile(a.Profiles[a.ProfileIndex])
		}

	case DialogAlert, DialogHelp, DialogSetup, DialogChangelog:
		a.closeDialog()
	}
}

// dialogMaxScroll derives the scroll bound for the open dialog from its
// height percentage, its content line count, and the current window height.
func (a *App) dialogMaxScroll() int {
	var percent, content int
	switch a.Dialog.Kind {
	case DialogSetup:
		percent, content = 70, 27
	case DialogHelp:
		percent, content = 60, 27
	case DialogSettings:
		percent, content = 60, 15
	case DialogSessionExpired:
		percent, content = 60, 25
	case DialogConfirmTerminate, DialogScheduleAutoStop:
		percent, content = 30, 12
	case DialogAlert:
		percent, content = 25, 10
	case DialogConfigureProvider:
		// Header + profile rows + footer.
		rows := len(a.Profiles)
		if rows < 1 {
			rows = 1
		}
		percent, content = 50, 5+rows+1
	case DialogChangelog:
		percent, content = 70, 50
	default:
		return 0
	}

	chunk := a.Height * percent / 100
	available := chunk - 2 // borders
	if available < 0 {
		available = 0
	}
	if content <= available {
		return 0
	}
	return content - available
}

// moveSelection moves the list cursor on Instances/Functions (clamped, no
// wrap), and scrolls content on Home/About/Logs.
func (a *App) moveSelection(delta int) {
	switch a.Screen {
	case ScreenInstances:
		if n := len(a.Instances); n > 0 {
			a.InstanceSelected = clamp(a.InstanceSelected+delta, 0, n-1)
		}
	case ScreenFunctions:
		if n := len(a.Functions); n > 0 {
			a.FunctionSelected = clamp(a.FunctionSelected+delta, 0, n-1)
		}
	default:
		// Fixed per-screen content heights; the wide layout threshold is
		// 100 columns. Chrome (tabs, status bar, borders) takes 8 rows.
		available := a.Height - 8
		if available < 0 {
			available = 0
		}

		var content int
		switch a.Screen {
		case ScreenHome:
			if a.Width >= 100 {
				content = 18
			} else {
				content = 25
			}
		case ScreenAbout:
			if a.Width >= 100 {
				content = 30
			} else {
				content = 58
			}
		case ScreenLogs:
			content = 50
		}

		maxScroll := content - available
		if maxScroll < 0 {
			maxScroll = 0
		}

		if delta > 0 {
			a.ScrollOffset = min(a.ScrollOffset+1, maxScroll)
		} else if a.ScrollOffset > 0 {
			a.ScrollOffset--
		}
	}
}

// handleEnter is the screen-specific confirm action.
func (a *App) handleEnter() {
	switch a.Screen {
	case ScreenInstances:
		a.Refresh()
	case ScreenFunctions:
		if a.FunctionSelected >= 0 && a.FunctionSelected < len(a.Functions) {
			a.StatusMessage = "Lambda invocation coming soon: " + a.Functions[a.FunctionSelected].Name
		}
	}
}

// ensureDialogSelectionVisible adjusts the dialog scroll so the selected
// profile or settings row stays inside the visible window.
func (a *App) ensureDialogSelectionVisible() {
	const topPadding = 5 // header lines before the first selectable row

	var percent int
	switch a.Dialog.Kind {
	case DialogConfigureProvider, DialogSessionExpired:
		percent = 50
	case DialogSettings:
		percent = 60
	default:
		return
	}

	chunk := a.Height * percent / 100
	available := chunk - 3 // borders plus inner top padding
	if available < 0 {
		available = 0
	}

	var target int
	switch a.Dialog.Kind {
	case DialogConfigureProvider, DialogSessionExpired:
		target = topPadding + a.ProfileIndex
	case DialogSettings:
		// Settings rows take two lines each: label plus spacer.
		target = topPadding + int(a.SettingsField)*2
	}

	if target < a.DialogScroll {
		a.DialogScroll = target
	} else if target >= a.DialogScroll+available {
		a.DialogScroll = target - available + 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
