package app

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/SiRune-Etch/aws-cloud-controller/aws"
	"github.com/SiRune-Etch/aws-cloud-controller/settings"
)

// defaultStopDelay is the auto-stop horizon offered by the schedule dialog.
const defaultStopDelay = time.Hour

// Refresh starts the refresh protocol for the active screen: mark loading
// and dispatch the matching list call in the background. Its completion is
// applied when the notification is drained; lastRefresh is stamped and
// loading cleared on success and failure alike.
func (a *App) Refresh() {
	switch a.Screen {
	case ScreenAbout, ScreenLogs:
		a.StatusMessage = "Nothing to refresh on this screen"
		a.LastRefresh = a.now()
		return
	}

	// Single-flight: at most one list call per resource in the air.
	if a.Loading {
		return
	}
	a.Loading = true
	a.StatusMessage = "Loading..."

	client, ctx := a.Client, a.ctx
	if a.Screen == ScreenFunctions {
		a.spawn(func() {
			functions, err := client.ListFunctions(ctx)
			a.notify <- functionsLoaded{functions: functions, err: err}
		})
		return
	}
	// Home and Instances both refresh the instance list.
	a.spawn(func() {
		instances, err := client.ListInstances(ctx)
		a.notify <- instancesLoaded{instances: instances, err: err}
	})
}

func (a *App) applyInstancesLoaded(n instancesLoaded) {
	if n.err != nil {
		a.failRefresh("instances", n.err.Error())
	} else {
		a.Instances = n.instances
		a.StatusMessage = fmt.Sprintf("Loaded %d instances", len(n.instances))
		a.Log.Successf("Refreshed instances: %d loaded", len(n.instances))
	}
	a.Loading = false
	a.LastRefresh = a.now()
}

func (a *App) applyFunctionsLoaded(n functionsLoaded) {
	if n.err != nil {
		a.failRefresh("functions", n.err.Error())
	} else {
		a.Functions = n.functions
		a.StatusMessage = fmt.Sprintf("Loaded %d functions", len(n.functions))
		a.Log.Successf("Refreshed functions: %d loaded", len(n.functions))
	}
	a.Loading = false
	a.LastRefresh = a.now()
}

func (a *App) failRefresh(what, errText string) {
	a.StatusMessage = "Error: " + errText
	a.Log.Errorf("Failed to load %s: %s", what, errText)
	if IsSessionExpired(errText) {
		a.openDialog(Dialog{Kind: DialogSessionExpired})
		a.Log.Warnf("Session token expired - credentials need refresh")
	}
}

// CheckAutoRefresh runs the refresh timer. Suppressed on the About screen
// and while any dialog is open. Expired toasts are purged here, before the
// timer is evaluated.
func (a *App) CheckAutoRefresh() {
	if a.Screen == ScreenAbout || a.Dialog.Kind != DialogNone {
		return
	}

	a.purgeToasts()

	if a.BoostUntilStable && a.allInstancesStable() {
		a.BoostUntilStable = false
	}

	if a.LastRefresh.IsZero() || a.now().Sub(a.LastRefresh) >= a.effectiveInterval() {
		a.Refresh()
	}
}

func (a *App) effectiveInterval() time.Duration {
	if a.BoostUntilStable {
		return boostInterval
	}
	return a.RefreshInterval
}

// SecondsUntilRefresh is a read-only projection of the refresh timer for
// the status bar. The second return is false when refresh is suppressed or
// has never run.
func (a *App) SecondsUntilRefresh() (int, bool) {
	if a.Screen == ScreenAbout || a.Dialog.Kind != DialogNone {
		return 0, false
	}
	if a.LastRefresh.IsZero() {
		return 0, false
	}
	remain := a.effectiveInterval() - a.now().Sub(a.LastRefresh)
	if remain < 0 {
		remain = 0
	}
	return int(remain.Seconds()), true
}

func (a *App) allInstancesStable() bool {
	for _, in := range a.Instances {
		if !in.Stable() {
			return false
		}
	}
	return true
}

// startSelected starts the instance under the cursor.
func (a *App) startSelected() {
	inst, ok := a.selectedInstance()
	if !ok {
		return
	}
	a.StatusMessage = fmt.Sprintf("Starting %s...", inst.ID)

	client, ctx := a.Client, a.ctx
	id, name := inst.ID, inst.Name
	a.spawn(func() {
		err := client.StartInstance(ctx, id)
		a.notify <- actionDone{op: opStart, id: id, name: name, err: err}
	})
}

// stopSelected stops the instance under the cursor.
func (a *App) stopSelected() {
	inst, ok := a.selectedInstance()
	if !ok {
		return
	}
	a.StatusMessage = fmt.Sprintf("Stopping %s...", inst.ID)

	client, ctx := a.Client, a.ctx
	id, name := inst.ID, inst.Name
	a.spawn(func() {
		err := client.StopInstance(ctx, id)
		a.notify <- actionDone{op: opStop, id: id, name: name, err: err}
	})
}

// confirmTerminate opens the confirmation dialog for the selected instance.
// The ID is captured now; the selection may move while the dialog is open.
func (a *App) confirmTerminate() {
	if inst, ok := a.selectedInstance(); ok {
		a.openDialog(Dialog{Kind: DialogConfirmTerminate, InstanceID: inst.ID})
	}
}

// terminateInstance runs post-confirmation with the captured ID.
func (a *App) terminateInstance(id string) {
	a.StatusMessage = fmt.Sprintf("Terminating %s...", id)

	client, ctx := a.Client, a.ctx
	name := a.instanceName(id)
	a.spawn(func() {
		err := client.TerminateInstance(ctx, id)
		a.notify <- actionDone{op: opTerminate, id: id, name: name, err: err}
	})
}

func (a *App) applyActionDone(n actionDone) {
	verb := n.op.verb()
	if n.err != nil {
		a.StatusMessage = fmt.Sprintf("Failed to %s: %v", n.op, n.err)
		a.AddToast(fmt.Sprintf("✗ Failed to %s: %s", n.op, n.name), ToastError)
		a.Log.Errorf("Failed to %s %s: %v", n.op, n.name, n.err)
		return
	}
	a.StatusMessage = fmt.Sprintf("%s %s", verb, n.id)
	a.AddToast(fmt.Sprintf("✓ %s: %s", verb, n.name), ToastSuccess)
	a.Log.Successf("%s instance: %s (%s)", verb, n.name, n.id)
	a.BoostUntilStable = true
	a.Refresh()
}

// openScheduleDialog opens the auto-stop dialog for the selected instance.
func (a *App) openScheduleDialog() {
	if inst, ok := a.selectedInstance(); ok {
		a.openDialog(Dialog{Kind: DialogScheduleAutoStop, InstanceID: inst.ID})
	}
}

// ScheduleAutoStop records an advisory auto-stop time for an instance.
// Scheduling again for the same instance replaces the prior entry.
func (a *App) ScheduleAutoStop(id string, delay time.Duration) {
	stopAt := a.now().Add(delay)

	kept := a.Schedules[:0]
	for _, s := range a.Schedules {
		if s.InstanceID != id {
			kept = append(kept, s)
		}
	}
	a.Schedules = append(kept, Schedule{InstanceID: id, StopAt: stopAt})

	name := a.instanceName(id)
	a.StatusMessage = fmt.Sprintf("Scheduled auto-stop for %s at %s", id, stopAt.Format("15:04:05"))
	a.AddToast("⏰ Scheduled: "+name, ToastSuccess)
	a.Log.Successf("Scheduled auto-stop for %s (%s) at %s", name, id, stopAt.Format("15:04:05"))
}

// CheckAlerts raises a modal alert for each running instance that has
// outlived the threshold without an auto-stop schedule. Throttled to one
// pass per 30 seconds; a given message alerts at most once.
func (a *App) CheckAlerts() {
	now := a.now()
	if !a.lastAlertCheck.IsZero() && now.Sub(a.lastAlertCheck) < alertCheckInterval {
		return
	}
	a.lastAlertCheck = now

	threshold := a.Settings.AlertThreshold()
	for _, inst := range a.Instances {
		if inst.State != aws.StateRunning || inst.LaunchTime == nil || a.hasSchedule(inst.ID) {
			continue
		}
		running := now.Sub(*inst.LaunchTime)
		if running <= threshold {
			continue
		}

		msg := fmt.Sprintf("Instance %s (%s) running for %s without auto-stop!",
			inst.Name, inst.ID, formatRunDuration(running))
		if a.hasPendingAlert(msg) {
			continue
		}
		a.PendingAlerts = append(a.PendingAlerts, msg)
		a.openDialog(Dialog{Kind: DialogAlert, Message: msg})
		if a.Settings.SoundEnabled {
			a.playSound()
		}
	}
}

func (a *App) hasPendingAlert(msg string) bool {
	for _, m := range a.PendingAlerts {
		if m == msg {
			return true
		}
	}
	return false
}

func formatRunDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// openSettingsDialog snapshots the current settings into an editable draft.
func (a *App) openSettingsDialog() {
	draft := a.Settings
	a.Draft = &draft
	a.SettingsField = settings.FieldRefreshInterval
	a.openDialog(Dialog{Kind: DialogSettings})
	a.Log.Infof("Opened settings dialog")
}

// saveSettings commits the draft, persists it, and recomputes the refresh
// interval.
func (a *App) saveSettings() {
	if a.Draft != nil {
		a.Settings = *a.Draft
		a.Draft = nil
		a.RefreshInterval = a.Settings.RefreshInterval()
		if err := a.Store.Save(a.Settings); err != nil {
			a.AddToast(fmt.Sprintf("Failed to save settings: %v", err), ToastError)
			a.Log.Errorf("Failed to save settings: %v", err)
		} else {
			a.AddToast("Settings saved", ToastSuccess)
			a.Log.Successf("Settings saved")
		}
	}
	a.closeDialog()
}

// cancelSettings discards the draft without saving.
func (a *App) cancelSettings() {
	a.Draft = nil
	a.closeDialog()
	a.Log.Infof("Settings dialog cancelled")
}

// modifyCurrentSetting cycles or toggles the selected draft field.
func (a *App) modifyCurrentSetting(delta int) {
	if a.Draft == nil {
		return
	}
	forward := delta > 0
	switch a.SettingsField {
	case settings.FieldRefreshInterval:
		a.Draft.CycleRefreshInterval(forward)
	case settings.FieldShowLogsPanel:
		a.Draft.ToggleLogsPanel()
	case settings.FieldLogLevel:
		a.Draft.CycleLogLevel(forward)
	case settings.FieldAlertThreshold:
		a.Draft.CycleAlertThreshold(forward)
	case settings.FieldSoundEnabled:
		a.Draft.ToggleSound()
	case settings.FieldTestSound:
		// Action field; the delta has no meaning.
	}
}

// triggerTestAlert plays the alert sound without any alert condition.
func (a *App) triggerTestAlert() {
	a.playSound()
	a.AddToast("🔔 Test alert: sound is working", ToastInfo)
	a.Log.Infof("Triggered test alert sound")
}

// LoginWithSso spawns the external `aws sso login` helper for the
// highlighted profile and relays its outcome through the bridge.
func (a *App) LoginWithSso() {
	a.StatusMessage = "Initiating SSO login..."
	a.AddToast("🔑 Starting SSO login... check your browser", ToastInfo)

	var profile string
	if len(a.Profiles) > 0 {
		profile = a.Profiles[a.ProfileIndex]
	}

	a.spawn(func() {
		args := []string{"sso", "login"}
		if profile != "" {
			args = append(args, "--profile", profile)
		}
		out, err := exec.Command("aws", args...).CombinedOutput()
		a.notify <- ssoLoginDone{profile: profile, output: string(out), err: err}
	})
	a.Log.Infof("Spawned 'aws sso login' in background")
}

// ActivateProfile switches the active credential identity: the client is
// rebuilt in the background under the new identity and swapped in when the
// notification arrives. AppState is never mutated from the worker.
func (a *App) ActivateProfile(name string) {
	a.StatusMessage = fmt.Sprintf("Switching to profile: %s...", name)
	a.AddToast(fmt.Sprintf("🔄 Switching to profile %q...", name), ToastInfo)
	a.Loading = true

	a.Identity.Profile = name
	a.Log.Infof("Activating profile %s, rebuilding client", name)

	factory, identity, ctx := a.Factory, a.Identity, a.ctx
	a.spawn(func() {
		client, err := factory(ctx, identity)
		if err != nil {
			a.notify <- profileActivateFailed{err: err}
			return
		}
		a.notify <- profileActivated{client: client, profile: name}
	})
}
