package app

import (
	"fmt"
	"strings"

	"github.com/SiRune-Etch/aws-cloud-controller/aws"
)

// Notification payloads sent from background tasks. Each is applied on the
// event-loop goroutine during DrainNotifications; workers never touch App
// state directly.

type instancesLoaded struct {
	instances []aws.Instance
	err       error
}

type functionsLoaded struct {
	functions []aws.Function
	err       error
}

type instanceOp int

const (
	opStart instanceOp = iota
	opStop
	opTerminate
)

func (o instanceOp) String() string {
	switch o {
	case opStart:
		return "start"
	case opStop:
		return "stop"
	default:
		return "terminate"
	}
}

func (o instanceOp) verb() string {
	switch o {
	case opStart:
		return "Started"
	case opStop:
		return "Stopped"
	default:
		return "Terminated"
	}
}

type actionDone struct {
	op   instanceOp
	id   string
	name string
	err  error
}

type ssoLoginDone struct {
	profile string
	output  string
	err     error
}

type profileActivated struct {
	client  CloudClient
	profile string
}

type profileActivateFailed struct {
	err error
}

// DrainNotifications applies every pending background completion without
// blocking. Runs first in the tick so alert and refresh checks see fresh
// state.
func (a *App) DrainNotifications() {
	for {
		select {
		case n := <-a.notify:
			a.applyNotification(n)
		default:
			return
		}
	}
}

func (a *App) applyNotification(n any) {
	switch n := n.(type) {
	case instancesLoaded:
		a.applyInstancesLoaded(n)
	case functionsLoaded:
		a.applyFunctionsLoaded(n)
	case actionDone:
		a.applyActionDone(n)
	case ssoLoginDone:
		a.applySsoLoginDone(n)
	case profileActivated:
		a.Client = n.client
		a.Configured = true
		a.ActiveProfile = n.profile
		a.Loading = false
		a.closeDialog()
		a.AddToast(fmt.Sprintf("✓ Switched to profile: %s", n.profile), ToastSuccess)
		a.Log.Successf("Activated profile: %s", n.profile)
		a.Refresh()
	case profileActivateFailed:
		a.Loading = false
		a.StatusMessage = fmt.Sprintf("Failed to switch profile: %v", n.err)
		a.AddToast(fmt.Sprintf("✗ Profile switch failed: %v", n.err), ToastError)
		a.Log.Errorf("Failed to activate profile: %v", n.err)
	}
}

func (a *App) applySsoLoginDone(n ssoLoginDone) {
	if n.err != nil {
		if strings.Contains(n.output, "Missing the following required SSO configuration") {
			a.StatusMessage = "Profile has no SSO configuration"
			a.AddToast("✗ Profile is not configured for SSO login", ToastError)
			a.Log.Errorf("SSO login failed: profile %q has no SSO configuration", n.profile)
			return
		}
		a.StatusMessage = "SSO login failed"
		a.AddToast("✗ SSO login failed", ToastError)
		a.Log.Errorf("SSO login failed: %v: %s", n.err, strings.TrimSpace(n.output))
		return
	}
	a.Log.Successf("SSO login completed for profile %q", n.profile)
	a.AddToast("✓ SSO login successful", ToastSuccess)

	// The old client was built before the login; activating rebuilds it
	// under the fresh credentials.
	profile := n.profile
	if profile == "" {
		profile = "default"
	}
	a.ActivateProfile(profile)
}

// sessionExpiredMarkers are matched case-insensitively against provider
// error text to detect credential expiry.
var sessionExpiredMarkers = []string{
	"expiredtoken",
	"expired token",
	"token is expired",
	"security token",
	"invalidtoken",
	"invalid token",
	"credentials have expired",
	"requestexpired",
	"request has expired",
	"authfailure",
}

// IsSessionExpired reports whether an error message looks like credential
// expiry rather than an ordinary provider failure.
func IsSessionExpired(msg string) bool {
	lower := strings.ToLower(msg)
	for _, marker := range sessionExpiredMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
