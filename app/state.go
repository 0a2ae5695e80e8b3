// Package app owns all mutable dashboard state and the event-driven state
// machine that drives it. One goroutine applies events; background work
// reports back through a single notification channel drained each tick.
package app

import (
	"context"
	"time"

	"github.com/SiRune-Etch/aws-cloud-controller/aws"
	"github.com/SiRune-Etch/aws-cloud-controller/logs"
	"github.com/SiRune-Etch/aws-cloud-controller/settings"
	"github.com/SiRune-Etch/aws-cloud-controller/sound"
)

// CloudClient is the provider surface the state machine consumes. Errors
// must carry provider detail verbatim; session expiry is detected by
// substring classification of the error text.
type CloudClient interface {
	ListInstances(ctx context.Context) ([]aws.Instance, error)
	StartInstance(ctx context.Context, id string) error
	StopInstance(ctx context.Context, id string) error
	TerminateInstance(ctx context.Context, id string) error
	ListFunctions(ctx context.Context) ([]aws.Function, error)
}

// ClientFactory builds a client for an identity. Used when switching
// profiles so the new credentials are injected explicitly rather than via
// process environment.
type ClientFactory func(ctx context.Context, id aws.Identity) (CloudClient, error)

// SettingsStore persists user settings.
type SettingsStore interface {
	Load() (settings.Settings, error)
	Save(settings.Settings) error
}

// Screen is the active tab.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenInstances
	ScreenFunctions
	ScreenAbout
	ScreenLogs
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenInstances:
		return "Instances"
	case ScreenFunctions:
		return "Functions"
	case ScreenAbout:
		return "About"
	case ScreenLogs:
		return "Logs"
	default:
		return "Unknown"
	}
}

// DialogKind identifies the open modal. At most one dialog is open at a
// time; while one is open it captures all input.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogHelp
	DialogSetup
	DialogSettings
	DialogSessionExpired
	DialogConfirmTerminate
	DialogScheduleAutoStop
	DialogAlert
	DialogConfigureProvider
	DialogChangelog
)

// Dialog is the current modal plus the minimal payload it needs.
// InstanceID is set for ConfirmTerminate and ScheduleAutoStop, Message for
// Alert.
type Dialog struct {
	Kind       DialogKind
	InstanceID string
	Message    string
}

// ToastKind is a toast's severity.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
	ToastInfo
)

// ToastTTL is how long a toast stays visible.
const ToastTTL = 5 * time.Second

// Toast is a transient notification overlaid on the UI.
type Toast struct {
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
}

// Schedule is an advisory auto-stop entry for an instance. At most one per
// instance ID; nothing in this core executes the stop when the time
// arrives — entries drive display and alert suppression only.
type Schedule struct {
	InstanceID string
	StopAt     time.Time
}

// boostInterval is the fast polling interval used after a state-changing
// action until all instances are stable again.
const boostInterval = 5 * time.Second

// alertCheckInterval throttles how often the long-running check walks the
// instance list.
const alertCheckInterval = 30 * time.Second

// App is the root application state. All mutation happens on the event-loop
// goroutine; there is no locking because there is no concurrent mutation.
type App struct {
	Client     CloudClient
	Factory    ClientFactory
	Identity   aws.Identity
	Configured bool

	ShouldQuit    bool
	Screen        Screen
	StatusMessage string
	Loading       bool
	ScrollOffset  int

	Instances        []aws.Instance
	InstanceSelected int
	Schedules        []Schedule

	Functions        []aws.Function
	FunctionSelected int

	Dialog       Dialog
	DialogScroll int

	PendingAlerts  []string
	lastAlertCheck time.Time

	LastRefresh      time.Time
	RefreshInterval  time.Duration
	BoostUntilStable bool

	Toasts []Toast

	Width, Height int

	Settings      settings.Settings
	SettingsField settings.Field
	Draft         *settings.Settings
	Store         SettingsStore

	Log *logs.Buffer

	Profiles      []string
	ProfileIndex  int
	ActiveProfile string

	ctx       context.Context
	notify    chan any
	spawn     func(func())
	playSound func()
	now       func() time.Time
}

// Options configures New.
type Options struct {
	Client     CloudClient
	Factory    ClientFactory
	Store      SettingsStore
	Log        *logs.Buffer
	Profiles   []string
	Identity   aws.Identity
	Configured bool
}

// New builds the initial application state: settings loaded (or defaulted
// with a warning), profile selection resolved, and the Setup dialog shown
// when no credentials are configured.
func New(opts Options) *App {
	a := &App{
		Client:     opts.Client,
		Factory:    opts.Factory,
		Identity:   opts.Identity,
		Configured: opts.Configured,
		Store:      opts.Store,
		Log:        opts.Log,
		Profiles:   opts.Profiles,
		Width:      80,
		Height:     24,
		ctx:        context.Background(),
		notify:     make(chan any, 64),
		spawn:      func(f func()) { go f() },
		playSound:  sound.Bell,
		now:        time.Now,
	}
	if a.Log == nil {
		a.Log = logs.NewBuffer()
	}
	a.Log.Infof("Application started")

	s, err := opts.Store.Load()
	if err != nil {
		a.Log.Warnf("Failed to load settings, using defaults: %v", err)
		s = settings.Default()
	} else {
		a.Log.Infof("Settings loaded successfully")
	}
	a.Settings = s
	a.RefreshInterval = s.RefreshInterval()

	a.ActiveProfile = opts.Identity.Profile
	if a.ActiveProfile == "" {
		a.ActiveProfile = "default"
	}
	for i, p := range a.Profiles {
		if p == opts.Identity.Profile {
			a.ProfileIndex = i
			break
		}
	}

	if a.Configured {
		a.StatusMessage = "Ready"
		a.Log.Infof("AWS credentials detected")
	} else {
		a.StatusMessage = "AWS credentials not configured"
		a.Log.Warnf("AWS credentials not configured")
		a.Dialog = Dialog{Kind: DialogSetup}
	}
	return a
}

// AddToast appends a transient notification.
func (a *App) AddToast(message string, kind ToastKind) {
	a.Toasts = append(a.Toasts, Toast{Message: message, Kind: kind, CreatedAt: a.now()})
}

// purgeToasts drops toasts older than the TTL.
func (a *App) purgeToasts() {
	now := a.now()
	kept := a.Toasts[:0]
	for _, t := range a.Toasts {
		if now.Sub(t.CreatedAt) < ToastTTL {
			kept = append(kept, t)
		}
	}
	a.Toasts = kept
}

// openDialog switches the modal and resets its scroll.
func (a *App) openDialog(d Dialog) {
	a.Dialog = d
	a.DialogScroll = 0
}

// closeDialog dismisses any open modal.
func (a *App) closeDialog() {
	a.Dialog = Dialog{Kind: DialogNone}
}

func (a *App) selectedInstance() (aws.Instance, bool) {
	if a.InstanceSelected < 0 || a.InstanceSelected >= len(a.Instances) {
		return aws.Instance{}, false
	}
	return a.Instances[a.InstanceSelected], true
}

func (a *App) instanceName(id string) string {
	for _, in := range a.Instances {
		if in.ID == id {
			return in.Name
		}
	}
	return id
}

func (a *App) hasSchedule(id string) bool {
	for _, s := range a.Schedules {
		if s.InstanceID == id {
			return true
		}
	}
	return false
}

// Tick runs the per-tick maintenance in the required order: drain async
// notifications, then alert checks, then the auto-refresh timer.
func (a *App) Tick() {
	a.DrainNotifications()
	a.CheckAlerts()
	a.CheckAutoRefresh()
}
