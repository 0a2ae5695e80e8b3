package aws

import "time"

// Stable instance states. An instance in any other state is mid-transition
// and keeps boost refresh active.
const (
	StateRunning    = "running"
	StateStopped    = "stopped"
	StateTerminated = "terminated"
)

// Instance is an EC2 instance with the metadata the dashboard cares about.
// The full list is replaced wholesale on every successful refresh.
type Instance struct {
	ID         string
	Name       string // Name tag, falls back to the instance ID
	Type       string
	State      string
	PublicIP   string
	LaunchTime *time.Time
}

// Stable reports whether the instance has settled into a terminal or
// steady state (not pending/stopping/shutting-down).
func (i Instance) Stable() bool {
	switch i.State {
	case StateRunning, StateStopped, StateTerminated:
		return true
	}
	return false
}

// Function is a Lambda function summary.
type Function struct {
	Name         string
	Runtime      string
	MemoryMB     int32
	LastModified string
	Description  string
}

// Identity selects which credentials a client is built with. It is carried
// in application state and passed explicitly to NewClient, so switching
// profiles never mutates process-wide environment.
type Identity struct {
	Profile string // shared-config profile name; empty = default chain
	Region  string // region override; empty = default chain
}
