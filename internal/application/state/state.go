package state

// State is the lifecycle state of a scene as seen by the runtime.
type State int

const (
	// Inactive scenes have never been initialized.
	Inactive State = iota
	// Initializing scenes have an Init call in flight.
	Initializing
	// Stopped scenes are initialized but not the active scene.
	Stopped
	// Running scenes are updated and drawn on every logical frame.
	Running
	// Failed scenes returned an error from Init and are never retried.
	Failed
)

// String returns the string representation of the scene state
func (s State) String() string {
	switch s {
	case Inactive:
		return "Inactive"
	case Initializing:
		return "Initializing"
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
