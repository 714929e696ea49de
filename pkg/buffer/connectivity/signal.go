package connectivity

// State describes what the connectivity signal currently knows about the
// network. StateUnknown is deliberate: a signal that cannot determine
// connectivity must not be treated as offline.
type State int

const (
	StateUnknown State = iota
	StateOnline
	StateOffline
)

func (s State) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Signal exposes the current connectivity state and a subscription for
// offline-to-online transitions. Callbacks fire once per transition, not once
// per sample.
type Signal interface {
	// State reports the current connectivity state
	State() State

	// OnOnline registers a callback invoked each time the signal transitions
	// to online
	OnOnline(fn func())
}
