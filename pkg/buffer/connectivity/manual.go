package connectivity

import "sync"

// Manual is a Signal driven by the host application. Hosts that already have
// their own connectivity detection call Set with each observed state; the
// Manual signal derives the went-online transitions.
type Manual struct {
	mu        sync.Mutex
	state     State
	callbacks []func()
}

// NewManual creates a manual signal starting in the given state.
func NewManual(initial State) *Manual {
	return &Manual{state: initial}
}

func (m *Manual) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manual) OnOnline(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Set records a new state. Moving to StateOnline from any other state fires
// the registered callbacks; setting the same state twice fires nothing.
func (m *Manual) Set(state State) {
	m.mu.Lock()
	wentOnline := state == StateOnline && m.state != StateOnline
	m.state = state
	callbacks := m.callbacks
	m.mu.Unlock()

	if !wentOnline {
		return
	}
	for _, fn := range callbacks {
		fn()
	}
}
