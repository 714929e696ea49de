package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

const DefaultPollInterval = 30 * time.Second

// Probe reports whether the network is currently reachable. A probe is
// expected to be cheap; it runs once per poll interval.
type Probe func(ctx context.Context) bool

// Monitor is a Signal that derives connectivity by polling a Probe. Until the
// first probe completes the state is StateUnknown.
type Monitor struct {
	probe    Probe
	interval time.Duration
	logger   logr.Logger

	mu        sync.Mutex
	state     State
	callbacks []func()

	cancel context.CancelFunc
	done   chan struct{}
}

func NewMonitor(probe Probe, interval time.Duration, logger logr.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Monitor{
		probe:    probe,
		interval: interval,
		logger:   logger,
		state:    StateUnknown,
	}
}

func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) OnOnline(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Start begins polling. The first probe runs immediately so the signal leaves
// StateUnknown as soon as possible.
func (m *Monitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)

		m.sample(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sample(ctx)
			}
		}
	}()
}

func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *Monitor) sample(ctx context.Context) {
	next := StateOffline
	if m.probe(ctx) {
		next = StateOnline
	}

	m.mu.Lock()
	prev := m.state
	m.state = next
	callbacks := m.callbacks
	m.mu.Unlock()

	if prev == next {
		return
	}

	m.logger.Info("Connectivity changed", "from", prev.String(), "to", next.String())

	if next == StateOnline {
		for _, fn := range callbacks {
			fn()
		}
	}
}
