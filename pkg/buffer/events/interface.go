package events

import "context"

// Sink accepts an event for immediate delivery. Submit returns the identifier
// assigned to the delivered event and ok=true, or ok=false when the event
// could not be delivered. A false result is not an error: the caller decides
// whether to retry, drop, or keep the event.
//
// In a telemetry client the sink is the transport/hub layer; here it is an
// injected collaborator so the cache engine can be driven deterministically.
type Sink interface {
	Submit(ctx context.Context, event Event) (id string, ok bool)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, event Event) (string, bool)

func (f SinkFunc) Submit(ctx context.Context, event Event) (string, bool) {
	return f(ctx, event)
}
