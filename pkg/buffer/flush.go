package buffer

import (
	"context"
	"sync"

	apperrors "github.com/garunski/telemetry-buffer/pkg/buffer/errors"
	"github.com/garunski/telemetry-buffer/pkg/buffer/events"
)

// SendEvents resubmits every cached event through the sink and removes the
// entries the sink accepted. Rejected events stay cached for the next online
// transition. With no sink bound the call logs a warning and leaves the cache
// untouched.
//
// Per-entry failures are isolated; only a failed store scan fails the call.
func (e *Engine) SendEvents(ctx context.Context) error {
	sink := e.currentSink()
	if sink == nil {
		e.logger.V(1).Info("no sink bound, keeping cached events", "error", apperrors.ErrSinkUnavailable)
		return nil
	}

	type entry struct {
		key   string
		event events.Event
	}

	var entries []entry
	err := e.store.Iterate(func(key string, event events.Event) error {
		entries = append(entries, entry{key: key, event: event})
		return nil
	})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, en := range entries {
		wg.Add(1)
		go func(key string, event events.Event) {
			defer wg.Done()

			id, ok := sink.Submit(ctx, event)
			if !ok {
				// not delivered; retried on the next transition
				return
			}

			if err := e.store.Remove(key); err != nil {
				e.logger.V(1).Info("failed to remove flushed event", "key", key, "id", id, "error", err)
			}
		}(en.key, en.event)
	}
	wg.Wait()

	return nil
}
