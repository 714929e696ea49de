package buffer

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/garunski/telemetry-buffer/pkg/buffer/events"
)

// CacheEvent writes the event to the store under a fresh random key and
// returns the key. Keys carry no information about the event; uniqueness is
// by construction.
func (e *Engine) CacheEvent(event events.Event) (string, error) {
	key := uuid.New().String()
	if err := e.store.Put(key, event); err != nil {
		return "", err
	}
	return key, nil
}

// EnforceMaxEvents trims the cache down to the retention limit. It scans the
// whole store, ranks entries most-recent-first, and removes everything past
// maxStoredEvents. Removals run concurrently and are best effort: a failed
// removal is logged and the stragglers are picked up by the next pass.
//
// The limit is small (default 30), so the store never holds more than a few
// dozen records and the full scan stays cheap.
func (e *Engine) EnforceMaxEvents() error {
	type entry struct {
		key     string
		sortKey int64
	}

	var entries []entry
	err := e.store.Iterate(func(key string, event events.Event) error {
		entries = append(entries, entry{key: key, sortKey: event.SortKey()})
		return nil
	})
	if err != nil {
		return err
	}

	if len(entries) <= e.maxStoredEvents {
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortKey > entries[j].sortKey
	})

	evicted := entries[e.maxStoredEvents:]

	var wg sync.WaitGroup
	for _, en := range evicted {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			if err := e.store.Remove(key); err != nil {
				e.logger.V(1).Info("failed to evict cached event", "key", key, "error", err)
			}
		}(en.key)
	}
	wg.Wait()

	return nil
}
