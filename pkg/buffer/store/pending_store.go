package store

import (
	"encoding/json"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/garunski/telemetry-buffer/pkg/buffer/database"
	apperrors "github.com/garunski/telemetry-buffer/pkg/buffer/errors"
	"github.com/garunski/telemetry-buffer/pkg/buffer/events"
)

const pendingPrefix = "pending/"

type PendingStore struct {
	db     *database.DB
	logger logr.Logger
}

func NewPendingStore(db *database.DB, logger logr.Logger) *PendingStore {
	return &PendingStore{
		db:     db,
		logger: logger,
	}
}

func (s *PendingStore) Put(key string, event events.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return apperrors.WrapStoreWrite(err, fmt.Sprintf("failed to marshal event for %s", key))
	}

	if err := s.db.Set(pendingPrefix+key, data); err != nil {
		return fmt.Errorf("failed to store event: %w", err)
	}

	return nil
}

func (s *PendingStore) Remove(key string) error {
	return s.db.Delete(pendingPrefix + key)
}

func (s *PendingStore) Iterate(visit func(key string, event events.Event) error) error {
	allItems, err := s.db.List(pendingPrefix)
	if err != nil {
		return fmt.Errorf("failed to list pending events: %w", err)
	}

	for dbKey, data := range allItems {
		key := dbKey[len(pendingPrefix):]

		var event events.Event
		if err := json.Unmarshal(data, &event); err != nil {

			// An unreadable record is still visited so callers can evict it;
			// it decodes as the zero event and ranks oldest.
			s.logger.Error(err, "failed to unmarshal pending event", "key", key)
		}

		if err := visit(key, event); err != nil {
			return err
		}
	}

	return nil
}

func (s *PendingStore) Count() (int, error) {
	allItems, err := s.db.List(pendingPrefix)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending events: %w", err)
	}
	return len(allItems), nil
}

func (s *PendingStore) List() (map[string]events.Event, error) {
	result := make(map[string]events.Event)

	err := s.Iterate(func(key string, event events.Event) error {
		result[key] = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *PendingStore) Purge() error {
	allItems, err := s.db.List(pendingPrefix)
	if err != nil {
		return fmt.Errorf("failed to list pending events for purge: %w", err)
	}

	keys := make([]string, 0, len(allItems))
	for dbKey := range allItems {
		keys = append(keys, dbKey)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := s.db.BatchDelete(keys); err != nil {
		return fmt.Errorf("failed to purge pending events: %w", err)
	}

	s.logger.Info("Purged pending events", "count", len(keys))
	return nil
}
