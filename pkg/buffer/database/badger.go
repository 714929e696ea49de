package database

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-logr/logr"
	apperrors "github.com/garunski/telemetry-buffer/pkg/buffer/errors"
)

var ErrNotFound = errors.New("key not found")

type DB struct {
	db     *badger.DB
	logger logr.Logger
}

func NewDB(path string, logger logr.Logger) (*DB, error) {

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, apperrors.WrapStoreWrite(err, fmt.Sprintf("failed to create DB directory at %s", path))
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	// The cache holds tens of small event records, not gigabytes; shrink the
	// value log so an embedding client does not preallocate badger's 1GB default.
	opts.ValueLogFileSize = 16 << 20

	opts.NumMemtables = 2

	opts.NumLevelZeroTables = 2

	db, err := badger.Open(opts)
	if err != nil {
		return nil, apperrors.WrapStoreWrite(err, fmt.Sprintf("failed to open BadgerDB at %s", path))
	}

	return &DB{
		db:     db,
		logger: logger,
	}, nil
}

func (d *DB) Get(key string) ([]byte, error) {
	var value []byte
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			value = append([]byte{}, val...)
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("key not found: %s: %w", key, ErrNotFound)
	}

	if err != nil {
		return nil, apperrors.WrapStoreIterate(err, fmt.Sprintf("get %s", key))
	}

	return value, nil
}

func (d *DB) Set(key string, value []byte) error {
	err := d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return apperrors.WrapStoreWrite(err, fmt.Sprintf("set %s", key))
	}
	return nil
}

func (d *DB) Delete(key string) error {
	err := d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return apperrors.WrapStoreRemove(err, fmt.Sprintf("delete %s", key))
	}
	return nil
}

func (d *DB) List(prefix string) (map[string][]byte, error) {
	results := make(map[string][]byte)
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(val []byte) error {
				results[key] = append([]byte{}, val...)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.WrapStoreIterate(err, fmt.Sprintf("list %s", prefix))
	}
	return results, nil
}

func (d *DB) BatchDelete(keys []string) error {
	txn := d.db.NewTransaction(true)
	defer txn.Discard()

	for _, key := range keys {
		if err := txn.Delete([]byte(key)); err != nil {

			d.logger.V(1).Info("failed to delete key in batch", "key", key, "error", err)
		}
	}

	if err := txn.Commit(); err != nil {
		return apperrors.WrapStoreRemove(err, "batch delete commit")
	}

	return nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// NewTestDB creates a test database for testing purposes
func NewTestDB(t testing.TB) (*DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create test DB: %w", err)
	}
	testDB := &DB{db: db, logger: logr.Discard()}
	if t != nil {
		if cleanup, ok := t.(interface{ Cleanup(func()) }); ok {
			cleanup.Cleanup(func() { testDB.Close() })
		}
	}
	return testDB, nil
}
