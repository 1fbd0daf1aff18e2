package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/example/plantops/internal/core/progress"
	"github.com/example/plantops/internal/ports/secondary"
)

const keyPrefix = "progress/"

// ProgressCache implements secondary.ProgressCache over BadgerDB.
// Keys are "progress/<day>/<equipment>" and expire after ttl.
type ProgressCache struct {
	db   *badger.DB
	ttl  time.Duration
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

var _ secondary.ProgressCache = (*ProgressCache)(nil)

// NewProgressCache opens the store described by cfg. A non-positive ttl
// uses progress.ValidityWindow.
func NewProgressCache(cfg Config, ttl time.Duration) (*ProgressCache, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = progress.ValidityWindow
	}

	c := &ProgressCache{db: db, ttl: ttl}
	if cfg.GCInterval > 0 && !cfg.InMemory {
		c.stop = make(chan struct{})
		c.done = make(chan struct{})
		go gcLoop(db, cfg.GCInterval, cfg.GCDiscardRatio, cfg.Logger, c.stop, c.done)
	}
	return c, nil
}

// Close stops garbage collection and closes the store. Safe to call twice.
func (c *ProgressCache) Close() error {
	var err error
	c.once.Do(func() {
		if c.stop != nil {
			close(c.stop)
			<-c.done
		}
		err = c.db.Close()
	})
	return err
}

func entryKey(equipmentID, day string) []byte {
	return []byte(keyPrefix + day + "/" + equipmentID)
}

// Get returns the saved entry, or nil when there is none.
func (c *ProgressCache) Get(ctx context.Context, equipmentID, day string) (*progress.Entry, error) {
	var entry *progress.Entry
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entryKey(equipmentID, day))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var e progress.Entry
			if err := json.Unmarshal(val, &e); err != nil {
				return fmt.Errorf("decode progress %s/%s: %w", day, equipmentID, err)
			}
			entry = &e
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}
	return entry, nil
}

// Set overwrites the entry for its equipment and day.
func (c *ProgressCache) Set(ctx context.Context, entry progress.Entry) error {
	val, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(entryKey(entry.EquipmentID, entry.Day), val).WithTTL(c.ttl)
		return txn.SetEntry(e)
	})
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Delete removes the entry. Deleting a missing entry is not an error.
func (c *ProgressCache) Delete(ctx context.Context, equipmentID, day string) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(entryKey(equipmentID, day))
	})
	if err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}
	return nil
}

// ListDay returns every entry saved for day, ordered by equipment ID.
func (c *ProgressCache) ListDay(ctx context.Context, day string) ([]progress.Entry, error) {
	prefix := []byte(keyPrefix + day + "/")

	var entries []progress.Entry
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				var e progress.Entry
				if err := json.Unmarshal(val, &e); err != nil {
					return fmt.Errorf("decode progress %s: %w", it.Item().Key(), err)
				}
				entries = append(entries, e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return entries, nil
}
