package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch-control/internal/features/execution/domain"

	"github.com/dgraph-io/badger/v4"
)

const (
	badgerEventPrefix = "tracking:event:"
	badgerSeqKey      = "tracking:seq"
)

// BadgerStore implements ports.EventStore on an embedded Badger database.
// Events are keyed by a zero-padded monotonic sequence number, so the
// lexicographic key order badger iterates in is the insertion order.
type BadgerStore struct {
	db  *badger.DB
	seq *badger.Sequence
}

// NewBadgerStore creates a BadgerStore on the given database.
func NewBadgerStore(db *badger.DB) (*BadgerStore, error) {
	seq, err := db.GetSequence([]byte(badgerSeqKey), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to open event sequence: %w", err)
	}

	return &BadgerStore{
		db:  db,
		seq: seq,
	}, nil
}

// Close releases the event sequence. The database itself is owned and
// closed by the caller.
func (s *BadgerStore) Close() error {
	return s.seq.Release()
}

// Append implements ports.EventStore.
func (s *BadgerStore) Append(ctx context.Context, event domain.TrackingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking event: %w", err)
	}

	n, err := s.seq.Next()
	if err != nil {
		return fmt.Errorf("failed to advance event sequence: %w", err)
	}

	key := []byte(fmt.Sprintf("%s%020d", badgerEventPrefix, n))
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("failed to append tracking event: %w", err)
	}

	return nil
}

// ReadAll implements ports.EventStore.
func (s *BadgerStore) ReadAll(ctx context.Context) ([]domain.TrackingEvent, error) {
	events := make([]domain.TrackingEvent, 0, 64)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(badgerEventPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var event domain.TrackingEvent
				if err := json.Unmarshal(val, &event); err != nil {
					return fmt.Errorf("failed to unmarshal tracking event: %w", err)
				}
				events = append(events, event)
				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read tracking log: %w", err)
	}

	return events, nil
}

// ReadByShipment implements ports.EventStore.
func (s *BadgerStore) ReadByShipment(ctx context.Context, shipmentID string) ([]domain.TrackingEvent, error) {
	all, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.TrackingEvent, 0)
	for _, event := range all {
		if event.ShipmentID == shipmentID {
			events = append(events, event)
		}
	}

	return events, nil
}
