package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dispatch-control/internal/features/override/domain"

	"github.com/redis/go-redis/v9"
)

const overrideLogKey = "overrides:log"

// maxUnlockRetries bounds the optimistic retries of an unlock rewrite.
const maxUnlockRetries = 3

// RedisStore implements ports.OverrideStore on a single Redis list. RPUSH
// makes appends atomic under concurrent writers; LRANGE returns rows in
// insertion order. A missing key reads as an empty log.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore on the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

// Append implements ports.OverrideStore.
func (s *RedisStore) Append(ctx context.Context, record domain.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal override record: %w", err)
	}

	if err := s.client.RPush(ctx, overrideLogKey, data).Err(); err != nil {
		return fmt.Errorf("failed to append override record: %w", err)
	}

	return nil
}

// ReadAll implements ports.OverrideStore.
func (s *RedisStore) ReadAll(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.client.LRange(ctx, overrideLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read override log: %w", err)
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		var record domain.Record
		if err := json.Unmarshal([]byte(row), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal override record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// ReadByShipment implements ports.OverrideStore.
func (s *RedisStore) ReadByShipment(ctx context.Context, shipmentID string) ([]domain.Record, error) {
	all, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0)
	for _, record := range all {
		if record.ShipmentID == shipmentID {
			records = append(records, record)
		}
	}

	return records, nil
}

// DeleteByShipment implements ports.OverrideStore. Removing rows from the
// middle of a list has to rewrite it, so the rewrite runs under WATCH and
// retries when a concurrent append changes the key first.
func (s *RedisStore) DeleteByShipment(ctx context.Context, shipmentID string) (int, error) {
	removed := 0

	rewrite := func(tx *redis.Tx) error {
		rows, err := tx.LRange(ctx, overrideLogKey, 0, -1).Result()
		if err != nil {
			return err
		}

		kept := make([]interface{}, 0, len(rows))
		removed = 0
		for _, row := range rows {
			var record domain.Record
			if err := json.Unmarshal([]byte(row), &record); err != nil {
				return fmt.Errorf("failed to unmarshal override record: %w", err)
			}
			if record.ShipmentID == shipmentID {
				removed++
				continue
			}
			kept = append(kept, row)
		}

		if removed == 0 {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, overrideLogKey)
			if len(kept) > 0 {
				pipe.RPush(ctx, overrideLogKey, kept...)
			}
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUnlockRetries; attempt++ {
		err := s.client.Watch(ctx, rewrite, overrideLogKey)
		if err == nil {
			return removed, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return 0, fmt.Errorf("failed to rewrite override log: %w", err)
	}

	return 0, fmt.Errorf("failed to rewrite override log: %w", redis.TxFailedErr)
}
