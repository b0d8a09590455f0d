package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch-control/internal/features/execution/domain"

	"github.com/redis/go-redis/v9"
)

const trackingLogKey = "execution:tracking_log"

// RedisStore implements ports.EventStore on a single Redis list. RPUSH
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

// Append implements ports.EventStore.
func (s *RedisStore) Append(ctx context.Context, event domain.TrackingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking event: %w", err)
	}

	if err := s.client.RPush(ctx, trackingLogKey, data).Err(); err != nil {
		return fmt.Errorf("failed to append tracking event: %w", err)
	}

	return nil
}

// ReadAll implements ports.EventStore.
func (s *RedisStore) ReadAll(ctx context.Context) ([]domain.TrackingEvent, error) {
	rows, err := s.client.LRange(ctx, trackingLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read tracking log: %w", err)
	}

	events := make([]domain.TrackingEvent, 0, len(rows))
	for _, row := range rows {
		var event domain.TrackingEvent
		if err := json.Unmarshal([]byte(row), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tracking event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

// ReadByShipment implements ports.EventStore.
func (s *RedisStore) ReadByShipment(ctx context.Context, shipmentID string) ([]domain.TrackingEvent, error) {
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
