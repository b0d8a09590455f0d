package adapters

import (
	"context"
	"sync"

	"dispatch-control/internal/features/execution/domain"
)

// MemoryStore implements ports.EventStore in process memory. Appends are
// atomic under a mutex; reads return copies so callers can never mutate
// the log.
type MemoryStore struct {
	mu     sync.RWMutex
	events []domain.TrackingEvent
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements ports.EventStore.
func (s *MemoryStore) Append(ctx context.Context, event domain.TrackingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	return nil
}

// ReadAll implements ports.EventStore.
func (s *MemoryStore) ReadAll(ctx context.Context) ([]domain.TrackingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.TrackingEvent, len(s.events))
	copy(out, s.events)
	return out, nil
}

// ReadByShipment implements ports.EventStore.
func (s *MemoryStore) ReadByShipment(ctx context.Context, shipmentID string) ([]domain.TrackingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.TrackingEvent, 0)
	for _, event := range s.events {
		if event.ShipmentID == shipmentID {
			out = append(out, event)
		}
	}
	return out, nil
}
