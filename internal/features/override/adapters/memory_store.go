package adapters

import (
	"context"
	"sync"

	"dispatch-control/internal/features/override/domain"
)

// MemoryStore implements ports.OverrideStore in process memory. Appends
// are atomic under a mutex; reads return copies so callers can never
// mutate the log.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.Record
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements ports.OverrideStore.
func (s *MemoryStore) Append(ctx context.Context, record domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	return nil
}

// ReadAll implements ports.OverrideStore.
func (s *MemoryStore) ReadAll(ctx context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// ReadByShipment implements ports.OverrideStore.
func (s *MemoryStore) ReadByShipment(ctx context.Context, shipmentID string) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Record, 0)
	for _, record := range s.records {
		if record.ShipmentID == shipmentID {
			out = append(out, record)
		}
	}
	return out, nil
}

// DeleteByShipment implements ports.OverrideStore.
func (s *MemoryStore) DeleteByShipment(ctx context.Context, shipmentID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.Record, 0, len(s.records))
	removed := 0
	for _, record := range s.records {
		if record.ShipmentID == shipmentID {
			removed++
			continue
		}
		kept = append(kept, record)
	}

	s.records = kept
	return removed, nil
}
