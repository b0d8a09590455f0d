package service

import (
	"context"
	"fmt"

	"dispatch-control/internal/features/execution/domain"
	"dispatch-control/internal/features/execution/ports"
)

// StatsService summarizes the tracking log for reporting.
type StatsService struct {
	store ports.EventStore
}

// NewStatsService creates a StatsService over the given event store.
func NewStatsService(store ports.EventStore) *StatsService {
	return &StatsService{
		store: store,
	}
}

// ExecutionStats aggregates the full tracking log. An empty log yields a
// zeroed Stats; only a failing store read is an error.
func (s *StatsService) ExecutionStats(ctx context.Context) (domain.Stats, error) {
	events, err := s.store.ReadAll(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to read tracking events: %w", err)
	}

	stats := domain.Stats{
		StatusDistribution: make(map[domain.Status]int),
	}

	shipments := make(map[string]struct{})
	delivered := make(map[string]struct{})

	for _, event := range events {
		stats.StatusDistribution[event.Status]++
		shipments[event.ShipmentID] = struct{}{}

		switch event.Status {
		case domain.StatusDelivered:
			delivered[event.ShipmentID] = struct{}{}
		case domain.StatusPackingDelay:
			stats.PackingDelays++
		case domain.StatusDeliveryDelay:
			stats.DeliveryDelays++
		}
	}

	stats.TotalShipments = len(shipments)
	stats.DeliveredCount = len(delivered)
	stats.TotalDelays = stats.PackingDelays + stats.DeliveryDelays
	if stats.TotalShipments > 0 {
		stats.DeliveryRate = float64(stats.DeliveredCount) / float64(stats.TotalShipments) * 100
	}

	return stats, nil
}
