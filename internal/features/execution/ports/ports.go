package ports

import (
	"context"

	"dispatch-control/internal/features/execution/domain"
)

// EventStore is the secondary port for the append-only tracking log.
// Append must be atomic: concurrent writers may interleave rows but never
// lose them. Readers observe per-shipment insertion order, and an empty or
// not-yet-created log reads as an empty slice, not an error.
type EventStore interface {
	Append(ctx context.Context, event domain.TrackingEvent) error
	ReadAll(ctx context.Context) ([]domain.TrackingEvent, error)
	ReadByShipment(ctx context.Context, shipmentID string) ([]domain.TrackingEvent, error)
}

// Notifier is the secondary port delivering alerts to an external channel.
type Notifier interface {
	Notify(ctx context.Context, alert domain.Alert) error
}
