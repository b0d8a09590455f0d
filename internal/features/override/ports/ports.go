package ports

import (
	"context"

	"dispatch-control/internal/features/override/domain"
)

// OverrideStore is the secondary port for the override log. Appends are
// atomic and per-shipment insertion order is preserved; an empty log reads
// as an empty slice, not an error. DeleteByShipment backs the unlock
// operation and returns how many records it removed.
type OverrideStore interface {
	Append(ctx context.Context, record domain.Record) error
	ReadAll(ctx context.Context) ([]domain.Record, error)
	ReadByShipment(ctx context.Context, shipmentID string) ([]domain.Record, error)
	DeleteByShipment(ctx context.Context, shipmentID string) (int, error)
}
