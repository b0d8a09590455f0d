package adapters

import (
	"context"
	"database/sql"
	"fmt"

	"dispatch-control/internal/features/execution/domain"
)

// PostgresStore implements ports.EventStore on a Postgres table. The
// BIGSERIAL primary key gives every append a global insertion position,
// so reads ordered by id preserve per-shipment event order.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgresStore on the given database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// EnsureSchema creates the tracking_events table and its shipment index
// when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tracking_events (
			id BIGSERIAL PRIMARY KEY,
			shipment_id TEXT NOT NULL,
			status TEXT NOT NULL,
			occurred_at TIMESTAMPTZ NOT NULL,
			remarks TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tracking_events_shipment
			ON tracking_events (shipment_id, id)`,
	}

	for i, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: exec statement #%d: %w", i+1, err)
		}
	}

	return nil
}

// Append implements ports.EventStore.
func (s *PostgresStore) Append(ctx context.Context, event domain.TrackingEvent) error {
	query := `
	INSERT INTO tracking_events (shipment_id, status, occurred_at, remarks)
	VALUES ($1, $2, $3, $4);
	`
	if _, err := s.db.ExecContext(ctx, query, event.ShipmentID, string(event.Status), event.Timestamp, event.Remarks); err != nil {
		return fmt.Errorf("failed to append tracking event: %w", err)
	}

	return nil
}

// ReadAll implements ports.EventStore.
func (s *PostgresStore) ReadAll(ctx context.Context) ([]domain.TrackingEvent, error) {
	query := `
	SELECT shipment_id, status, occurred_at, remarks
	FROM tracking_events
	ORDER BY id;
	`
	return s.queryEvents(ctx, query)
}

// ReadByShipment implements ports.EventStore.
func (s *PostgresStore) ReadByShipment(ctx context.Context, shipmentID string) ([]domain.TrackingEvent, error) {
	query := `
	SELECT shipment_id, status, occurred_at, remarks
	FROM tracking_events
	WHERE shipment_id = $1
	ORDER BY id;
	`
	return s.queryEvents(ctx, query, shipmentID)
}

func (s *PostgresStore) queryEvents(ctx context.Context, query string, args ...any) ([]domain.TrackingEvent, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracking events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.TrackingEvent, 0, 64)
	for rows.Next() {
		var (
			event  domain.TrackingEvent
			status string
		)
		if err := rows.Scan(&event.ShipmentID, &status, &event.Timestamp, &event.Remarks); err != nil {
			return nil, fmt.Errorf("failed to scan tracking event: %w", err)
		}
		event.Status = domain.Status(status)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracking events: %w", err)
	}

	return events, nil
}
