package service

import (
	"context"
	"fmt"
	"time"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/core/metrics"
	"dispatch-control/internal/features/execution/domain"
	"dispatch-control/internal/features/execution/ports"
)

// Pacing sets optional gaps between simulated lifecycle steps. The gaps
// exist only for human-observable demos; zero values run the simulation
// without waiting and carry no ordering semantics.
type Pacing struct {
	// StepGap is the pause after each canonical lifecycle step.
	StepGap time.Duration
	// DelayGap is the pause after a delay marker.
	DelayGap time.Duration
}

// Tracker drives shipments through the delivery lifecycle and answers
// status queries from the event log.
type Tracker struct {
	store   ports.EventStore
	clock   clock.Clock
	metrics *metrics.Recorder
	pacing  Pacing
}

// NewTracker creates a Tracker on top of the given event store.
func NewTracker(store ports.EventStore, clk clock.Clock, rec *metrics.Recorder, pacing Pacing) *Tracker {
	return &Tracker{
		store:   store,
		clock:   clk,
		metrics: rec,
		pacing:  pacing,
	}
}

// LogEvent appends one tracking event to the log and returns it.
func (t *Tracker) LogEvent(ctx context.Context, shipmentID string, status domain.Status, remarks string) (domain.TrackingEvent, error) {
	event := domain.TrackingEvent{
		ShipmentID: shipmentID,
		Status:     status,
		Timestamp:  t.clock.Now(),
		Remarks:    remarks,
	}

	if err := t.store.Append(ctx, event); err != nil {
		return domain.TrackingEvent{}, fmt.Errorf("failed to append tracking event: %w", err)
	}

	t.metrics.EventLogged(string(status))
	if status == domain.StatusDelivered {
		t.metrics.DeliveryCompleted()
	}

	return event, nil
}

type lifecycleStep struct {
	status  domain.Status
	remarks string
	marker  bool
}

// Simulate drives one shipment through the full canonical lifecycle,
// interleaving the delay markers when the corresponding flag is set, and
// returns the ordered events it produced. A PACKING_DELAY marker is always
// logged strictly before PACKING, a DELIVERY_DELAY marker strictly before
// OUT_FOR_DELIVERY.
func (t *Tracker) Simulate(ctx context.Context, shipmentID string, packingDelay, deliveryDelay bool) ([]domain.TrackingEvent, error) {
	steps := make([]lifecycleStep, 0, 8)

	steps = append(steps, lifecycleStep{domain.StatusCreated, "Order confirmed, preparing for packing", false})
	if packingDelay {
		steps = append(steps, lifecycleStep{domain.StatusPackingDelay, "Packing exceeded expected time - warehouse congestion", true})
	}
	steps = append(steps,
		lifecycleStep{domain.StatusPacking, "Item being packed", false},
		lifecycleStep{domain.StatusDispatched, "Shipment handed to courier", false},
		lifecycleStep{domain.StatusInTransit, "En route to destination city", false},
	)
	if deliveryDelay {
		steps = append(steps, lifecycleStep{domain.StatusDeliveryDelay, "Delivery delayed - traffic congestion", true})
	}
	steps = append(steps,
		lifecycleStep{domain.StatusOutForDelivery, "Out for delivery by local courier", false},
		lifecycleStep{domain.StatusDelivered, "Package delivered successfully", false},
	)

	events := make([]domain.TrackingEvent, 0, len(steps))
	for i, step := range steps {
		event, err := t.LogEvent(ctx, shipmentID, step.status, step.remarks)
		if err != nil {
			return nil, fmt.Errorf("simulation aborted at %s: %w", step.status, err)
		}
		events = append(events, event)

		if i == len(steps)-1 {
			break
		}

		gap := t.pacing.StepGap
		if step.marker {
			gap = t.pacing.DelayGap
		}
		if gap > 0 {
			t.clock.Sleep(gap)
		}
	}

	return events, nil
}

// CurrentStatus returns the status of the latest logged event for the
// shipment, or StatusNotFound when no events exist.
func (t *Tracker) CurrentStatus(ctx context.Context, shipmentID string) (domain.Status, error) {
	events, err := t.store.ReadByShipment(ctx, shipmentID)
	if err != nil {
		return "", fmt.Errorf("failed to read tracking events: %w", err)
	}

	if len(events) == 0 {
		return domain.StatusNotFound, nil
	}

	return events[len(events)-1].Status, nil
}

// History returns all events for one shipment in insertion order, or the
// entire log when shipmentID is empty.
func (t *Tracker) History(ctx context.Context, shipmentID string) ([]domain.TrackingEvent, error) {
	var (
		events []domain.TrackingEvent
		err    error
	)

	if shipmentID == "" {
		events, err = t.store.ReadAll(ctx)
	} else {
		events, err = t.store.ReadByShipment(ctx, shipmentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tracking events: %w", err)
	}

	return events, nil
}
