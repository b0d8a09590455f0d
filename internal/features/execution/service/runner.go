package service

import (
	"context"
	"fmt"
	"math/rand"

	"dispatch-control/internal/features/execution/domain"
)

// DefaultFailureReason is recorded when a failed attempt names no reason.
const DefaultFailureReason = "Customer unavailable"

// Runner orchestrates complete execution flows over the tracker and
// alerter.
type Runner struct {
	tracker *Tracker
	alerter *Alerter
}

// NewRunner creates a Runner.
func NewRunner(tracker *Tracker, alerter *Alerter) *Runner {
	return &Runner{
		tracker: tracker,
		alerter: alerter,
	}
}

// RunExecutionFlow simulates one delivery, checks both delay predicates,
// fires the matching alerts, and summarizes the run. The execution counts
// as completed only when the final status is DELIVERED.
func (r *Runner) RunExecutionFlow(ctx context.Context, shipmentID string, packingDelay, deliveryDelay bool) (domain.Summary, error) {
	events, err := r.tracker.Simulate(ctx, shipmentID, packingDelay, deliveryDelay)
	if err != nil {
		return domain.Summary{}, err
	}

	alerts := make([]domain.Alert, 0, 2)

	late, err := r.alerter.LatePacking(ctx, shipmentID)
	if err != nil {
		return domain.Summary{}, err
	}
	if late {
		alerts = append(alerts, r.alerter.Trigger(ctx, shipmentID, domain.IssuePackingDelay))
	}

	delayed, err := r.alerter.DeliveryDelayed(ctx, shipmentID)
	if err != nil {
		return domain.Summary{}, err
	}
	if delayed {
		alerts = append(alerts, r.alerter.Trigger(ctx, shipmentID, domain.IssueDeliveryDelay))
	}

	finalStatus, err := r.tracker.CurrentStatus(ctx, shipmentID)
	if err != nil {
		return domain.Summary{}, err
	}

	return domain.Summary{
		ShipmentID:         shipmentID,
		TotalEvents:        len(events),
		FinalStatus:        finalStatus,
		AlertsTriggered:    len(alerts),
		Alerts:             alerts,
		ExecutionCompleted: finalStatus == domain.StatusDelivered,
	}, nil
}

// SimulateFailedAttempt logs a failed delivery attempt off the main
// lifecycle, alerts the customer, and schedules a re-attempt. Replaying
// the delivery itself is left to an external trigger.
func (r *Runner) SimulateFailedAttempt(ctx context.Context, shipmentID, reason string) (domain.Alert, error) {
	if reason == "" {
		reason = DefaultFailureReason
	}

	if _, err := r.tracker.LogEvent(ctx, shipmentID, domain.StatusFailedAttempt, reason); err != nil {
		return domain.Alert{}, err
	}

	alert := r.alerter.Trigger(ctx, shipmentID, domain.IssueFailedAttempt)

	if _, err := r.tracker.LogEvent(ctx, shipmentID, domain.StatusReAttemptScheduled, "Delivery will be re-attempted"); err != nil {
		return domain.Alert{}, err
	}

	return alert, nil
}

// BulkSimulate runs complete execution flows for a batch of generated
// shipments, drawing each delay flag from rng with the given probability.
// Shipments run strictly sequentially so their event sequences never
// interleave; summaries are returned in shipment order.
func (r *Runner) BulkSimulate(ctx context.Context, count int, delayProbability float64, rng *rand.Rand) ([]domain.Summary, error) {
	summaries := make([]domain.Summary, 0, count)

	for i := 0; i < count; i++ {
		shipmentID := fmt.Sprintf("SHP_EXEC_%03d", i)

		packingDelay := rng.Float64() < delayProbability
		deliveryDelay := rng.Float64() < delayProbability

		summary, err := r.RunExecutionFlow(ctx, shipmentID, packingDelay, deliveryDelay)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
