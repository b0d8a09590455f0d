package service

import (
	"context"
	"fmt"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/core/logger"
	"dispatch-control/internal/core/metrics"
	"dispatch-control/internal/features/execution/domain"
	"dispatch-control/internal/features/execution/ports"

	"go.uber.org/zap"
)

// Alerter detects delay conditions in the event log and raises alerts
// through the configured notification channels.
type Alerter struct {
	store     ports.EventStore
	clock     clock.Clock
	metrics   *metrics.Recorder
	notifiers []ports.Notifier
}

// NewAlerter creates an Alerter fanning out to the given notifiers.
func NewAlerter(store ports.EventStore, clk clock.Clock, rec *metrics.Recorder, notifiers ...ports.Notifier) *Alerter {
	return &Alerter{
		store:     store,
		clock:     clk,
		metrics:   rec,
		notifiers: notifiers,
	}
}

// LatePacking reports whether the shipment logged a PACKING_DELAY marker.
func (a *Alerter) LatePacking(ctx context.Context, shipmentID string) (bool, error) {
	return a.hasStatus(ctx, shipmentID, domain.StatusPackingDelay)
}

// DeliveryDelayed reports whether the shipment logged a DELIVERY_DELAY
// marker.
func (a *Alerter) DeliveryDelayed(ctx context.Context, shipmentID string) (bool, error) {
	return a.hasStatus(ctx, shipmentID, domain.StatusDeliveryDelay)
}

func (a *Alerter) hasStatus(ctx context.Context, shipmentID string, status domain.Status) (bool, error) {
	events, err := a.store.ReadByShipment(ctx, shipmentID)
	if err != nil {
		return false, fmt.Errorf("failed to read tracking events: %w", err)
	}

	for _, event := range events {
		if event.Status == status {
			return true, nil
		}
	}

	return false, nil
}

// Trigger builds the alert record for an issue and fans it out to every
// notifier. Notifier failures are logged and skipped; raising an alert
// never fails the execution flow.
func (a *Alerter) Trigger(ctx context.Context, shipmentID string, issue domain.IssueType) domain.Alert {
	alert := domain.NewAlert(shipmentID, issue, a.clock.Now())

	for _, notifier := range a.notifiers {
		if err := notifier.Notify(ctx, alert); err != nil {
			logger.Get().Warn("Failed to deliver execution alert",
				zap.String("shipment_id", shipmentID),
				zap.String("issue_type", string(issue)),
				zap.Error(err))
		}
	}

	a.metrics.AlertTriggered(string(issue))

	return alert
}
