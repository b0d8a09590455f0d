package adapters

import (
	"context"

	"dispatch-control/internal/core/logger"
	"dispatch-control/internal/features/execution/domain"

	"go.uber.org/zap"
)

// LogNotifier implements ports.Notifier through the application log. It
// backs the console notification channel and never fails.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify implements ports.Notifier.
func (LogNotifier) Notify(ctx context.Context, alert domain.Alert) error {
	fields := []zap.Field{
		zap.String("alert_id", alert.AlertID),
		zap.String("shipment_id", alert.ShipmentID),
		zap.String("issue_type", string(alert.IssueType)),
		zap.String("message", alert.Message),
	}

	if alert.OpsNotified {
		logger.Get().Warn("Ops alert raised", fields...)
	} else {
		logger.Get().Info("Customer alert raised", fields...)
	}

	return nil
}
