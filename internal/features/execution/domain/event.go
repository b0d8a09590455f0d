package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is one entry in a shipment's delivery lifecycle.
type Status string

// Canonical lifecycle statuses, in execution order.
const (
	StatusCreated        Status = "CREATED"
	StatusPacking        Status = "PACKING"
	StatusDispatched     Status = "DISPATCHED"
	StatusInTransit      Status = "IN_TRANSIT"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
)

// Delay markers and the failed-attempt branch. Markers interleave with the
// canonical sequence without altering it; the failed-attempt branch leaves
// the shipment suspended until an external trigger replays the delivery.
const (
	StatusPackingDelay       Status = "PACKING_DELAY"
	StatusDeliveryDelay      Status = "DELIVERY_DELAY"
	StatusFailedAttempt      Status = "FAILED_ATTEMPT"
	StatusReAttemptScheduled Status = "RE_ATTEMPT_SCHEDULED"
)

// StatusNotFound is the sentinel returned when a shipment has no events.
const StatusNotFound Status = "NOT_FOUND"

// TrackingEvent is one append-only row in the execution log. Events are
// never mutated or deleted; the latest row for a shipment is its current
// state.
type TrackingEvent struct {
	// ShipmentID is the shipment the event belongs to.
	ShipmentID string `json:"shipment_id"`
	// Status is the lifecycle status or delay marker recorded.
	Status Status `json:"status"`
	// Timestamp is the UTC instant the event was logged. Timestamps are
	// monotonically non-decreasing per shipment.
	Timestamp time.Time `json:"timestamp"`
	// Remarks carries free-form notes about the event.
	Remarks string `json:"remarks"`
}

// IssueType classifies an execution anomaly that raises an alert.
type IssueType string

const (
	IssuePackingDelay  IssueType = "PACKING_DELAY"
	IssueDeliveryDelay IssueType = "DELIVERY_DELAY"
	IssueFailedAttempt IssueType = "FAILED_ATTEMPT"
)

// Alert is a notification record raised for an execution issue. Alerts
// travel on a separate channel and are never written back into the
// tracking log.
type Alert struct {
	// AlertID uniquely identifies the alert.
	AlertID string `json:"alert_id"`
	// ShipmentID is the affected shipment.
	ShipmentID string `json:"shipment_id"`
	// IssueType classifies the anomaly.
	IssueType IssueType `json:"issue_type"`
	// Timestamp is the UTC instant the alert was raised.
	Timestamp time.Time `json:"timestamp"`
	// OpsNotified marks alerts routed to the operations channel.
	OpsNotified bool `json:"ops_notified"`
	// CustomerNotified marks alerts routed to the customer channel.
	CustomerNotified bool `json:"customer_notified"`
	// Message is the human-readable alert text.
	Message string `json:"message"`
}

// NewAlert builds the alert record for an issue. Packing delays page ops;
// delivery delays and failed attempts notify the customer.
func NewAlert(shipmentID string, issue IssueType, at time.Time) Alert {
	alert := Alert{
		AlertID:    uuid.NewString(),
		ShipmentID: shipmentID,
		IssueType:  issue,
		Timestamp:  at,
	}

	switch issue {
	case IssuePackingDelay:
		alert.OpsNotified = true
		alert.Message = "Packing delayed - warehouse congestion"
	case IssueDeliveryDelay:
		alert.CustomerNotified = true
		alert.Message = "Delivery delayed - traffic/weather conditions"
	case IssueFailedAttempt:
		alert.CustomerNotified = true
		alert.Message = "Delivery attempt failed - customer unavailable"
	}

	return alert
}

// Summary reports one complete execution flow.
type Summary struct {
	ShipmentID         string  `json:"shipment_id"`
	TotalEvents        int     `json:"total_events"`
	FinalStatus        Status  `json:"final_status"`
	AlertsTriggered    int     `json:"alerts_triggered"`
	Alerts             []Alert `json:"alerts"`
	ExecutionCompleted bool    `json:"execution_completed"`
}

// Stats aggregates the whole tracking log for reporting.
type Stats struct {
	// TotalShipments counts distinct shipment ids in the log.
	TotalShipments int `json:"total_shipments"`
	// DeliveredCount counts shipments with at least one DELIVERED event.
	DeliveredCount int `json:"delivered_count"`
	// DeliveryRate is DeliveredCount over TotalShipments as a percentage.
	DeliveryRate float64 `json:"delivery_rate"`
	// PackingDelays counts PACKING_DELAY marker events.
	PackingDelays int `json:"packing_delays"`
	// DeliveryDelays counts DELIVERY_DELAY marker events.
	DeliveryDelays int `json:"delivery_delays"`
	// TotalDelays is the sum of both delay counters.
	TotalDelays int `json:"total_delays"`
	// StatusDistribution counts events per status.
	StatusDistribution map[Status]int `json:"status_distribution"`
}
