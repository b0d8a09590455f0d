package service

import (
	"strings"

	"dispatch-control/internal/features/gate/domain"
)

// CustomerMessage renders the customer-facing notification for an
// assessment. Messages name the real reason and tell the customer what
// happens next; customers forgive a delay, not silence.
func (g *Gate) CustomerMessage(shipmentID string, a domain.Assessment) string {
	base := "Update for Shipment " + shipmentID + ": "

	switch a.Decision {
	case domain.DecisionDelay:
		return base + "Your delivery may be delayed due to " + strings.Join(a.Reasons, ", ") +
			". We are adjusting the delivery window to ensure safe delivery. " +
			"You'll receive updated ETA shortly."
	case domain.DecisionReschedule:
		return base + "We need your confirmation due to " + strings.Join(a.Reasons, ", ") +
			". Please choose a new delivery time or provide additional details. " +
			"This helps us ensure successful delivery."
	}

	return base + "Your shipment is on track for dispatch. Expected delivery as scheduled."
}

// ShouldNotify reports whether a proactive customer message goes out.
// Dispatch runs silent, delays and reschedules always notify.
func (g *Gate) ShouldNotify(a domain.Assessment) bool {
	return a.Decision == domain.DecisionDelay || a.Decision == domain.DecisionReschedule
}

// RescheduleOptions lists the choices offered to a customer whose
// shipment was rescheduled.
func RescheduleOptions() []string {
	return []string{
		"Deliver tomorrow",
		"Deliver in evening slot (6-9 PM)",
		"Choose custom date",
		"Provide more address details",
	}
}
