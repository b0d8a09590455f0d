package domain

import (
	"errors"
	"time"
)

// Decision is a dispatch authority decision. The automated pipeline
// proposes one; an operations manager may replace it. The engine is never
// the final authority.
type Decision string

const (
	// DecisionDispatch clears the shipment for delivery.
	DecisionDispatch Decision = "DISPATCH"
	// DecisionDelay holds the shipment at the hub.
	DecisionDelay Decision = "DELAY"
	// DecisionReschedule blocks dispatch until the customer responds.
	DecisionReschedule Decision = "RESCHEDULE"
)

var (
	ErrInvalidDecision    = errors.New("invalid override decision")
	ErrReasonNotInCatalog = errors.New("override reason not in catalog")
)

// reasonCatalog is the closed vocabulary of override reasons. Free-form
// text is rejected so the log stays analyzable by the learning loop.
var reasonCatalog = []string{
	"Manager experience",
	"Local knowledge",
	"Temporary road closure",
	"High priority customer",
	"Operational constraint",
	"Weather cleared manually",
}

// Reasons returns the accepted override reasons in catalog order.
func Reasons() []string {
	out := make([]string, len(reasonCatalog))
	copy(out, reasonCatalog)
	return out
}

// ValidReason reports whether the reason is in the catalog.
func ValidReason(reason string) bool {
	for _, r := range reasonCatalog {
		if r == reason {
			return true
		}
	}
	return false
}

// ParseDecision validates a raw decision string.
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionDispatch, DecisionDelay, DecisionReschedule:
		return Decision(s), nil
	}
	return "", ErrInvalidDecision
}

// Record is one append-only row in the override log. Records are never
// mutated; unlocking a shipment removes its rows entirely.
type Record struct {
	// ShipmentID is the shipment the override applies to.
	ShipmentID string `json:"shipment_id"`
	// AIDecision is the decision the pipeline proposed.
	AIDecision Decision `json:"ai_decision"`
	// OverrideDecision is the decision the manager imposed.
	OverrideDecision Decision `json:"override_decision"`
	// Reason is the catalog entry justifying the override.
	Reason string `json:"override_reason"`
	// Timestamp is the UTC instant the override was applied.
	Timestamp time.Time `json:"timestamp"`
	// ManualLock stops the pipeline from re-evaluating the shipment.
	ManualLock bool `json:"manual_lock"`
}

// OutcomeStatus classifies the result of an override attempt.
type OutcomeStatus string

const (
	// OutcomeOverridden means the manager's decision replaced the
	// pipeline's and the shipment is locked.
	OutcomeOverridden OutcomeStatus = "OVERRIDDEN"
	// OutcomeNoOverride means manager and pipeline agree; nothing is
	// logged and nothing is locked.
	OutcomeNoOverride OutcomeStatus = "NO_OVERRIDE"
)

// Result reports one override attempt.
type Result struct {
	// Status is OVERRIDDEN or NO_OVERRIDE.
	Status OutcomeStatus `json:"status"`
	// FinalDecision is the decision now in force.
	FinalDecision Decision `json:"final_decision"`
	// Locked reports whether the shipment now carries a manual lock.
	Locked bool `json:"locked"`
	// Message is the human-readable outcome.
	Message string `json:"message"`
}

// Stats summarizes the override log for the learning loop.
type Stats struct {
	// TotalOverrides counts logged override records.
	TotalOverrides int `json:"total_overrides"`
	// MostCommonReason is the modal catalog reason. Empty when the log is.
	MostCommonReason string `json:"most_common_reason,omitempty"`
	// ToDispatch counts overrides that forced a dispatch.
	ToDispatch int `json:"to_dispatch"`
	// ToDelay counts overrides that forced a delay.
	ToDelay int `json:"to_delay"`
	// ToReschedule counts overrides that forced a reschedule.
	ToReschedule int `json:"to_reschedule"`
	// ReasonDistribution counts records per catalog reason.
	ReasonDistribution map[string]int `json:"reason_distribution"`
}
