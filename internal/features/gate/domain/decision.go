package domain

// Decision is the gate's verdict on whether a shipment may leave the hub.
type Decision string

const (
	// DecisionDispatch clears the shipment for normal delivery.
	DecisionDispatch Decision = "DISPATCH"
	// DecisionDelay holds the shipment at the hub with a buffered ETA.
	DecisionDelay Decision = "DELAY"
	// DecisionReschedule blocks dispatch until the customer confirms
	// address details or a new delivery time.
	DecisionReschedule Decision = "RESCHEDULE"
)

// Reason strings reported by the gate. One tripped signal is enough to
// stop a blind dispatch.
const (
	ReasonHighRisk      = "High delivery risk"
	ReasonSevereWeather = "Severe weather impact"
	ReasonLowAddress    = "Low address confidence"
)

// Signals carries the pre-dispatch intelligence scores, each on a 0-100
// scale.
type Signals struct {
	RiskScore         float64 `json:"risk_score"`
	WeatherImpact     float64 `json:"weather_impact_factor"`
	AddressConfidence float64 `json:"address_confidence_score"`
}

// Assessment is the gate's full verdict: the decision, the reasons that
// produced it, and the signals it was based on.
type Assessment struct {
	Decision Decision `json:"decision"`
	Reasons  []string `json:"reasons"`
	Signals
}

// ShouldDispatch reports whether the shipment can leave the hub now.
func (a Assessment) ShouldDispatch() bool {
	return a.Decision == DecisionDispatch
}

// RequiresCustomerContact reports whether the customer must respond
// before the shipment can proceed.
func (a Assessment) RequiresCustomerContact() bool {
	return a.Decision == DecisionReschedule
}
