package service

import (
	"slices"
	"strings"

	"dispatch-control/internal/features/gate/domain"
)

// Thresholds are the tuning points of the pre-dispatch gate. Risk and
// weather flag strictly above their thresholds, address confidence flags
// strictly below its own.
type Thresholds struct {
	Risk              float64
	WeatherHigh       float64
	AddressConfidence float64
}

// Config carries the tunable parts of the gate.
type Config struct {
	Thresholds Thresholds
}

// DefaultConfig returns the stock gate thresholds.
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			Risk:              60,
			WeatherHigh:       60,
			AddressConfidence: 60,
		},
	}
}

// Gate decides whether a shipment should be dispatched, delayed, or
// rescheduled before it leaves the hub.
type Gate struct {
	thresholds Thresholds
}

// NewGate creates a Gate with the given configuration.
func NewGate(cfg Config) *Gate {
	return &Gate{
		thresholds: cfg.Thresholds,
	}
}

// Decide evaluates the three intelligence signals against the gate
// thresholds. A low address confidence wins over risk and weather since
// it is the only signal that needs the customer to resolve; risk and
// weather issues only buffer the ETA.
func (g *Gate) Decide(signals domain.Signals) domain.Assessment {
	reasons := make([]string, 0, 3)
	addressIssue := false

	if signals.RiskScore > g.thresholds.Risk {
		reasons = append(reasons, domain.ReasonHighRisk)
	}
	if signals.WeatherImpact > g.thresholds.WeatherHigh {
		reasons = append(reasons, domain.ReasonSevereWeather)
	}
	if signals.AddressConfidence < g.thresholds.AddressConfidence {
		reasons = append(reasons, domain.ReasonLowAddress)
		addressIssue = true
	}

	var decision domain.Decision
	switch {
	case len(reasons) == 0:
		decision = domain.DecisionDispatch
	case addressIssue:
		decision = domain.DecisionReschedule
	default:
		decision = domain.DecisionDelay
	}

	return domain.Assessment{
		Decision: decision,
		Reasons:  reasons,
		Signals:  signals,
	}
}

// Explanation renders the assessment as a single ops-facing line.
func (g *Gate) Explanation(a domain.Assessment) string {
	switch a.Decision {
	case domain.DecisionDispatch:
		return "✅ DISPATCH: All signals safe. Proceed with normal delivery."
	case domain.DecisionDelay:
		return "⏸ DELAY: " + strings.Join(a.Reasons, " and ") + ". Buffer ETA and inform customer of potential delay."
	case domain.DecisionReschedule:
		return "🔁 RESCHEDULE: Low address confidence. Contact customer for address clarification before dispatch."
	}
	return "Unknown decision"
}

// ActionItems lists the follow-ups for the operations team.
func (g *Gate) ActionItems(a domain.Assessment) []string {
	actions := make([]string, 0, 6)

	switch a.Decision {
	case domain.DecisionDispatch:
		actions = append(actions,
			"Proceed with dispatch",
			"Follow normal delivery process")

	case domain.DecisionDelay:
		actions = append(actions,
			"Hold shipment at hub",
			"Buffer ETA by 1.5-2x normal time",
			"Send pre-dispatch alert to customer")
		if slices.Contains(a.Reasons, domain.ReasonSevereWeather) {
			actions = append(actions,
				"Monitor weather conditions",
				"Reassess after weather improves")
		}
		if slices.Contains(a.Reasons, domain.ReasonHighRisk) {
			actions = append(actions,
				"Assign experienced rider",
				"Consider alternate route")
		}

	case domain.DecisionReschedule:
		actions = append(actions,
			"DO NOT DISPATCH",
			"Contact customer via WhatsApp/App/Call",
			"Request address clarification or landmark details",
			"Update address in system before reattempt")
	}

	return actions
}
