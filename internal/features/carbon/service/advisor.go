package service

import (
	"fmt"
	"math"

	"dispatch-control/internal/features/carbon/domain"
)

// Config carries the tables an Advisor computes with. The tables are
// treated as frozen for the lifetime of the advisor.
type Config struct {
	// Multipliers scale emissions by traffic condition.
	Multipliers map[domain.TrafficType]float64
	// DefaultMultiplier applies to unrecognized traffic conditions.
	DefaultMultiplier float64
	// Factors map a vehicle class to its emission factor in g/km.
	Factors map[string]float64
	// DefaultFactor applies to unrecognized vehicle classes.
	DefaultFactor float64
	// Fast and Green are the two route archetypes under comparison.
	Fast  domain.RouteProfile
	Green domain.RouteProfile
	// Grades are the sustainability bands, scanned in order.
	Grades []domain.GradeBand
}

// DefaultConfig returns the standard advisory tables.
func DefaultConfig() Config {
	return Config{
		Multipliers: map[domain.TrafficType]float64{
			domain.TrafficSmooth:    1.0,
			domain.TrafficStopStart: 1.3,
		},
		DefaultMultiplier: 1.0,
		Factors: map[string]float64{
			"Bike":  50,
			"Van":   120,
			"Truck": 200,
		},
		DefaultFactor: 120,
		Fast: domain.RouteProfile{
			Name:         "Fast",
			DistanceKm:   20,
			Traffic:      domain.TrafficStopStart,
			AvgSpeedKmph: 25,
		},
		Green: domain.RouteProfile{
			Name:         "Green",
			DistanceKm:   24,
			Traffic:      domain.TrafficSmooth,
			AvgSpeedKmph: 40,
		},
		Grades: []domain.GradeBand{
			{UpToKg: 1.0, Label: "A (Excellent)"},
			{UpToKg: 2.0, Label: "B (Good)"},
			{UpToKg: 3.0, Label: "C (Average)"},
			{UpToKg: 5.0, Label: "D (Poor)"},
			{UpToKg: math.Inf(1), Label: "F (Very Poor)"},
		},
	}
}

// Advisor quantifies the tradeoff between delivery speed and carbon
// emissions across two fixed route archetypes. It never picks a route;
// the comparison feeds a human dispatch decision.
type Advisor struct {
	cfg Config
}

// NewAdvisor creates an Advisor owning the given tables.
func NewAdvisor(cfg Config) *Advisor {
	return &Advisor{cfg: cfg}
}

// CO2Emission estimates route emissions in kilograms, rounded to two
// decimals. Unrecognized traffic conditions use the default multiplier.
func (a *Advisor) CO2Emission(distanceKm, factorGkm float64, traffic domain.TrafficType) float64 {
	multiplier, ok := a.cfg.Multipliers[traffic]
	if !ok {
		multiplier = a.cfg.DefaultMultiplier
	}

	return round2(distanceKm * factorGkm * multiplier / 1000)
}

// ETA estimates travel time in hours, rounded to two decimals.
func (a *Advisor) ETA(distanceKm, avgSpeedKmph float64) float64 {
	return round2(distanceKm / avgSpeedKmph)
}

// EmissionFactor returns the emission factor in g/km for a vehicle class.
// Unrecognized classes use the default factor.
func (a *Advisor) EmissionFactor(vehicleClass string) float64 {
	factor, ok := a.cfg.Factors[vehicleClass]
	if !ok {
		return a.cfg.DefaultFactor
	}

	return factor
}

// Compare evaluates both route archetypes for the given emission factor.
func (a *Advisor) Compare(factorGkm float64) domain.Tradeoff {
	fast := a.routeOutcome(a.cfg.Fast, factorGkm)
	green := a.routeOutcome(a.cfg.Green, factorGkm)

	co2Saved := round2(fast.CO2Kg - green.CO2Kg)
	timeCost := round2(green.ETAHours - fast.ETAHours)

	var recommendation string
	if co2Saved > 1.0 {
		recommendation = fmt.Sprintf("Green route saves %vkg CO₂ at cost of %v extra hours", co2Saved, math.Abs(timeCost))
	} else {
		recommendation = fmt.Sprintf("Minimal CO₂ difference (%vkg), fast route recommended", co2Saved)
	}

	return domain.Tradeoff{
		Fast:           fast,
		Green:          green,
		CO2SavedKg:     co2Saved,
		TimeCostHours:  timeCost,
		Recommendation: recommendation,
	}
}

// PercentSaved is the relative emission saving of the green route,
// rounded to one decimal. Zero when the fast route emits nothing.
func (a *Advisor) PercentSaved(fastCO2, greenCO2 float64) float64 {
	if fastCO2 == 0 {
		return 0
	}

	return round1((fastCO2 - greenCO2) / fastCO2 * 100)
}

// Grade maps an emission to its sustainability band label.
func (a *Advisor) Grade(co2Kg float64) string {
	for _, band := range a.cfg.Grades {
		if co2Kg < band.UpToKg {
			return band.Label
		}
	}

	// Unreachable with the default bands, which end at +Inf.
	return ""
}

func (a *Advisor) routeOutcome(profile domain.RouteProfile, factorGkm float64) domain.RouteOutcome {
	return domain.RouteOutcome{
		ETAHours:   a.ETA(profile.DistanceKm, profile.AvgSpeedKmph),
		CO2Kg:      a.CO2Emission(profile.DistanceKm, factorGkm, profile.Traffic),
		DistanceKm: profile.DistanceKm,
		Traffic:    profile.Traffic,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
