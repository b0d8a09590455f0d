package service

import (
	"testing"

	"dispatch-control/internal/features/carbon/domain"

	"github.com/stretchr/testify/assert"
)

func TestAdvisor_CO2Emission(t *testing.T) {
	advisor := NewAdvisor(DefaultConfig())

	t.Run("SmoothTraffic", func(t *testing.T) {
		assert.Equal(t, 2.4, advisor.CO2Emission(20, 120, domain.TrafficSmooth))
	})

	t.Run("StopStartTraffic", func(t *testing.T) {
		assert.Equal(t, 3.12, advisor.CO2Emission(20, 120, domain.TrafficStopStart))
	})

	t.Run("UnknownTrafficUsesDefaultMultiplier", func(t *testing.T) {
		assert.Equal(t, 2.4, advisor.CO2Emission(20, 120, "Gridlock"))
	})
}

func TestAdvisor_ETA(t *testing.T) {
	advisor := NewAdvisor(DefaultConfig())

	assert.Equal(t, 0.8, advisor.ETA(20, 25))
	assert.Equal(t, 0.6, advisor.ETA(24, 40))
}

func TestAdvisor_EmissionFactor(t *testing.T) {
	advisor := NewAdvisor(DefaultConfig())

	assert.Equal(t, 50.0, advisor.EmissionFactor("Bike"))
	assert.Equal(t, 120.0, advisor.EmissionFactor("Van"))
	assert.Equal(t, 200.0, advisor.EmissionFactor("Truck"))

	// Unrecognized classes fall back to the van-grade factor.
	assert.Equal(t, 120.0, advisor.EmissionFactor("Rickshaw"))
}

func TestAdvisor_Compare(t *testing.T) {
	advisor := NewAdvisor(DefaultConfig())

	t.Run("VanFactor", func(t *testing.T) {
		tradeoff := advisor.Compare(120)

		assert.Equal(t, 3.12, tradeoff.Fast.CO2Kg)
		assert.Equal(t, 0.8, tradeoff.Fast.ETAHours)
		assert.Equal(t, 2.88, tradeoff.Green.CO2Kg)
		assert.Equal(t, 0.6, tradeoff.Green.ETAHours)
		assert.Less(t, tradeoff.Green.CO2Kg, tradeoff.Fast.CO2Kg)

		assert.Equal(t, 0.24, tradeoff.CO2SavedKg)
		assert.Equal(t, -0.2, tradeoff.TimeCostHours)
		assert.Equal(t, "Minimal CO₂ difference (0.24kg), fast route recommended", tradeoff.Recommendation)
	})

	t.Run("HighFactorRecommendsGreen", func(t *testing.T) {
		tradeoff := advisor.Compare(600)

		assert.Equal(t, 1.2, tradeoff.CO2SavedKg)
		assert.Equal(t, "Green route saves 1.2kg CO₂ at cost of 0.2 extra hours", tradeoff.Recommendation)
	})

	t.Run("EchoesRouteProfiles", func(t *testing.T) {
		tradeoff := advisor.Compare(120)

		assert.Equal(t, 20.0, tradeoff.Fast.DistanceKm)
		assert.Equal(t, domain.TrafficStopStart, tradeoff.Fast.Traffic)
		assert.Equal(t, 24.0, tradeoff.Green.DistanceKm)
		assert.Equal(t, domain.TrafficSmooth, tradeoff.Green.Traffic)
	})
}

func TestAdvisor_PercentSaved(t *testing.T) {
	advisor := NewAdvisor(DefaultConfig())

	assert.Equal(t, 7.7, advisor.PercentSaved(3.12, 2.88))
	assert.Equal(t, 0.0, advisor.PercentSaved(0, 2.88))
}

func TestAdvisor_Grade(t *testing.T) {
	advisor := NewAdvisor(DefaultConfig())

	tests := []struct {
		co2   float64
		grade string
	}{
		{0.8, "A (Excellent)"},
		{1.0, "B (Good)"},
		{1.9, "B (Good)"},
		{2.5, "C (Average)"},
		{3.0, "D (Poor)"},
		{4.99, "D (Poor)"},
		{5.0, "F (Very Poor)"},
		{6.0, "F (Very Poor)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.grade, advisor.Grade(tt.co2), "co2=%v", tt.co2)
	}
}
