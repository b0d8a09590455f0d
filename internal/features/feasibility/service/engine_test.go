package service

import (
	"testing"

	"dispatch-control/internal/features/feasibility/domain"

	"github.com/stretchr/testify/assert"
)

func TestEngine_IsVehicleAllowed(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name    string
		area    domain.AreaType
		road    domain.RoadAccess
		vehicle domain.VehicleClass
		allowed bool
	}{
		{"OldCityBike", domain.AreaOldCity, domain.RoadNarrow, domain.VehicleBike, true},
		{"OldCityVan", domain.AreaOldCity, domain.RoadWide, domain.VehicleVan, false},
		{"OldCityTruck", domain.AreaOldCity, domain.RoadWide, domain.VehicleTruck, false},
		{"NarrowVan", domain.AreaPlanned, domain.RoadNarrow, domain.VehicleVan, false},
		{"NarrowTruck", domain.AreaPlanned, domain.RoadNarrow, domain.VehicleTruck, false},
		{"NarrowBike", domain.AreaPlanned, domain.RoadNarrow, domain.VehicleBike, true},
		{"MediumTruck", domain.AreaRural, domain.RoadMedium, domain.VehicleTruck, false},
		{"MediumVan", domain.AreaRural, domain.RoadMedium, domain.VehicleVan, true},
		{"WideBike", domain.AreaPlanned, domain.RoadWide, domain.VehicleBike, true},
		{"WideVan", domain.AreaPlanned, domain.RoadWide, domain.VehicleVan, true},
		{"WideTruck", domain.AreaPlanned, domain.RoadWide, domain.VehicleTruck, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, engine.IsVehicleAllowed(tt.area, tt.road, tt.vehicle))
		})
	}
}

func TestEngine_CapacityOK(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	spec := domain.CapacitySpec{MaxLoadKg: 50, MaxVolumeCm3: 40000}

	t.Run("Fits", func(t *testing.T) {
		assert.True(t, engine.CapacityOK(30, 20, spec))
	})

	t.Run("ExactBoundaryFits", func(t *testing.T) {
		assert.True(t, engine.CapacityOK(50, 40, spec))
	})

	t.Run("Overweight", func(t *testing.T) {
		assert.False(t, engine.CapacityOK(50.1, 10, spec))
	})

	t.Run("Overvolume", func(t *testing.T) {
		assert.False(t, engine.CapacityOK(10, 40.1, spec))
	})
}

func TestEngine_Capacity(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	t.Run("KnownClasses", func(t *testing.T) {
		bike, err := engine.Capacity(domain.VehicleBike)
		assert.NoError(t, err)
		assert.Equal(t, domain.CapacitySpec{MaxLoadKg: 20, MaxVolumeCm3: 15000}, bike)

		van, err := engine.Capacity(domain.VehicleVan)
		assert.NoError(t, err)
		assert.Equal(t, domain.CapacitySpec{MaxLoadKg: 50, MaxVolumeCm3: 40000}, van)

		truck, err := engine.Capacity(domain.VehicleTruck)
		assert.NoError(t, err)
		assert.Equal(t, domain.CapacitySpec{MaxLoadKg: 200, MaxVolumeCm3: 150000}, truck)
	})

	t.Run("UnknownClassRejected", func(t *testing.T) {
		_, err := engine.Capacity("Drone")
		assert.ErrorIs(t, err, domain.ErrUnknownVehicleClass)
	})
}

func TestEngine_RecommendAlternative(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name    string
		area    domain.AreaType
		road    domain.RoadAccess
		weight  float64
		volume  float64
		action  domain.Action
		vehicle domain.VehicleClass
		reason  string
	}{
		{"OldCityWins", domain.AreaOldCity, domain.RoadWide, 100, 100, domain.ActionSplitDelivery, domain.VehicleBike, "Old city access restrictions"},
		{"NarrowRoad", domain.AreaPlanned, domain.RoadNarrow, 100, 100, domain.ActionUseBike, domain.VehicleBike, "Narrow road accessibility"},
		{"HeavyOnWide", domain.AreaPlanned, domain.RoadWide, 35, 10, domain.ActionUseTruck, domain.VehicleTruck, "High shipment volume"},
		{"HeavyOnMedium", domain.AreaPlanned, domain.RoadMedium, 35, 10, domain.ActionSplitDelivery, domain.VehicleVan, "Heavy load but truck not accessible"},
		{"BulkyOnMedium", domain.AreaRural, domain.RoadMedium, 10, 26, domain.ActionSplitDelivery, domain.VehicleVan, "Heavy load but truck not accessible"},
		{"ModerateLoad", domain.AreaPlanned, domain.RoadWide, 20, 5, domain.ActionUseVan, domain.VehicleVan, "Moderate shipment volume"},
		{"ModerateVolume", domain.AreaPlanned, domain.RoadWide, 5, 13, domain.ActionUseVan, domain.VehicleVan, "Moderate shipment volume"},
		{"LightDefault", domain.AreaPlanned, domain.RoadWide, 5, 5, domain.ActionUseBike, domain.VehicleBike, "Better last-mile accessibility"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := engine.RecommendAlternative(tt.area, tt.road, tt.weight, tt.volume)
			assert.Equal(t, tt.action, rec.Recommendation)
			assert.Equal(t, tt.vehicle, rec.SuggestedVehicle)
			assert.Equal(t, tt.reason, rec.Reason)
		})
	}
}

func TestEngine_Check(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	t.Run("VanInOldCityRejected", func(t *testing.T) {
		verdict, err := engine.Check(domain.ShipmentContext{
			ShipmentID:       "SHP001",
			WeightKg:         12,
			VolumetricWeight: 8,
			AreaType:         domain.AreaOldCity,
			RoadAccess:       domain.RoadNarrow,
			AssignedVehicle:  domain.VehicleVan,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.VerdictRejected, verdict.Status)
		assert.Equal(t, domain.VehicleBike, verdict.FinalVehicle)
		assert.Equal(t, domain.ActionSplitDelivery, verdict.Action)
		assert.Equal(t, "Old city access restrictions", verdict.Reason)
		assert.Equal(t, domain.VehicleVan, verdict.AssignedVehicle)
	})

	t.Run("BikeInOldCityApproved", func(t *testing.T) {
		verdict, err := engine.Check(domain.ShipmentContext{
			ShipmentID:       "SHP002",
			WeightKg:         8,
			VolumetricWeight: 5,
			AreaType:         domain.AreaOldCity,
			RoadAccess:       domain.RoadNarrow,
			AssignedVehicle:  domain.VehicleBike,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.VerdictApproved, verdict.Status)
		assert.Equal(t, domain.VehicleBike, verdict.FinalVehicle)
		assert.Equal(t, domain.ActionProceed, verdict.Action)
		assert.Empty(t, verdict.Reason)
	})

	t.Run("CapacityOnlyFailure", func(t *testing.T) {
		verdict, err := engine.Check(domain.ShipmentContext{
			ShipmentID:       "SHP003",
			WeightKg:         60,
			VolumetricWeight: 10,
			AreaType:         domain.AreaPlanned,
			RoadAccess:       domain.RoadWide,
			AssignedVehicle:  domain.VehicleVan,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.VerdictRejected, verdict.Status)
		assert.Equal(t, "Vehicle capacity exceeded", verdict.Reason)
		assert.Equal(t, domain.ActionUseTruck, verdict.Action)
		assert.Equal(t, domain.VehicleTruck, verdict.FinalVehicle)
	})

	t.Run("BothChecksFailed", func(t *testing.T) {
		verdict, err := engine.Check(domain.ShipmentContext{
			ShipmentID:       "SHP004",
			WeightKg:         60,
			VolumetricWeight: 10,
			AreaType:         domain.AreaOldCity,
			RoadAccess:       domain.RoadWide,
			AssignedVehicle:  domain.VehicleVan,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.VerdictRejected, verdict.Status)
		assert.Equal(t, "Old city access restrictions + Capacity exceeded", verdict.Reason)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		_, err := engine.Check(domain.ShipmentContext{
			ShipmentID:      "SHP005",
			AssignedVehicle: "Drone",
		})
		assert.ErrorIs(t, err, domain.ErrUnknownVehicleClass)
	})

	t.Run("Deterministic", func(t *testing.T) {
		sc := domain.ShipmentContext{
			ShipmentID:       "SHP006",
			WeightKg:         35,
			VolumetricWeight: 20,
			AreaType:         domain.AreaSemiUrban,
			RoadAccess:       domain.RoadMedium,
			AssignedVehicle:  domain.VehicleVan,
		}

		first, err := engine.Check(sc)
		assert.NoError(t, err)
		second, err := engine.Check(sc)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
