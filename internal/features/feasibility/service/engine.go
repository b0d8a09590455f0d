package service

import (
	"fmt"

	"dispatch-control/internal/features/feasibility/domain"
)

// Thresholds are the load breakpoints used when recommending an alternative
// vehicle. Weight is in kilograms, volume in volumetric weight units.
type Thresholds struct {
	HeavyWeightKg    float64
	HeavyVolume      float64
	ModerateWeightKg float64
	ModerateVolume   float64
}

// Config carries the rule tables an Engine decides with. The tables are
// treated as frozen for the lifetime of the engine.
type Config struct {
	Thresholds Thresholds
	Capacities map[domain.VehicleClass]domain.CapacitySpec
}

// DefaultConfig returns the standard fleet rule tables.
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			HeavyWeightKg:    30,
			HeavyVolume:      25,
			ModerateWeightKg: 15,
			ModerateVolume:   12,
		},
		Capacities: map[domain.VehicleClass]domain.CapacitySpec{
			domain.VehicleBike:  {MaxLoadKg: 20, MaxVolumeCm3: 15000},
			domain.VehicleVan:   {MaxLoadKg: 50, MaxVolumeCm3: 40000},
			domain.VehicleTruck: {MaxLoadKg: 200, MaxVolumeCm3: 150000},
		},
	}
}

// Engine decides whether an assigned vehicle can physically execute a
// delivery. It is stateless; every verdict is a pure function of the
// shipment context and the engine's rule tables, so two calls with
// identical inputs never disagree.
type Engine struct {
	thresholds Thresholds
	capacities map[domain.VehicleClass]domain.CapacitySpec
}

// NewEngine creates an Engine owning the given rule tables.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		thresholds: cfg.Thresholds,
		capacities: cfg.Capacities,
	}
}

// IsVehicleAllowed reports whether a vehicle class may operate in the given
// area and road context. The rules are evaluated independently and all must
// pass: Old City admits bikes only, Narrow roads admit bikes only, Medium
// roads reject trucks, Wide roads admit every class the area rule allows.
func (e *Engine) IsVehicleAllowed(area domain.AreaType, road domain.RoadAccess, vehicle domain.VehicleClass) bool {
	if area == domain.AreaOldCity && vehicle != domain.VehicleBike {
		return false
	}

	if road == domain.RoadNarrow && vehicle != domain.VehicleBike {
		return false
	}

	if road == domain.RoadMedium && vehicle == domain.VehicleTruck {
		return false
	}

	return true
}

// CapacityOK reports whether the shipment fits within the capacity spec.
// Volumetric weight converts to cm3 with a x1000 factor.
func (e *Engine) CapacityOK(weightKg, volumetricWeight float64, spec domain.CapacitySpec) bool {
	if weightKg > spec.MaxLoadKg {
		return false
	}

	if volumetricWeight*1000 > spec.MaxVolumeCm3 {
		return false
	}

	return true
}

// Capacity returns the capacity spec for a vehicle class. Unknown classes
// are rejected with domain.ErrUnknownVehicleClass instead of falling back
// to the smallest vehicle, so a misconfigured fleet surfaces immediately.
func (e *Engine) Capacity(vehicle domain.VehicleClass) (domain.CapacitySpec, error) {
	spec, ok := e.capacities[vehicle]
	if !ok {
		return domain.CapacitySpec{}, fmt.Errorf("%w: %q", domain.ErrUnknownVehicleClass, vehicle)
	}

	return spec, nil
}

// RecommendAlternative proposes a replacement vehicle for a shipment whose
// assigned vehicle failed a feasibility check. The first matching rule wins.
func (e *Engine) RecommendAlternative(area domain.AreaType, road domain.RoadAccess, weightKg, volumetricWeight float64) domain.Recommendation {
	if area == domain.AreaOldCity {
		return domain.Recommendation{
			Recommendation:   domain.ActionSplitDelivery,
			SuggestedVehicle: domain.VehicleBike,
			Reason:           "Old city access restrictions",
		}
	}

	if road == domain.RoadNarrow {
		return domain.Recommendation{
			Recommendation:   domain.ActionUseBike,
			SuggestedVehicle: domain.VehicleBike,
			Reason:           "Narrow road accessibility",
		}
	}

	if weightKg > e.thresholds.HeavyWeightKg || volumetricWeight > e.thresholds.HeavyVolume {
		if road == domain.RoadWide {
			return domain.Recommendation{
				Recommendation:   domain.ActionUseTruck,
				SuggestedVehicle: domain.VehicleTruck,
				Reason:           "High shipment volume",
			}
		}
		return domain.Recommendation{
			Recommendation:   domain.ActionSplitDelivery,
			SuggestedVehicle: domain.VehicleVan,
			Reason:           "Heavy load but truck not accessible",
		}
	}

	if weightKg > e.thresholds.ModerateWeightKg || volumetricWeight > e.thresholds.ModerateVolume {
		return domain.Recommendation{
			Recommendation:   domain.ActionUseVan,
			SuggestedVehicle: domain.VehicleVan,
			Reason:           "Moderate shipment volume",
		}
	}

	return domain.Recommendation{
		Recommendation:   domain.ActionUseBike,
		SuggestedVehicle: domain.VehicleBike,
		Reason:           "Better last-mile accessibility",
	}
}

// CheckWithCapacity runs the full feasibility check against an explicit
// capacity spec. Both the access rules and the capacity fit must pass for
// an approval; on rejection the verdict carries the recommended alternative
// and a reason naming the failed check.
func (e *Engine) CheckWithCapacity(sc domain.ShipmentContext, spec domain.CapacitySpec) domain.Verdict {
	feasible := e.IsVehicleAllowed(sc.AreaType, sc.RoadAccess, sc.AssignedVehicle)
	capacityFit := e.CapacityOK(sc.WeightKg, sc.VolumetricWeight, spec)

	if feasible && capacityFit {
		return domain.Verdict{
			Status:          domain.VerdictApproved,
			FinalVehicle:    sc.AssignedVehicle,
			Action:          domain.ActionProceed,
			AreaType:        sc.AreaType,
			RoadAccess:      sc.RoadAccess,
			AssignedVehicle: sc.AssignedVehicle,
			WeightKg:        sc.WeightKg,
		}
	}

	rec := e.RecommendAlternative(sc.AreaType, sc.RoadAccess, sc.WeightKg, sc.VolumetricWeight)

	var reason string
	switch {
	case !feasible && !capacityFit:
		reason = rec.Reason + " + Capacity exceeded"
	case !feasible:
		reason = rec.Reason
	default:
		reason = "Vehicle capacity exceeded"
	}

	return domain.Verdict{
		Status:          domain.VerdictRejected,
		FinalVehicle:    rec.SuggestedVehicle,
		Action:          rec.Recommendation,
		Reason:          reason,
		AreaType:        sc.AreaType,
		RoadAccess:      sc.RoadAccess,
		AssignedVehicle: sc.AssignedVehicle,
		WeightKg:        sc.WeightKg,
	}
}

// Check resolves the assigned vehicle's capacity spec and runs the full
// feasibility check. It fails only when the assigned vehicle class is not
// in the capacity table.
func (e *Engine) Check(sc domain.ShipmentContext) (domain.Verdict, error) {
	spec, err := e.Capacity(sc.AssignedVehicle)
	if err != nil {
		return domain.Verdict{}, err
	}

	return e.CheckWithCapacity(sc, spec), nil
}
