package domain

import "errors"

// VehicleClass identifies a delivery vehicle category.
type VehicleClass string

const (
	// VehicleBike is a two-wheeler for light, hyper-local deliveries.
	VehicleBike VehicleClass = "Bike"
	// VehicleVan is a small commercial vehicle for moderate loads.
	VehicleVan VehicleClass = "Van"
	// VehicleTruck is a heavy goods vehicle for bulk loads.
	VehicleTruck VehicleClass = "Truck"
)

// AreaType classifies the delivery destination area.
type AreaType string

const (
	// AreaOldCity is a dense historic core with narrow lane access.
	AreaOldCity AreaType = "Old City"
	// AreaPlanned is a planned urban layout.
	AreaPlanned AreaType = "Planned"
	// AreaSemiUrban is a peri-urban area.
	AreaSemiUrban AreaType = "Semi-Urban"
	// AreaRural is a rural area.
	AreaRural AreaType = "Rural"
)

// RoadAccess classifies the road accessibility at the delivery point.
type RoadAccess string

const (
	// RoadNarrow admits bikes only.
	RoadNarrow RoadAccess = "Narrow"
	// RoadMedium admits bikes and vans.
	RoadMedium RoadAccess = "Medium"
	// RoadWide admits all vehicle classes.
	RoadWide RoadAccess = "Wide"
)

// Unknown enumeration values are rejected, never silently defaulted.
var (
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")
	ErrUnknownAreaType     = errors.New("unknown area type")
	ErrUnknownRoadAccess   = errors.New("unknown road accessibility")
)

// ParseVehicleClass validates a raw vehicle class string.
func ParseVehicleClass(s string) (VehicleClass, error) {
	switch VehicleClass(s) {
	case VehicleBike, VehicleVan, VehicleTruck:
		return VehicleClass(s), nil
	}
	return "", ErrUnknownVehicleClass
}

// ParseAreaType validates a raw area type string.
func ParseAreaType(s string) (AreaType, error) {
	switch AreaType(s) {
	case AreaOldCity, AreaPlanned, AreaSemiUrban, AreaRural:
		return AreaType(s), nil
	}
	return "", ErrUnknownAreaType
}

// ParseRoadAccess validates a raw road accessibility string.
func ParseRoadAccess(s string) (RoadAccess, error) {
	switch RoadAccess(s) {
	case RoadNarrow, RoadMedium, RoadWide:
		return RoadAccess(s), nil
	}
	return "", ErrUnknownRoadAccess
}

// ShipmentContext is the immutable input to a feasibility check, built by
// order intake from validated shipment data.
type ShipmentContext struct {
	// ShipmentID is the unique shipment identifier.
	ShipmentID string `json:"shipment_id"`
	// WeightKg is the shipment weight in kilograms.
	WeightKg float64 `json:"weight_kg"`
	// VolumetricWeight is the dimensional weight of the shipment.
	VolumetricWeight float64 `json:"volumetric_weight"`
	// AreaType is the destination area classification.
	AreaType AreaType `json:"area_type"`
	// RoadAccess is the destination road accessibility.
	RoadAccess RoadAccess `json:"road_accessibility"`
	// AssignedVehicle is the vehicle currently assigned to the shipment.
	AssignedVehicle VehicleClass `json:"assigned_vehicle"`
}
