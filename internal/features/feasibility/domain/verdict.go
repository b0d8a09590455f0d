package domain

// CapacitySpec is the physical capacity of one vehicle class. The table it
// comes from is frozen configuration, never mutated at runtime.
type CapacitySpec struct {
	// MaxLoadKg is the maximum load in kilograms.
	MaxLoadKg float64 `json:"max_load_kg"`
	// MaxVolumeCm3 is the maximum cargo volume in cubic centimeters.
	MaxVolumeCm3 float64 `json:"max_volume_cm3"`
}

// VerdictStatus is the outcome of a feasibility check.
type VerdictStatus string

const (
	// VerdictApproved means the assigned vehicle can execute the delivery.
	VerdictApproved VerdictStatus = "APPROVED"
	// VerdictRejected means the assigned vehicle cannot execute the delivery.
	VerdictRejected VerdictStatus = "REJECTED"
)

// Action is the dispatch action attached to a verdict.
type Action string

const (
	// ActionProceed confirms the assigned vehicle.
	ActionProceed Action = "PROCEED"
	// ActionUseBike swaps the assignment to a bike.
	ActionUseBike Action = "USE_BIKE"
	// ActionUseVan swaps the assignment to a van.
	ActionUseVan Action = "USE_VAN"
	// ActionUseTruck swaps the assignment to a truck.
	ActionUseTruck Action = "USE_TRUCK"
	// ActionSplitDelivery breaks the shipment across multiple smaller vehicles.
	ActionSplitDelivery Action = "SPLIT_DELIVERY"
)

// Recommendation is the alternative proposed when the assigned vehicle fails
// a feasibility check.
type Recommendation struct {
	// Recommendation is the proposed dispatch action.
	Recommendation Action `json:"recommendation"`
	// SuggestedVehicle is the proposed replacement vehicle.
	SuggestedVehicle VehicleClass `json:"suggested_vehicle"`
	// Reason explains the proposal.
	Reason string `json:"reason"`
}

// Verdict is the result of one feasibility check. It is a pure function of
// its inputs and carries an echo of the checked context.
type Verdict struct {
	// Status is APPROVED or REJECTED.
	Status VerdictStatus `json:"vehicle_status"`
	// FinalVehicle is the vehicle to use (the assignment when approved,
	// the suggested alternative when rejected).
	FinalVehicle VehicleClass `json:"final_vehicle"`
	// Action is the dispatch action to take.
	Action Action `json:"action"`
	// Reason explains a rejection. Empty when approved.
	Reason string `json:"reason,omitempty"`
	// AreaType echoes the checked area type.
	AreaType AreaType `json:"area_type"`
	// RoadAccess echoes the checked road accessibility.
	RoadAccess RoadAccess `json:"road_accessibility"`
	// AssignedVehicle echoes the original assignment.
	AssignedVehicle VehicleClass `json:"assigned_vehicle"`
	// WeightKg echoes the shipment weight.
	WeightKg float64 `json:"weight_kg"`
}

// ShouldSplit reports whether the verdict recommends a split delivery.
func (v Verdict) ShouldSplit() bool {
	return v.Action == ActionSplitDelivery
}
