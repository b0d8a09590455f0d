package domain

// TrafficType describes traffic flow conditions on a route.
type TrafficType string

const (
	// TrafficSmooth is free-flowing traffic with optimal fuel burn.
	TrafficSmooth TrafficType = "Smooth"
	// TrafficStopStart is congested traffic with frequent braking.
	TrafficStopStart TrafficType = "Stop-Start"
)

// RouteProfile describes one route archetype under comparison.
type RouteProfile struct {
	// Name labels the archetype.
	Name string `json:"route"`
	// DistanceKm is the route distance in kilometers.
	DistanceKm float64 `json:"distance_km"`
	// Traffic is the expected traffic condition.
	Traffic TrafficType `json:"traffic"`
	// AvgSpeedKmph is the expected average speed in km/h.
	AvgSpeedKmph float64 `json:"avg_speed"`
}

// RouteOutcome carries the computed metrics for one route.
type RouteOutcome struct {
	// ETAHours is the estimated travel time in hours.
	ETAHours float64 `json:"eta_hours"`
	// CO2Kg is the estimated emission in kilograms.
	CO2Kg float64 `json:"co2_kg"`
	// DistanceKm echoes the route distance.
	DistanceKm float64 `json:"distance_km"`
	// Traffic echoes the traffic condition.
	Traffic TrafficType `json:"traffic"`
}

// Tradeoff is the fast-versus-green comparison presented to a dispatcher.
// It is informative only; nothing in the pipeline auto-selects a route.
type Tradeoff struct {
	// Fast is the time-optimized route outcome.
	Fast RouteOutcome `json:"fast_route"`
	// Green is the emission-optimized route outcome.
	Green RouteOutcome `json:"green_route"`
	// CO2SavedKg is fast CO2 minus green CO2.
	CO2SavedKg float64 `json:"co2_saved_kg"`
	// TimeCostHours is green ETA minus fast ETA. Negative when the green
	// route is also the faster one.
	TimeCostHours float64 `json:"time_cost_hours"`
	// Recommendation is human-readable advisory text.
	Recommendation string `json:"recommendation"`
}

// GradeBand maps an exclusive upper CO2 bound to a sustainability grade.
// Bands are scanned in order; the first band whose bound exceeds the
// emission wins.
type GradeBand struct {
	UpToKg float64
	Label  string
}
