package handler

import (
	"dispatch-control/internal/features/carbon/domain"
	"dispatch-control/internal/features/carbon/service"

	"github.com/gofiber/fiber/v2"
)

// CarbonHandler handles HTTP requests for CO2 tradeoff analysis.
type CarbonHandler struct {
	advisor *service.Advisor
}

// NewCarbonHandler creates a new CarbonHandler.
func NewCarbonHandler(advisor *service.Advisor) *CarbonHandler {
	return &CarbonHandler{
		advisor: advisor,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// TradeoffRequest is the request body for a CO2 tradeoff analysis. The
// emission factor is resolved from the vehicle class unless an explicit
// factor is given.
type TradeoffRequest struct {
	VehicleClass      string  `json:"vehicle_class"`
	EmissionFactorGkm float64 `json:"emission_factor_gkm,omitempty"`
}

// TradeoffResponse is the response body for a CO2 tradeoff analysis.
type TradeoffResponse struct {
	VehicleClass      string  `json:"vehicle_class,omitempty"`
	EmissionFactorGkm float64 `json:"emission_factor_gkm"`
	domain.Tradeoff
	FastGrade       string  `json:"fast_route_grade"`
	GreenGrade      string  `json:"green_route_grade"`
	CO2PercentSaved float64 `json:"co2_percent_saved"`
}

// AnalyzeTradeoff godoc
// @Summary Compare fast and green route archetypes
// @Description Quantifies the CO2 and ETA tradeoff between the time-optimized and emission-optimized routes for a vehicle; advisory only, never auto-selects a route
// @Tags decisions
// @Accept json
// @Produce json
// @Param request body TradeoffRequest true "Vehicle class or explicit emission factor"
// @Success 200 {object} TradeoffResponse
// @Failure 400 {object} ErrorResponse
// @Router /decisions/co2-tradeoff [post]
func (h *CarbonHandler) AnalyzeTradeoff(c *fiber.Ctx) error {
	var req TradeoffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if req.VehicleClass == "" && req.EmissionFactorGkm <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "vehicle_class or a positive emission_factor_gkm is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	factor := req.EmissionFactorGkm
	if factor <= 0 {
		factor = h.advisor.EmissionFactor(req.VehicleClass)
	}

	tradeoff := h.advisor.Compare(factor)

	return c.JSON(TradeoffResponse{
		VehicleClass:      req.VehicleClass,
		EmissionFactorGkm: factor,
		Tradeoff:          tradeoff,
		FastGrade:         h.advisor.Grade(tradeoff.Fast.CO2Kg),
		GreenGrade:        h.advisor.Grade(tradeoff.Green.CO2Kg),
		CO2PercentSaved:   h.advisor.PercentSaved(tradeoff.Fast.CO2Kg, tradeoff.Green.CO2Kg),
	})
}
