package handler

import (
	"time"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/features/gate/domain"
	"dispatch-control/internal/features/gate/service"

	"github.com/gofiber/fiber/v2"
)

// GateHandler handles HTTP requests for pre-dispatch decisions.
type GateHandler struct {
	gate  *service.Gate
	clock clock.Clock
}

// NewGateHandler creates a new GateHandler.
func NewGateHandler(gate *service.Gate, clk clock.Clock) *GateHandler {
	return &GateHandler{
		gate:  gate,
		clock: clk,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// DecisionRequest holds the intelligence signals for one shipment.
type DecisionRequest struct {
	ShipmentID        string  `json:"shipment_id"`
	RiskScore         float64 `json:"risk_score"`
	WeatherImpact     float64 `json:"weather_impact_factor"`
	AddressConfidence float64 `json:"address_confidence_score"`
}

// DecisionResponse is the full pre-dispatch verdict for one shipment.
type DecisionResponse struct {
	ShipmentID string `json:"shipment_id"`
	domain.Assessment
	Explanation       string    `json:"explanation"`
	ActionItems       []string  `json:"action_items"`
	CustomerMessage   string    `json:"customer_message"`
	NotifyCustomer    bool      `json:"notify_customer"`
	RescheduleOptions []string  `json:"reschedule_options,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// MakeDecision godoc
// @Summary Make a pre-dispatch decision
// @Description Evaluates risk, weather, and address confidence signals and decides whether to dispatch, delay, or reschedule the shipment
// @Tags decisions
// @Accept json
// @Produce json
// @Param request body DecisionRequest true "Pre-dispatch signals"
// @Success 200 {object} DecisionResponse
// @Failure 400 {object} ErrorResponse
// @Router /decisions/pre-dispatch [post]
func (h *GateHandler) MakeDecision(c *fiber.Ctx) error {
	var req DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if req.ShipmentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "shipment_id is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	scores := []struct {
		name  string
		value float64
	}{
		{"risk_score", req.RiskScore},
		{"weather_impact_factor", req.WeatherImpact},
		{"address_confidence_score", req.AddressConfidence},
	}
	for _, score := range scores {
		if score.value < 0 || score.value > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: score.name + " must be between 0 and 100",
				RayID:   c.Locals("requestid").(string),
			})
		}
	}

	assessment := h.gate.Decide(domain.Signals{
		RiskScore:         req.RiskScore,
		WeatherImpact:     req.WeatherImpact,
		AddressConfidence: req.AddressConfidence,
	})

	resp := DecisionResponse{
		ShipmentID:      req.ShipmentID,
		Assessment:      assessment,
		Explanation:     h.gate.Explanation(assessment),
		ActionItems:     h.gate.ActionItems(assessment),
		CustomerMessage: h.gate.CustomerMessage(req.ShipmentID, assessment),
		NotifyCustomer:  h.gate.ShouldNotify(assessment),
		Timestamp:       h.clock.Now(),
	}
	if assessment.RequiresCustomerContact() {
		resp.RescheduleOptions = service.RescheduleOptions()
	}

	return c.JSON(resp)
}
