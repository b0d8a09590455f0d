package handler

import (
	"math/rand"
	"time"

	"dispatch-control/internal/features/execution/domain"
	"dispatch-control/internal/features/execution/service"

	"github.com/gofiber/fiber/v2"
)

// ExecutionHandler handles HTTP requests for delivery execution.
type ExecutionHandler struct {
	tracker *service.Tracker
	runner  *service.Runner
	stats   *service.StatsService
}

// NewExecutionHandler creates a new ExecutionHandler.
func NewExecutionHandler(tracker *service.Tracker, runner *service.Runner, stats *service.StatsService) *ExecutionHandler {
	return &ExecutionHandler{
		tracker: tracker,
		runner:  runner,
		stats:   stats,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// DeliveryRequest holds the input for one delivery simulation.
type DeliveryRequest struct {
	ShipmentID    string `json:"shipment_id"`
	PackingDelay  bool   `json:"packing_delay"`
	DeliveryDelay bool   `json:"delivery_delay"`
}

// TrackingResponse is the tracking view for one shipment.
type TrackingResponse struct {
	ShipmentID    string                 `json:"shipment_id"`
	CurrentStatus domain.Status          `json:"current_status"`
	TotalEvents   int                    `json:"total_events"`
	Events        []domain.TrackingEvent `json:"events"`
}

// TrackingLogResponse is the tail of the global tracking log.
type TrackingLogResponse struct {
	TotalEvents int                    `json:"total_events"`
	Showing     int                    `json:"showing"`
	Events      []domain.TrackingEvent `json:"events"`
}

// FailedAttemptRequest holds the input for a failed attempt simulation.
type FailedAttemptRequest struct {
	ShipmentID string `json:"shipment_id"`
	Reason     string `json:"reason"`
}

// FailedAttemptResponse reports a simulated failed attempt.
type FailedAttemptResponse struct {
	ShipmentID string       `json:"shipment_id"`
	Action     string       `json:"action"`
	Reason     string       `json:"reason"`
	NextAction string       `json:"next_action"`
	Alert      domain.Alert `json:"alert"`
}

// BulkSimulationRequest holds the input for a bulk simulation run.
type BulkSimulationRequest struct {
	Count            int     `json:"count"`
	DelayProbability float64 `json:"delay_probability"`
}

// BulkSimulationResponse reports the outcome of a bulk simulation run.
type BulkSimulationResponse struct {
	SimulatedCount int              `json:"simulated_count"`
	Results        []domain.Summary `json:"results"`
}

// RunDelivery godoc
// @Summary Simulate one delivery execution
// @Description Runs a shipment through the full delivery lifecycle, optionally injecting packing and delivery delays, and returns the execution summary
// @Tags execution
// @Accept json
// @Produce json
// @Param request body DeliveryRequest true "Delivery simulation input"
// @Success 200 {object} domain.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /execution/deliveries [post]
func (h *ExecutionHandler) RunDelivery(c *fiber.Ctx) error {
	var req DeliveryRequest
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

	summary, err := h.runner.RunExecutionFlow(c.Context(), req.ShipmentID, req.PackingDelay, req.DeliveryDelay)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(summary)
}

// GetShipmentTracking godoc
// @Summary Get tracking history for a shipment
// @Description Returns all tracking events recorded for the shipment in insertion order, along with its current status
// @Tags execution
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} TrackingResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /execution/tracking/{id} [get]
func (h *ExecutionHandler) GetShipmentTracking(c *fiber.Ctx) error {
	shipmentID := c.Params("id")

	events, err := h.tracker.History(c.Context(), shipmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	if len(events) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "no tracking events found for " + shipmentID,
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(TrackingResponse{
		ShipmentID:    shipmentID,
		CurrentStatus: events[len(events)-1].Status,
		TotalEvents:   len(events),
		Events:        events,
	})
}

// GetTrackingLog godoc
// @Summary Get recent tracking events across all shipments
// @Description Returns the most recent tracking events from the global log
// @Tags execution
// @Produce json
// @Param limit query int false "Maximum number of events to return" default(50) minimum(1) maximum(1000)
// @Success 200 {object} TrackingLogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /execution/tracking [get]
func (h *ExecutionHandler) GetTrackingLog(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 1000 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "limit must be between 1 and 1000",
			RayID:   c.Locals("requestid").(string),
		})
	}

	events, err := h.tracker.History(c.Context(), "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	recent := events
	if len(events) > limit {
		recent = events[len(events)-limit:]
	}

	return c.JSON(TrackingLogResponse{
		TotalEvents: len(events),
		Showing:     len(recent),
		Events:      recent,
	})
}

// GetExecutionStats godoc
// @Summary Get execution statistics
// @Description Aggregates the full tracking log into delivery and delay counters
// @Tags execution
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 500 {object} ErrorResponse
// @Router /execution/stats [get]
func (h *ExecutionHandler) GetExecutionStats(c *fiber.Ctx) error {
	stats, err := h.stats.ExecutionStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(stats)
}

// SimulateFailedAttempt godoc
// @Summary Simulate a failed delivery attempt
// @Description Records a failed attempt, alerts the customer, and schedules a re-attempt
// @Tags execution
// @Accept json
// @Produce json
// @Param request body FailedAttemptRequest true "Failed attempt input"
// @Success 200 {object} FailedAttemptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /execution/failed-attempt [post]
func (h *ExecutionHandler) SimulateFailedAttempt(c *fiber.Ctx) error {
	var req FailedAttemptRequest
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

	if req.Reason == "" {
		req.Reason = service.DefaultFailureReason
	}

	alert, err := h.runner.SimulateFailedAttempt(c.Context(), req.ShipmentID, req.Reason)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(FailedAttemptResponse{
		ShipmentID: req.ShipmentID,
		Action:     "failed_attempt_simulated",
		Reason:     req.Reason,
		NextAction: "re_attempt_scheduled",
		Alert:      alert,
	})
}

// BulkSimulate godoc
// @Summary Bulk simulate deliveries
// @Description Runs complete execution flows for a batch of generated shipments, drawing delays at the given probability
// @Tags execution
// @Accept json
// @Produce json
// @Param request body BulkSimulationRequest true "Bulk simulation input"
// @Success 200 {object} BulkSimulationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /execution/bulk-simulate [post]
func (h *ExecutionHandler) BulkSimulate(c *fiber.Ctx) error {
	var req BulkSimulationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if req.Count < 1 || req.Count > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "count must be between 1 and 100",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if req.DelayProbability < 0 || req.DelayProbability > 1 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "delay_probability must be between 0 and 1",
			RayID:   c.Locals("requestid").(string),
		})
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	results, err := h.runner.BulkSimulate(c.Context(), req.Count, req.DelayProbability, rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(BulkSimulationResponse{
		SimulatedCount: len(results),
		Results:        results,
	})
}
