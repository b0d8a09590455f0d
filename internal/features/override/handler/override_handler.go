package handler

import (
	"errors"
	"time"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/features/override/domain"
	"dispatch-control/internal/features/override/service"

	"github.com/gofiber/fiber/v2"
)

// OverrideHandler handles HTTP requests for human dispatch overrides.
type OverrideHandler struct {
	service *service.Service
	clock   clock.Clock
}

// NewOverrideHandler creates a new OverrideHandler.
func NewOverrideHandler(svc *service.Service, clk clock.Clock) *OverrideHandler {
	return &OverrideHandler{
		service: svc,
		clock:   clk,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ApplyRequest holds one override attempt.
type ApplyRequest struct {
	ShipmentID       string `json:"shipment_id"`
	AIDecision       string `json:"ai_decision"`
	OverrideDecision string `json:"override_decision"`
	Reason           string `json:"override_reason"`
}

// ApplyResponse reports the outcome of an override attempt.
type ApplyResponse struct {
	ShipmentID string `json:"shipment_id"`
	domain.Result
	Timestamp time.Time `json:"timestamp"`
}

// LockResponse reports the manual lock state of a shipment.
type LockResponse struct {
	ShipmentID string `json:"shipment_id"`
	Locked     bool   `json:"locked"`
}

// UnlockResponse reports a released manual lock.
type UnlockResponse struct {
	ShipmentID     string `json:"shipment_id"`
	RecordsRemoved int    `json:"records_removed"`
}

// HistoryResponse lists override records.
type HistoryResponse struct {
	ShipmentID string          `json:"shipment_id,omitempty"`
	TotalCount int             `json:"total_count"`
	Overrides  []domain.Record `json:"overrides"`
}

// ReasonsResponse lists the accepted override reasons.
type ReasonsResponse struct {
	Reasons []string `json:"reasons"`
	Count   int      `json:"count"`
}

// Apply godoc
// @Summary Apply a human override to a pipeline decision
// @Description Records an operations manager's decision over the pipeline's; agreement leaves no trace, disagreement logs the override and locks the shipment against re-evaluation
// @Tags overrides
// @Accept json
// @Produce json
// @Param request body ApplyRequest true "Override attempt"
// @Success 200 {object} ApplyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /overrides/apply [post]
func (h *OverrideHandler) Apply(c *fiber.Ctx) error {
	var req ApplyRequest
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

	result, err := h.service.Apply(c.Context(), req.ShipmentID,
		domain.Decision(req.AIDecision), domain.Decision(req.OverrideDecision), req.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrReasonNotInCatalog) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "override_reason must come from the reason catalog, see GET /overrides/reasons",
				RayID:   c.Locals("requestid").(string),
			})
		}
		if errors.Is(err, domain.ErrInvalidDecision) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "ai_decision and override_decision must be one of: DISPATCH, DELAY, RESCHEDULE",
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(ApplyResponse{
		ShipmentID: req.ShipmentID,
		Result:     result,
		Timestamp:  h.clock.Now(),
	})
}

// CheckLock godoc
// @Summary Check the manual lock on a shipment
// @Description Reports whether a human override locked the shipment; decision engines must respect the lock before re-evaluating
// @Tags overrides
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} LockResponse
// @Failure 500 {object} ErrorResponse
// @Router /overrides/lock/{id} [get]
func (h *OverrideHandler) CheckLock(c *fiber.Ctx) error {
	shipmentID := c.Params("id")

	locked, err := h.service.IsLocked(c.Context(), shipmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(LockResponse{
		ShipmentID: shipmentID,
		Locked:     locked,
	})
}

// Unlock godoc
// @Summary Release the manual lock on a shipment
// @Description Removes every override record for the shipment, returning it to pipeline control; use with caution
// @Tags overrides
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} UnlockResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /overrides/lock/{id} [delete]
func (h *OverrideHandler) Unlock(c *fiber.Ctx) error {
	shipmentID := c.Params("id")

	removed, err := h.service.Unlock(c.Context(), shipmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	if removed == 0 {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "no override found for " + shipmentID,
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(UnlockResponse{
		ShipmentID:     shipmentID,
		RecordsRemoved: removed,
	})
}

// GetHistory godoc
// @Summary Get override history
// @Description Returns override records for one shipment, or the entire override log when no shipment is given
// @Tags overrides
// @Produce json
// @Param shipment_id query string false "Shipment ID"
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /overrides/history [get]
func (h *OverrideHandler) GetHistory(c *fiber.Ctx) error {
	shipmentID := c.Query("shipment_id")

	records, err := h.service.History(c.Context(), shipmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(HistoryResponse{
		ShipmentID: shipmentID,
		TotalCount: len(records),
		Overrides:  records,
	})
}

// GetReasons godoc
// @Summary List accepted override reasons
// @Description Returns the closed catalog of override reasons in catalog order
// @Tags overrides
// @Produce json
// @Success 200 {object} ReasonsResponse
// @Router /overrides/reasons [get]
func (h *OverrideHandler) GetReasons(c *fiber.Ctx) error {
	reasons := domain.Reasons()

	return c.JSON(ReasonsResponse{
		Reasons: reasons,
		Count:   len(reasons),
	})
}

// GetStats godoc
// @Summary Get override statistics
// @Description Aggregates the override log into counters for the learning loop
// @Tags overrides
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 500 {object} ErrorResponse
// @Router /overrides/stats [get]
func (h *OverrideHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(stats)
}
