package handler

import (
	"errors"

	"dispatch-control/internal/features/feasibility/domain"
	"dispatch-control/internal/features/feasibility/service"

	"github.com/gofiber/fiber/v2"
)

// FeasibilityHandler handles HTTP requests for vehicle feasibility decisions.
type FeasibilityHandler struct {
	engine *service.Engine
}

// NewFeasibilityHandler creates a new FeasibilityHandler.
func NewFeasibilityHandler(engine *service.Engine) *FeasibilityHandler {
	return &FeasibilityHandler{
		engine: engine,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CheckRequest is the request body for a vehicle feasibility check.
type CheckRequest struct {
	ShipmentID       string  `json:"shipment_id"`
	WeightKg         float64 `json:"weight_kg"`
	VolumetricWeight float64 `json:"volumetric_weight"`
	AreaType         string  `json:"area_type"`
	RoadAccess       string  `json:"road_accessibility"`
	AssignedVehicle  string  `json:"assigned_vehicle"`
}

// CheckFeasibility godoc
// @Summary Check vehicle feasibility for a shipment
// @Description Decides whether the assigned vehicle can physically execute the delivery given area, road, and capacity constraints, recommending an alternative on rejection
// @Tags decisions
// @Accept json
// @Produce json
// @Param shipment body CheckRequest true "Shipment context"
// @Success 200 {object} domain.Verdict
// @Failure 400 {object} ErrorResponse
// @Router /decisions/vehicle-feasibility [post]
func (h *FeasibilityHandler) CheckFeasibility(c *fiber.Ctx) error {
	var req CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	area, err := domain.ParseAreaType(req.AreaType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "area_type must be one of: Old City, Planned, Semi-Urban, Rural",
			RayID:   c.Locals("requestid").(string),
		})
	}

	road, err := domain.ParseRoadAccess(req.RoadAccess)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "road_accessibility must be one of: Narrow, Medium, Wide",
			RayID:   c.Locals("requestid").(string),
		})
	}

	vehicle, err := domain.ParseVehicleClass(req.AssignedVehicle)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "assigned_vehicle must be one of: Bike, Van, Truck",
			RayID:   c.Locals("requestid").(string),
		})
	}

	verdict, err := h.engine.Check(domain.ShipmentContext{
		ShipmentID:       req.ShipmentID,
		WeightKg:         req.WeightKg,
		VolumetricWeight: req.VolumetricWeight,
		AreaType:         area,
		RoadAccess:       road,
		AssignedVehicle:  vehicle,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownVehicleClass) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(verdict)
}
