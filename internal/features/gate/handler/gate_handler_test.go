package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/features/gate/domain"
	"dispatch-control/internal/features/gate/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	gate := service.NewGate(service.DefaultConfig())
	handler := NewGateHandler(gate, clock.NewManual(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/decisions/pre-dispatch", handler.MakeDecision)

	return app
}

func postDecision(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest("POST", "/decisions/pre-dispatch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestGateHandler_Dispatch(t *testing.T) {
	app := newTestApp()

	status, body := postDecision(t, app, `{
		"shipment_id": "SHP001",
		"risk_score": 40,
		"weather_impact_factor": 30,
		"address_confidence_score": 85
	}`)
	require.Equal(t, fiber.StatusOK, status)

	var resp DecisionResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "SHP001", resp.ShipmentID)
	assert.Equal(t, domain.DecisionDispatch, resp.Decision)
	assert.Empty(t, resp.Reasons)
	assert.False(t, resp.NotifyCustomer)
	assert.Empty(t, resp.RescheduleOptions)
	assert.Equal(t, "✅ DISPATCH: All signals safe. Proceed with normal delivery.", resp.Explanation)
}

func TestGateHandler_Reschedule(t *testing.T) {
	app := newTestApp()

	status, body := postDecision(t, app, `{
		"shipment_id": "SHP002",
		"risk_score": 40,
		"weather_impact_factor": 30,
		"address_confidence_score": 45
	}`)
	require.Equal(t, fiber.StatusOK, status)

	var resp DecisionResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, domain.DecisionReschedule, resp.Decision)
	assert.Equal(t, []string{"Low address confidence"}, resp.Reasons)
	assert.True(t, resp.NotifyCustomer)
	assert.Len(t, resp.RescheduleOptions, 4)
	assert.Contains(t, resp.CustomerMessage, "We need your confirmation")
}

func TestGateHandler_MissingShipmentID(t *testing.T) {
	app := newTestApp()

	status, body := postDecision(t, app, `{"risk_score": 40}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "shipment_id is required", errResp.Message)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

func TestGateHandler_ScoreOutOfRange(t *testing.T) {
	app := newTestApp()

	status, body := postDecision(t, app, `{
		"shipment_id": "SHP003",
		"risk_score": 140,
		"weather_impact_factor": 30,
		"address_confidence_score": 85
	}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "risk_score must be between 0 and 100", errResp.Message)
}
