package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/features/override/adapters"
	"dispatch-control/internal/features/override/domain"
	"dispatch-control/internal/features/override/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := adapters.NewMemoryStore()
	clk := clock.NewManual(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	svc := service.NewService(store, clk)
	handler := NewOverrideHandler(svc, clk)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/overrides/apply", handler.Apply)
	app.Get("/overrides/lock/:id", handler.CheckLock)
	app.Delete("/overrides/lock/:id", handler.Unlock)
	app.Get("/overrides/history", handler.GetHistory)
	app.Get("/overrides/reasons", handler.GetReasons)
	app.Get("/overrides/stats", handler.GetStats)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	return resp
}

func TestOverrideHandler_Apply_Overridden(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/overrides/apply", `{
		"shipment_id": "SHP001",
		"ai_decision": "DELAY",
		"override_decision": "DISPATCH",
		"override_reason": "Local knowledge"
	}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result ApplyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "SHP001", result.ShipmentID)
	assert.Equal(t, domain.OutcomeOverridden, result.Status)
	assert.Equal(t, domain.DecisionDispatch, result.FinalDecision)
	assert.True(t, result.Locked)
	assert.False(t, result.Timestamp.IsZero())

	lockResp := get(t, app, "/overrides/lock/SHP001")
	require.Equal(t, fiber.StatusOK, lockResp.StatusCode)

	var lock LockResponse
	require.NoError(t, json.NewDecoder(lockResp.Body).Decode(&lock))
	assert.True(t, lock.Locked)
}

func TestOverrideHandler_Apply_Agreement(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/overrides/apply", `{
		"shipment_id": "SHP002",
		"ai_decision": "DISPATCH",
		"override_decision": "DISPATCH",
		"override_reason": "Manager experience"
	}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result ApplyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, domain.OutcomeNoOverride, result.Status)
	assert.False(t, result.Locked)

	var lock LockResponse
	lockResp := get(t, app, "/overrides/lock/SHP002")
	require.NoError(t, json.NewDecoder(lockResp.Body).Decode(&lock))
	assert.False(t, lock.Locked, "agreement must not lock the shipment")
}

func TestOverrideHandler_Apply_Validation(t *testing.T) {
	app := newTestApp(t)

	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{
			"MissingShipmentID",
			`{"ai_decision": "DELAY", "override_decision": "DISPATCH", "override_reason": "Local knowledge"}`,
			"shipment_id is required",
		},
		{
			"ReasonOutsideCatalog",
			`{"shipment_id": "SHP003", "ai_decision": "DELAY", "override_decision": "DISPATCH", "override_reason": "Felt like it"}`,
			"override_reason must come from the reason catalog, see GET /overrides/reasons",
		},
		{
			"UnknownDecision",
			`{"shipment_id": "SHP003", "ai_decision": "DELAY", "override_decision": "LAUNCH", "override_reason": "Local knowledge"}`,
			"ai_decision and override_decision must be one of: DISPATCH, DELAY, RESCHEDULE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, "/overrides/apply", tc.body)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var errResp ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, tc.message, errResp.Message)
			assert.Equal(t, "test-ray-id", errResp.RayID)
		})
	}
}

func TestOverrideHandler_Unlock(t *testing.T) {
	app := newTestApp(t)

	postJSON(t, app, "/overrides/apply", `{
		"shipment_id": "SHP004",
		"ai_decision": "DISPATCH",
		"override_decision": "RESCHEDULE",
		"override_reason": "Temporary road closure"
	}`)

	req := httptest.NewRequest("DELETE", "/overrides/lock/SHP004", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var unlock UnlockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&unlock))
	assert.Equal(t, "SHP004", unlock.ShipmentID)
	assert.Equal(t, 1, unlock.RecordsRemoved)

	var lock LockResponse
	lockResp := get(t, app, "/overrides/lock/SHP004")
	require.NoError(t, json.NewDecoder(lockResp.Body).Decode(&lock))
	assert.False(t, lock.Locked)
}

func TestOverrideHandler_Unlock_NotFound(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("DELETE", "/overrides/lock/SHP404", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "no override found for SHP404", errResp.Message)
}

func TestOverrideHandler_GetHistory(t *testing.T) {
	app := newTestApp(t)

	postJSON(t, app, "/overrides/apply", `{
		"shipment_id": "SHP005",
		"ai_decision": "DELAY",
		"override_decision": "DISPATCH",
		"override_reason": "Local knowledge"
	}`)
	postJSON(t, app, "/overrides/apply", `{
		"shipment_id": "SHP006",
		"ai_decision": "RESCHEDULE",
		"override_decision": "DELAY",
		"override_reason": "Manager experience"
	}`)

	resp := get(t, app, "/overrides/history?shipment_id=SHP005")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var history HistoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	assert.Equal(t, "SHP005", history.ShipmentID)
	assert.Equal(t, 1, history.TotalCount)
	require.Len(t, history.Overrides, 1)
	assert.Equal(t, "Local knowledge", history.Overrides[0].Reason)

	all := get(t, app, "/overrides/history")
	require.Equal(t, fiber.StatusOK, all.StatusCode)

	require.NoError(t, json.NewDecoder(all.Body).Decode(&history))
	assert.Empty(t, history.ShipmentID)
	assert.Equal(t, 2, history.TotalCount)
}

func TestOverrideHandler_GetReasons(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/overrides/reasons")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reasons ReasonsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reasons))
	assert.Equal(t, 6, reasons.Count)
	assert.Equal(t, domain.Reasons(), reasons.Reasons)
}

func TestOverrideHandler_GetStats(t *testing.T) {
	app := newTestApp(t)

	postJSON(t, app, "/overrides/apply", `{
		"shipment_id": "SHP007",
		"ai_decision": "DELAY",
		"override_decision": "DISPATCH",
		"override_reason": "Local knowledge"
	}`)
	postJSON(t, app, "/overrides/apply", `{
		"shipment_id": "SHP008",
		"ai_decision": "DELAY",
		"override_decision": "DISPATCH",
		"override_reason": "Local knowledge"
	}`)

	resp := get(t, app, "/overrides/stats")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats domain.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 2, stats.TotalOverrides)
	assert.Equal(t, "Local knowledge", stats.MostCommonReason)
	assert.Equal(t, 2, stats.ToDispatch)
}
