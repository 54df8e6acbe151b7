package tracker

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"craft-planner/core/inventory"
	"craft-planner/core/procurement"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(svc *Service) *fiber.App {
	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func putOwned(t *testing.T, app *fiber.App, path, body string) int {
	req := httptest.NewRequest("PUT", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestHandleTracker(t *testing.T) {
	app := setupTestApp(newTestService(t))

	assert.Equal(t, 200, putOwned(t, app, "/tracker/3/items/4", `{"quantity": 2}`))

	resp, err := app.Test(httptest.NewRequest("GET", "/tracker/3", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report TrackerReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Len(t, report.Materials, 3)
	assert.Equal(t, 25.0, report.KnownTotal)
	require.Len(t, report.Purchases, 1)
	assert.Equal(t, potion, report.Purchases[0].ID)
}

func TestHandlePlan(t *testing.T) {
	app := setupTestApp(newTestService(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/tracker/1/plan?qty=2", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report PlanReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 2, report.Quantity)
	assert.Equal(t, []PurchaseRow{{ID: herb, Name: "Herb", Quantity: 6, UnitPrice: ptr(10), Origin: "Odin", Total: ptr(60)}}, report.Purchases)

	t.Run("Bad quantity", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/tracker/1/plan?qty=0", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleSetOwned(t *testing.T) {
	app := setupTestApp(newTestService(t))

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"Valid", "/tracker/3/items/2", `{"quantity": 2.5}`, 200},
		{"Missing quantity", "/tracker/3/items/2", `{}`, 400},
		{"Malformed body", "/tracker/3/items/2", `{`, 400},
		{"Not a material", "/tracker/3/items/9", `{"quantity": 1}`, 400},
		{"Bad item id", "/tracker/3/items/x", `{"quantity": 1}`, 400},
		{"Root without recipe", "/tracker/2/items/1", `{"quantity": 1}`, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, putOwned(t, app, tt.path, tt.body))
		})
	}
}

func TestHandleClear(t *testing.T) {
	svc := newTestService(t)
	app := setupTestApp(svc)
	require.Equal(t, 200, putOwned(t, app, "/tracker/3/items/2", `{"quantity": 1}`))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/tracker/3", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	owned, err := svc.Owned(t.Context(), elixir)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestHandler_WithoutDatabase(t *testing.T) {
	svc := NewService(testSource(), testPrices(), inventory.NewStore(nil), procurement.Config{}, zap.NewNop())
	app := setupTestApp(svc)

	assert.Equal(t, 503, putOwned(t, app, "/tracker/3/items/2", `{"quantity": 1}`))

	resp, err := app.Test(httptest.NewRequest("GET", "/tracker/3", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func ptr(f float64) *float64 {
	return &f
}
