package routes

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jntuh_insights_backend/internals/configs"
	"jntuh_insights_backend/internals/features/academics/service"
)

func TestSetupRoutesWithoutDB(t *testing.T) {
	summaries, err := service.NewSummaryService(8)
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, nil, configs.Settings{RateLimitMax: 100}, summaries)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Disabled", body["database"])
	assert.Contains(t, body, "summary_cache")

	resp, err = app.Test(httptest.NewRequest("GET", "/api/academics/regulations", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// snapshot routes tidak dipasang tanpa DB
	resp, err = app.Test(httptest.NewRequest("GET", "/api/academics/snapshots/00000000-0000-0000-0000-000000000000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
