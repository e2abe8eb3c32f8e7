package helper

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type semesterForm struct {
	Year  int    `validate:"min=1,max=4"`
	Grade string `validate:"required,oneof=O A"`
}

func decode(t *testing.T, app *fiber.App, path string) (int, ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var out ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "tidak ada")
	})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return validator.New().Struct(semesterForm{Year: 9})
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	status, body := decode(t, app, "/fiber")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.ErrorCode)
	assert.Equal(t, "tidak ada", body.Message)

	status, body = decode(t, app, "/validation")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, []string{"maksimal 4"}, body.Errors["Year"])
	assert.Equal(t, []string{"wajib diisi"}, body.Errors["Grade"])

	status, body = decode(t, app, "/plain")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", body.ErrorCode)
	assert.NotContains(t, body.Message, "boom")

	status, body = decode(t, app, "/missing")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, body.Success)
}

func TestValidationErrorsMapIgnoresOtherErrors(t *testing.T) {
	_, ok := ValidationErrorsMap(errors.New("x"))
	assert.False(t, ok)
}
