package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler dipasang di fiber.Config. Semua error keluar lewat JsonError /
// JsonValidationError supaya bentuk response konsisten.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fields, ok := ValidationErrorsMap(err); ok {
		return JsonValidationError(c, fields)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "")
}
