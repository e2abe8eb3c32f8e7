package routes

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	database "jntuh_insights_backend/internals/databases"
	"jntuh_insights_backend/internals/features/academics/service"
)

func BaseRoutes(app *fiber.App, summaries *service.SummaryService) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("JNTUH academic insights API 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Disabled"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if database.DB != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			dbStatus = "Connected"
			if err := database.Ping(ctx); err != nil {
				dbStatus = "Database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		body := fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		}
		if summaries != nil {
			body["summary_cache"] = summaries.Stats()
		}
		return c.Status(httpStatus).JSON(body)
	})
}
