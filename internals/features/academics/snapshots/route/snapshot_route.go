package route

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jntuh_insights_backend/internals/features/academics/service"
	"jntuh_insights_backend/internals/features/academics/snapshots/controller"
	"jntuh_insights_backend/internals/middlewares"
)

// /snapshots hanya dipasang kalau DB tersedia
func SnapshotRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, summaries *service.SummaryService, ttl time.Duration) {
	ctl := controller.NewSnapshotController(db, v, summaries, ttl)

	g := api.Group("/snapshots", middlewares.SnapshotWriteLimiter())
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/summary", ctl.Summary)
	g.Delete("/:id", ctl.Delete)
}
