// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jntuh_insights_backend/internals/configs"
	academicsRoute "jntuh_insights_backend/internals/features/academics/route"
	"jntuh_insights_backend/internals/features/academics/service"
	snapshotRoute "jntuh_insights_backend/internals/features/academics/snapshots/route"
	"jntuh_insights_backend/internals/middlewares"
)

var startTime time.Time

// SetupRoutes memasang semua route. db boleh nil (snapshot dimatikan).
func SetupRoutes(app *fiber.App, db *gorm.DB, s configs.Settings, summaries *service.SummaryService) {
	startTime = time.Now()
	v := validator.New()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, summaries)

	api := app.Group("/api/academics", middlewares.GlobalRateLimiter(s.RateLimitMax))

	log.Println("[INFO] Mounting Academics routes...")
	academicsRoute.AcademicsRoutes(api, v, summaries)

	if db != nil {
		log.Println("[INFO] Mounting Snapshot routes...")
		snapshotRoute.SnapshotRoutes(api, db, v, summaries, s.SnapshotTTL())
	} else {
		log.Println("[INFO] Snapshot routes dilewati (tanpa DB).")
	}
}
