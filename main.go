package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"jntuh_insights_backend/internals/configs"
	database "jntuh_insights_backend/internals/databases"
	"jntuh_insights_backend/internals/features/academics/service"
	snapshotModel "jntuh_insights_backend/internals/features/academics/snapshots/model"
	"jntuh_insights_backend/internals/features/academics/snapshots/scheduler"
	helper "jntuh_insights_backend/internals/helpers"
	middlewares "jntuh_insights_backend/internals/middlewares"
	routes "jntuh_insights_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	settings := configs.Env

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		BodyLimit:               2 * 1024 * 1024,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(middlewares.RequestID(5 * time.Second))
	middlewares.SetupMiddlewares(app, settings)

	// 🔌 DB (opsional) + migrasi snapshot
	database.ConnectDB(settings)
	database.TunePool()
	database.Migrate(&snapshotModel.AcademicSnapshotModel{})

	// ⏱ reaper snapshot setelah DB siap
	if database.DB != nil && !scheduler.ValidSchedule(settings.SnapshotReaperCron) {
		log.Fatalf("❌ SNAPSHOT_REAPER_CRON tidak valid: %q", settings.SnapshotReaperCron)
	}
	reaper := scheduler.StartSnapshotReaper(database.DB, settings.SnapshotReaperCron)

	summaries, err := service.NewSummaryService(settings.SummaryCacheSize)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, settings, summaries)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", settings.Port)
		if err := app.Listen("0.0.0.0:" + settings.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if reaper != nil {
		<-reaper.Stop().Done()
	}
	database.Close()
}
