package database

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"jntuh_insights_backend/internals/configs"
)

// DB nil berarti snapshot store tidak aktif.
var DB *gorm.DB

func ConnectDB(s configs.Settings) {
	if !s.SnapshotsEnabled() {
		log.Println("⏭️ DB_HOST kosong, lewati koneksi DB.")
		return
	}
	log.Println("🔌 Koneksi ke PostgreSQL...")

	db, err := configs.OpenDB(s)
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk model yang diberikan.
func Migrate(models ...any) {
	if DB == nil {
		return
	}
	if err := DB.AutoMigrate(models...); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Printf("✅ AutoMigrate %d model selesai.", len(models))
}

// Ping dipakai /health; tanpa DB selalu nil.
func Ping(ctx context.Context) error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
