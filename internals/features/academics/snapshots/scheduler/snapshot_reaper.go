// file: internals/features/academics/snapshots/scheduler/snapshot_reaper.go
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"jntuh_insights_backend/internals/features/academics/snapshots/model"
)

// ── ENTRYPOINT: panggil dari main.go setelah DB siap
func StartSnapshotReaper(db *gorm.DB, schedule string) *cron.Cron {
	if db == nil {
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		n, err := ReapExpired(ctx, db, time.Now())
		if err != nil {
			log.Printf("[SNAPSHOT-REAPER] error: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[SNAPSHOT-REAPER] hard-deleted %d expired snapshots", n)
		}
	})
	if err != nil {
		log.Fatalf("[SNAPSHOT-REAPER] add cron gagal: %v", err)
	}
	log.Printf("[SNAPSHOT-REAPER] started schedule=%q", schedule)
	c.Start()
	return c
}

// ReapExpired menghapus snapshot yang expires_at-nya sudah lewat.
func ReapExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("academic_snapshot_expires_at <= ?", now).
		Delete(&model.AcademicSnapshotModel{})
	return res.RowsAffected, res.Error
}

// ValidSchedule dipakai saat startup untuk memeriksa SNAPSHOT_REAPER_CRON.
func ValidSchedule(schedule string) bool {
	_, err := cron.ParseStandard(schedule)
	return err == nil
}
