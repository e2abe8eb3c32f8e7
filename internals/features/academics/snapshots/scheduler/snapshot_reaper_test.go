package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestValidSchedule(t *testing.T) {
	assert.True(t, ValidSchedule("@daily"))
	assert.True(t, ValidSchedule("15 2 * * *"))
	assert.True(t, ValidSchedule("@every 6h"))
	assert.False(t, ValidSchedule("every day"))
	assert.False(t, ValidSchedule("61 * * * *"))
}

func TestStartSnapshotReaperWithoutDB(t *testing.T) {
	assert.Nil(t, StartSnapshotReaper(nil, "@daily"))
}

func TestReapExpiredDeletesByExpiry(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 user=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	var stmt *gorm.Statement
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:record_delete", func(tx *gorm.DB) {
		stmt = tx.Statement
	}))

	now := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	n, err := ReapExpired(context.Background(), db, now)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NotNil(t, stmt)
	assert.Contains(t, stmt.SQL.String(), `DELETE FROM "academic_snapshots"`)
	assert.Contains(t, stmt.SQL.String(), "academic_snapshot_expires_at <= $1")
	assert.Equal(t, []interface{}{now}, stmt.Vars)
}
