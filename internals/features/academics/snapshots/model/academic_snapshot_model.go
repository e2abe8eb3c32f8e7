// file: internals/features/academics/snapshots/model/academic_snapshot_model.go
package model

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"jntuh_insights_backend/internals/features/academics/engine"
)

type AcademicSnapshotModel struct {
	AcademicSnapshotID          uuid.UUID      `gorm:"column:academic_snapshot_id;type:uuid;primaryKey" json:"academic_snapshot_id"`
	AcademicSnapshotRegulation  string         `gorm:"column:academic_snapshot_regulation;type:varchar(8)" json:"academic_snapshot_regulation"`
	AcademicSnapshotHallTicket  *string        `gorm:"column:academic_snapshot_hall_ticket;type:varchar(20)" json:"academic_snapshot_hall_ticket,omitempty"`
	AcademicSnapshotFingerprint string         `gorm:"column:academic_snapshot_fingerprint;type:char(64);not null;index" json:"academic_snapshot_fingerprint"`
	AcademicSnapshotCGPA        float64        `gorm:"column:academic_snapshot_cgpa;type:numeric(4,2);not null;default:0" json:"academic_snapshot_cgpa"`
	AcademicSnapshotBacklogs    pq.StringArray `gorm:"column:academic_snapshot_backlogs;type:text[]" json:"academic_snapshot_backlogs"`

	// record lengkap (engine.AcademicRecord) dalam bentuk JSON
	AcademicSnapshotPayload datatypes.JSON `gorm:"column:academic_snapshot_payload;type:jsonb;not null" json:"-"`

	AcademicSnapshotExpiresAt time.Time `gorm:"column:academic_snapshot_expires_at;not null;index" json:"academic_snapshot_expires_at"`
	AcademicSnapshotCreatedAt time.Time `gorm:"column:academic_snapshot_created_at;autoCreateTime" json:"academic_snapshot_created_at"`
}

func (AcademicSnapshotModel) TableName() string { return "academic_snapshots" }

func (m *AcademicSnapshotModel) BeforeCreate(tx *gorm.DB) error {
	if m.AcademicSnapshotID == uuid.Nil {
		m.AcademicSnapshotID = uuid.New()
	}
	return nil
}

// NewSnapshot membekukan record; backlog disimpan sebagai kode (atau nama bila kode kosong).
func NewSnapshot(rec engine.AcademicRecord, fingerprint string, ttl time.Duration, now time.Time) (AcademicSnapshotModel, error) {
	raw, err := sonic.Marshal(rec)
	if err != nil {
		return AcademicSnapshotModel{}, fmt.Errorf("marshal record: %w", err)
	}

	backlogs := pq.StringArray{}
	for _, b := range engine.Backlogs(rec.Semesters) {
		ref := b.SubjectCode
		if ref == "" {
			ref = b.SubjectName
		}
		backlogs = append(backlogs, ref)
	}

	m := AcademicSnapshotModel{
		AcademicSnapshotRegulation:  string(rec.Regulation),
		AcademicSnapshotFingerprint: fingerprint,
		AcademicSnapshotCGPA:        engine.DisplayCGPA(rec).CGPA,
		AcademicSnapshotBacklogs:    backlogs,
		AcademicSnapshotPayload:     datatypes.JSON(raw),
		AcademicSnapshotExpiresAt:   now.Add(ttl),
	}
	if rec.HallTicket != "" {
		ht := rec.HallTicket
		m.AcademicSnapshotHallTicket = &ht
	}
	return m, nil
}

func (m AcademicSnapshotModel) Record() (engine.AcademicRecord, error) {
	var rec engine.AcademicRecord
	if err := sonic.Unmarshal(m.AcademicSnapshotPayload, &rec); err != nil {
		return engine.AcademicRecord{}, fmt.Errorf("unmarshal snapshot %s: %w", m.AcademicSnapshotID, err)
	}
	return rec, nil
}

func (m AcademicSnapshotModel) Expired(now time.Time) bool {
	return !now.Before(m.AcademicSnapshotExpiresAt)
}
