// file: internals/features/academics/snapshots/dto/snapshot_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	academicsDTO "jntuh_insights_backend/internals/features/academics/dto"
	"jntuh_insights_backend/internals/features/academics/snapshots/model"
)

type SnapshotResponse struct {
	ID         uuid.UUID `json:"id"`
	Regulation string    `json:"regulation"`
	HallTicket *string   `json:"hall_ticket,omitempty"`
	CGPA       float64   `json:"cgpa"`
	Backlogs   []string  `json:"backlogs"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`

	Record *academicsDTO.RecordInput `json:"record,omitempty"`
}

func ToSnapshotResponse(m model.AcademicSnapshotModel) SnapshotResponse {
	backlogs := []string(m.AcademicSnapshotBacklogs)
	if backlogs == nil {
		backlogs = []string{}
	}
	return SnapshotResponse{
		ID:         m.AcademicSnapshotID,
		Regulation: m.AcademicSnapshotRegulation,
		HallTicket: m.AcademicSnapshotHallTicket,
		CGPA:       m.AcademicSnapshotCGPA,
		Backlogs:   backlogs,
		ExpiresAt:  m.AcademicSnapshotExpiresAt,
		CreatedAt:  m.AcademicSnapshotCreatedAt,
	}
}
