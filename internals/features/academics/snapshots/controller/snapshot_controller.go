// file: internals/features/academics/snapshots/controller/snapshot_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsDTO "jntuh_insights_backend/internals/features/academics/dto"
	"jntuh_insights_backend/internals/features/academics/service"
	"jntuh_insights_backend/internals/features/academics/snapshots/dto"
	"jntuh_insights_backend/internals/features/academics/snapshots/model"
	helper "jntuh_insights_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type SnapshotController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Summaries *service.SummaryService
	TTL       time.Duration

	now func() time.Time
}

func NewSnapshotController(db *gorm.DB, v *validator.Validate, summaries *service.SummaryService, ttl time.Duration) *SnapshotController {
	return &SnapshotController{DB: db, Validate: v, Summaries: summaries, TTL: ttl, now: time.Now}
}

// POST /snapshots
func (ctl *SnapshotController) Create(c *fiber.Ctx) error {
	var req academicsDTO.RecordInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return err
	}
	rec, err := req.ToRecord()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fingerprint, err := service.Fingerprint(rec)
	if err != nil {
		return err
	}
	m, err := model.NewSnapshot(rec, fingerprint, ctl.TTL, ctl.now())
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] create snapshot: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan snapshot")
	}

	return helper.JsonCreated(c, "Snapshot dibuat", dto.ToSnapshotResponse(m))
}

// GET /snapshots/:id
func (ctl *SnapshotController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.load(c)
	if err != nil {
		return err
	}
	rec, err := m.Record()
	if err != nil {
		return err
	}
	out := dto.ToSnapshotResponse(m)
	in := academicsDTO.FromRecord(rec)
	out.Record = &in
	return helper.JsonOK(c, "ok", out)
}

// GET /snapshots/:id/summary
func (ctl *SnapshotController) Summary(c *fiber.Ctx) error {
	m, err := ctl.load(c)
	if err != nil {
		return err
	}
	rec, err := m.Record()
	if err != nil {
		return err
	}
	sum, err := ctl.Summaries.Summarize(rec)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", sum)
}

// DELETE /snapshots/:id
func (ctl *SnapshotController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("academic_snapshot_id = ?", id).
		Delete(&model.AcademicSnapshotModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete snapshot %s: %v", id, res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus snapshot")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Snapshot tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Snapshot dihapus", fiber.Map{"id": id})
}

/* =======================================================
   HELPERS
   ======================================================= */

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID snapshot tidak valid")
	}
	return id, nil
}

// load mengambil snapshot yang belum kedaluwarsa.
func (ctl *SnapshotController) load(c *fiber.Ctx) (model.AcademicSnapshotModel, error) {
	id, err := parseID(c)
	if err != nil {
		return model.AcademicSnapshotModel{}, err
	}

	var m model.AcademicSnapshotModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("academic_snapshot_id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AcademicSnapshotModel{}, fiber.NewError(fiber.StatusNotFound, "Snapshot tidak ditemukan")
	}
	if err != nil {
		log.Printf("[ERROR] load snapshot %s: %v", id, err)
		return model.AcademicSnapshotModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil snapshot")
	}
	// baris kedaluwarsa tetap ada sampai reaper berikutnya jalan
	if m.Expired(ctl.now()) {
		return model.AcademicSnapshotModel{}, fiber.NewError(fiber.StatusNotFound, "Snapshot tidak ditemukan")
	}
	return m, nil
}
