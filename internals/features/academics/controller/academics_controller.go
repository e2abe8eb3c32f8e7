// file: internals/features/academics/controller/academics_controller.go
package controller

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"jntuh_insights_backend/internals/features/academics/dto"
	"jntuh_insights_backend/internals/features/academics/engine"
	"jntuh_insights_backend/internals/features/academics/export"
	"jntuh_insights_backend/internals/features/academics/service"
	helper "jntuh_insights_backend/internals/helpers"
)

const maxCSVBytes = 1 << 20

/* =======================================================
   CONTROLLER
   ======================================================= */

type AcademicsController struct {
	Validate  *validator.Validate
	Summaries *service.SummaryService
}

func NewAcademicsController(v *validator.Validate, summaries *service.SummaryService) *AcademicsController {
	return &AcademicsController{Validate: v, Summaries: summaries}
}

/* ===================== CALCULATIONS ===================== */

// POST /calculate/sgpa
func (ctl *AcademicsController) CalculateSGPA(c *fiber.Ctx) error {
	var req dto.SGPARequest
	if err := ctl.bind(c, &req); err != nil {
		return err
	}
	subjects, err := dto.ToSubjects(req.Subjects, "s")
	if err != nil {
		return engineError(err)
	}
	res := engine.ComputeSGPA(subjects)
	return helper.JsonOK(c, "ok", fiber.Map{
		"result":     res,
		"percentage": engine.PercentageFromGPA(res.SGPA),
	})
}

// POST /summary
func (ctl *AcademicsController) Summary(c *fiber.Ctx) error {
	rec, err := ctl.bindRecord(c)
	if err != nil {
		return err
	}
	sum, err := ctl.Summaries.Summarize(rec)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", sum)
}

// POST /goal
func (ctl *AcademicsController) Goal(c *fiber.Ctx) error {
	var req dto.GoalRequest
	if err := ctl.bind(c, &req); err != nil {
		return err
	}
	rec, err := req.Record.ToRecord()
	if err != nil {
		return engineError(err)
	}
	res, err := engine.RequiredSGPA(rec.Semesters, req.TargetCGPA, req.RemainingSemesters, req.CreditsPerSemester)
	if err != nil {
		return engineError(err)
	}
	return helper.JsonOK(c, "ok", res)
}

// POST /what-if
func (ctl *AcademicsController) WhatIf(c *fiber.Ctx) error {
	var req dto.WhatIfRequest
	if err := ctl.bind(c, &req); err != nil {
		return err
	}
	rec, err := req.Record.ToRecord()
	if err != nil {
		return engineError(err)
	}
	grade, err := engine.ParseGrade(req.Grade)
	if err != nil {
		return engineError(err)
	}
	res, err := engine.Simulate(rec, req.SemesterID, req.SubjectID, grade)
	if err != nil {
		return engineError(err)
	}
	return helper.JsonOK(c, "ok", res)
}

// POST /insights
func (ctl *AcademicsController) Insights(c *fiber.Ctx) error {
	rec, err := ctl.bindRecord(c)
	if err != nil {
		return err
	}
	seq := engine.SGPASequence(rec.Semesters)
	out := fiber.Map{
		"trend":       engine.AnalyzeTrend(seq),
		"consistency": engine.AnalyzeConsistency(rec.Semesters),
	}
	if p, ok := engine.PredictNextSGPA(seq); ok {
		out["prediction"] = p
	}
	return helper.JsonOK(c, "ok", out)
}

// POST /eligibility
func (ctl *AcademicsController) Eligibility(c *fiber.Ctx) error {
	var req dto.EligibilityRequest
	if err := ctl.bind(c, &req); err != nil {
		return err
	}
	rec, err := req.Record.ToRecord()
	if err != nil {
		return engineError(err)
	}
	res, err := service.CheckRecordEligibility(rec, req.Company, req.Cutoff)
	if err != nil {
		return engineError(err)
	}
	return helper.JsonOK(c, "ok", res)
}

/* ===================== LOOKUPS ===================== */

// GET /percentage?gpa=
func (ctl *AcademicsController) Percentage(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("gpa"))
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query gpa wajib diisi")
	}
	gpa, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(gpa) || math.IsInf(gpa, 0) {
		return fiber.NewError(fiber.StatusBadRequest, "Query gpa harus angka")
	}
	// di luar 0..10 menghasilkan 0, bukan error
	return helper.JsonOK(c, "ok", dto.PercentageResponse{GPA: gpa, Percentage: engine.PercentageFromGPA(gpa)})
}

// GET /regulations
func (ctl *AcademicsController) Regulations(c *fiber.Ctx) error {
	regs := engine.Regulations()
	out := make([]dto.RegulationResponse, 0, len(regs))
	for _, r := range regs {
		credits, _ := engine.RequiredCredits(r)
		out = append(out, dto.RegulationResponse{Regulation: string(r), RequiredCredits: credits})
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /companies
func (ctl *AcademicsController) Companies(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", engine.Companies())
}

/* ===================== EXPORT / SHARE ===================== */

// POST /export/csv
func (ctl *AcademicsController) ExportCSV(c *fiber.Ctx) error {
	rec, err := ctl.bindRecord(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rec); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Attachment(export.FileName(rec))
	return c.Send(buf.Bytes())
}

// POST /import/csv (body mentah text/csv atau multipart field "file")
func (ctl *AcademicsController) ImportCSV(c *fiber.Ctx) error {
	var src io.Reader = bytes.NewReader(c.Body())

	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Field file wajib diisi")
		}
		if fh.Size > maxCSVBytes {
			return fiber.NewError(fiber.StatusRequestEntityTooLarge, "File CSV terlalu besar")
		}
		f, err := fh.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File tidak bisa dibaca")
		}
		defer f.Close()
		src = f
	} else if len(c.Body()) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Body CSV kosong")
	} else if len(c.Body()) > maxCSVBytes {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "File CSV terlalu besar")
	}

	rec, err := export.ReadCSV(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "CSV berhasil diimpor", dto.FromRecord(rec))
}

// POST /share
func (ctl *AcademicsController) Share(c *fiber.Ctx) error {
	rec, err := ctl.bindRecord(c)
	if err != nil {
		return err
	}
	token, err := export.EncodeShareToken(rec)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Token dibuat", dto.ShareResponse{Token: token})
}

// GET /share/:token
func (ctl *AcademicsController) OpenShare(c *fiber.Ctx) error {
	rec, err := export.DecodeShareToken(c.Params("token"))
	if err != nil {
		return engineError(err)
	}
	return helper.JsonOK(c, "ok", dto.FromRecord(rec))
}

/* =======================================================
   HELPERS
   ======================================================= */

type normalizer interface{ Normalize() }

// bind: BodyParser → Normalize (kalau ada) → validate.
func (ctl *AcademicsController) bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	if n, ok := out.(normalizer); ok {
		n.Normalize()
	}
	return ctl.Validate.Struct(out)
}

func (ctl *AcademicsController) bindRecord(c *fiber.Ctx) (engine.AcademicRecord, error) {
	var req dto.RecordInput
	if err := ctl.bind(c, &req); err != nil {
		return engine.AcademicRecord{}, err
	}
	rec, err := req.ToRecord()
	if err != nil {
		return engine.AcademicRecord{}, engineError(err)
	}
	return rec, nil
}

// engineError memetakan error domain ke status HTTP.
func engineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrSemesterNotFound),
		errors.Is(err, engine.ErrSubjectNotFound),
		errors.Is(err, service.ErrCompanyNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		// ErrInvalidGrade, ErrInvalidGoal, ErrInvalidShareToken, slot duplikat
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
}
