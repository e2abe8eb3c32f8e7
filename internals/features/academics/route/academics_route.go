package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"jntuh_insights_backend/internals/features/academics/controller"
	"jntuh_insights_backend/internals/features/academics/service"
)

// Semua endpoint kalkulasi bersifat publik dan stateless.
func AcademicsRoutes(api fiber.Router, v *validator.Validate, summaries *service.SummaryService) {
	ctl := controller.NewAcademicsController(v, summaries)

	api.Post("/calculate/sgpa", ctl.CalculateSGPA)
	api.Post("/summary", ctl.Summary)
	api.Post("/goal", ctl.Goal)
	api.Post("/what-if", ctl.WhatIf)
	api.Post("/insights", ctl.Insights)
	api.Post("/eligibility", ctl.Eligibility)

	api.Get("/percentage", ctl.Percentage)
	api.Get("/regulations", ctl.Regulations)
	api.Get("/companies", ctl.Companies)

	api.Post("/export/csv", ctl.ExportCSV)
	api.Post("/import/csv", ctl.ImportCSV)
	api.Post("/share", ctl.Share)
	api.Get("/share/:token", ctl.OpenShare)
}
