package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/service"
)

// Deps are the collaborators the routes need.
type Deps struct {
	DB             *sql.DB
	Storage        Pinger
	Service        service.ResumeService
	Formats        []string
	MaxUploadBytes int64
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/", Home())
	app.Get("/health", HealthCheck(d.DB, d.Storage))
	app.Get("/healthz", LivenessProbe())
	app.Get("/supported-formats", SupportedFormats(d.Formats, d.MaxUploadBytes))

	app.Post("/analyze-resume", AnalyzeResume(d.Service))
	app.Post("/analyze-text", AnalyzeText(d.Service))

	app.Get("/resumes", ListResumes(d.Service))
	app.Get("/resumes/:id", GetResume(d.Service))
	app.Get("/resumes/:id/download", DownloadResume(d.Service))
	app.Post("/resumes/:id/reanalyze", ReanalyzeResume(d.Service))
	app.Delete("/resumes/:id", DeleteResume(d.Service))
}
