package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// Pinger is a dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Home godoc
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func Home() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "resumeapi",
			"message": "Resume analysis API is running",
			"endpoints": []string{
				"POST /analyze-resume",
				"POST /analyze-text",
				"GET /resumes",
				"GET /supported-formats",
				"GET /health",
			},
		})
	}
}

// HealthCheck godoc
// @Summary Readiness check
// @Description Pings the database and, when configured, object storage.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB, store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		if store != nil {
			if err := store.Ping(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags meta
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// SupportedFormats godoc
// @Summary Accepted upload formats
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /supported-formats [get]
func SupportedFormats(formats []string, maxUploadBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"supported_formats": formats,
			"max_file_size_mb":  maxUploadBytes >> 20,
		})
	}
}
