package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"resumeapi/docs"
)

// RegisterSwagger serves the Swagger UI and document under /swagger/.
// host is written into the document once, before any request is served;
// an empty host makes the UI call whichever origin served it.
func RegisterSwagger(app *fiber.App, host string) {
	docs.SwaggerInfo.Host = host
	app.Get("/swagger/*", swagger.HandlerDefault)
}
