package courses

import (
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupCoursesRoutes(app *fiber.App) {
	api := app.Group("/api/courses")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetCoursesAPI)
	api.Put("/:code", UpdateCourseAPI)
}
