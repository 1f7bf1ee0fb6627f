package departments

import (
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDepartmentsRoutes(app *fiber.App) {
	api := app.Group("/api/departments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetDepartmentsAPI)
}

func GetDepartmentsAPI(c *fiber.Ctx) error {
	departments, err := database.ListDepartments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch departments"})
	}
	return c.JSON(fiber.Map{"success": true, "departments": departments, "count": len(departments)})
}
