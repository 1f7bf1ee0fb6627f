package settings

import (
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSettingsAPI)
	api.Put("/", SaveSettingsAPI)
}

func GetSettingsAPI(c *fiber.Ctx) error {
	settings, err := database.GetSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "No se encontró configuración inicial."})
	}
	return c.JSON(fiber.Map{"success": true, "settings": settings})
}

func SaveSettingsAPI(c *fiber.Ctx) error {
	var req models.SystemSettings
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}
	if req.Year <= 0 || req.Term == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Year and term are required"})
	}

	if err := database.SaveSettings(config.GetDB(), config.GetDriver(), &req); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save settings"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Datos guardados correctamente."})
}
