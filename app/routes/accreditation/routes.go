package accreditation

import (
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAccreditationRoutes(app *fiber.App) {
	api := app.Group("/api/accreditation")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetAccreditationsAPI)
	api.Put("/", UpdateAccreditationsAPI)
}

func GetAccreditationsAPI(c *fiber.Ctx) error {
	filters := database.AccreditationFilters{
		Kind:       c.Query("kind"),
		Department: c.Query("department"),
		Year:       c.QueryInt("year", 0),
		Term:       c.Query("term"),
		Accredited: c.Query("accredited"),
	}

	rows, err := database.ListAccreditations(config.GetDB(), config.GetDriver(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch accreditations"})
	}
	return c.JSON(fiber.Map{"success": true, "enrollments": rows, "count": len(rows)})
}

// UpdateAccreditationsAPI applies the review screen's True/False edits in one
// batch.
func UpdateAccreditationsAPI(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Items []database.AccreditationUpdate `json:"items"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}
	if len(req.Items) == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "No items to update"})
	}

	if err := database.UpdateAccreditations(config.GetDB(), config.GetDriver(), req.Items); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update accreditations"})
	}
	return c.JSON(fiber.Map{"success": true, "updated": len(req.Items)})
}
