package metrics

import (
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupMetricsRoutes(app *fiber.App) {
	api := app.Group("/api/metrics")
	api.Use(auth.AuthMiddleware)
	api.Get("/summary", GetSummaryAPI)
}

func GetSummaryAPI(c *fiber.Ctx) error {
	filters := database.MetricsFilters{
		Kind:       c.Query("kind"),
		Year:       c.QueryInt("year", 0),
		Term:       c.Query("term"),
		Department: c.Query("department"),
	}
	summary, err := database.GetMetricsSummary(config.GetDB(), config.GetDriver(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to compute metrics"})
	}
	return c.JSON(fiber.Map{"success": true, "summary": summary})
}
