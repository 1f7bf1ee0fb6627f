package imports

import (
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupImportsRoutes(app *fiber.App) {
	api := app.Group("/api/imports")
	api.Use(auth.AuthMiddleware)
	api.Post("/catalog", ImportCatalogAPI)
	api.Post("/affiliated", ImportAffiliatedAPI)
	api.Post("/preregistration", ImportPreregistrationAPI)
}
