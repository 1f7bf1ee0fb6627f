package main

import (
	"log"
	"os"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/accreditation"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/auth"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/courses"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/departments"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/imports"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/metrics"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/settings"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/routes/teachers"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// errorHandler renders every unhandled error as the uniform JSON envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB(), config.GetDriver()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background maintenance
	services.StartScheduler(config.GetDB(), config.GetDriver())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    25 * 1024 * 1024, // roster workbooks can be large
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	imports.SetupImportsRoutes(app)
	teachers.SetupTeachersRoutes(app)
	courses.SetupCoursesRoutes(app)
	departments.SetupDepartmentsRoutes(app)
	accreditation.SetupAccreditationRoutes(app)
	settings.SetupSettingsRoutes(app)
	metrics.SetupMetricsRoutes(app)

	// Catch-all for unknown routes (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
