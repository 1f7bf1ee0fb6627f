package imports

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/importer"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// saveUpload stores the multipart spreadsheet in a temp file and returns its
// path. The caller removes it when the pass finishes.
func saveUpload(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("no file uploaded")
	}
	path := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, path); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return path, nil
}

func ImportCatalogAPI(c *fiber.Ctx) error {
	path, err := saveUpload(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	defer os.Remove(path)

	engine := importer.NewEngine(config.GetDB(), config.GetDriver())
	stats, err := engine.ImportCatalog(path)
	if err != nil {
		log.Printf("Catalog import failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Catálogo importado: %d cursos nuevos.", stats.NewCourses),
		"stats":   stats,
	})
}

func ImportAffiliatedAPI(c *fiber.Ctx) error {
	path, err := saveUpload(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	defer os.Remove(path)

	engine := importer.NewEngine(config.GetDB(), config.GetDriver())
	stats, err := engine.ImportAffiliated(path)
	if err != nil {
		log.Printf("Affiliated import failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if stats.Total == 0 {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "No se encontraron nuevos docentes (todos ya existían).",
			"stats":   stats,
		})
	}

	details := make([]string, 0, len(stats.PerSheet))
	for _, s := range stats.PerSheet {
		details = append(details, fmt.Sprintf("%s: %d", s.Sheet, s.Added))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Se agregaron %d docentes. Detalle: %s", stats.Total, strings.Join(details, ", ")),
		"stats":   stats,
	})
}

func ImportPreregistrationAPI(c *fiber.Ctx) error {
	path, err := saveUpload(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	defer os.Remove(path)

	engine := importer.NewEngine(config.GetDB(), config.GetDriver())
	stats, err := engine.ImportPreregistration(path)
	if err != nil {
		log.Printf("Pre-registration import failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf(
			"Importación Pre-Registro exitosa: %d docentes nuevos, %d actualizados, %d cursos nuevos, %d inscripciones.",
			stats.NewTeachers, stats.UpdatedTeachers, stats.NewCourses, stats.NewEnrollments),
		"stats": stats,
	})
}
