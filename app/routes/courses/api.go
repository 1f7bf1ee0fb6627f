package courses

import (
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetCoursesAPI(c *fiber.Ctx) error {
	filters := database.CourseFilters{
		Kind: c.Query("kind"),
		Year: c.QueryInt("year", 0),
		Term: c.Query("term"),
	}

	courses, err := database.ListCourses(config.GetDB(), config.GetDriver(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch courses"})
	}
	return c.JSON(fiber.Map{"success": true, "courses": courses, "count": len(courses)})
}

// UpdateCourseAPI is the maintenance edit path for hours, facilitator,
// competencies and term. Codes and the (name, year) key are immutable.
func UpdateCourseAPI(c *fiber.Ctx) error {
	type UpdateCourseRequest struct {
		Hours        int    `json:"hours"`
		Competencies string `json:"competencies"`
		Facilitator  string `json:"facilitator"`
		Term         string `json:"term"`
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}
	if req.Hours <= 0 {
		req.Hours = models.DefaultCourseHours
	}

	course := &models.Course{
		Code:         c.Params("code"),
		Hours:        req.Hours,
		Competencies: req.Competencies,
		Facilitator:  req.Facilitator,
		Term:         req.Term,
	}

	if err := database.UpdateCourse(config.GetDB(), config.GetDriver(), course); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update course"})
	}
	return c.JSON(fiber.Map{"success": true, "course": course})
}
