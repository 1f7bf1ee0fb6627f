package teachers

import (
	"database/sql"
	"errors"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetTeachersAPI(c *fiber.Ctx) error {
	filters := database.TeacherFilters{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Sex:        c.Query("sex"),
		Limit:      c.QueryInt("limit", 0),
		Offset:     c.QueryInt("offset", 0),
	}

	teachers, err := database.ListTeachers(config.GetDB(), config.GetDriver(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teachers"})
	}
	return c.JSON(fiber.Map{"success": true, "teachers": teachers, "count": len(teachers)})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), config.GetDriver(), c.Params("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Teacher not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teacher"})
	}
	return c.JSON(fiber.Map{"success": true, "teacher": teacher})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	type UpdateTeacherRequest struct {
		RFC            string `json:"rfc"`
		Sex            string `json:"sex"`
		DepartmentCode string `json:"department_code"`
		JobTitle       string `json:"job_title"`
	}

	var req UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}

	teacher, err := database.GetTeacherByID(config.GetDB(), config.GetDriver(), c.Params("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Teacher not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teacher"})
	}

	if req.RFC != "" {
		teacher.RFC = req.RFC
	}
	if req.Sex != "" {
		teacher.Sex = models.Sex(req.Sex)
	}
	if req.DepartmentCode != "" {
		teacher.DepartmentCode = req.DepartmentCode
	}
	if req.JobTitle != "" {
		teacher.JobTitle = req.JobTitle
	}

	if err := database.UpdateTeacher(config.GetDB(), config.GetDriver(), teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update teacher"})
	}
	return c.JSON(fiber.Map{"success": true, "teacher": teacher})
}
