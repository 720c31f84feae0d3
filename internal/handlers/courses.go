package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dmoran14/buddies-cup/internal/models"
)

// HoleRequest is one hole of a course create payload.
type HoleRequest struct {
	HoleNumber  int `json:"hole_number"`
	Par         int `json:"par"`
	StrokeIndex int `json:"stroke_index"`
}

// CourseRequest is the JSON body for POST /api/v1/courses. A course carries
// its full 18 holes in one payload; total par is derived, not client-supplied.
type CourseRequest struct {
	Name  string        `json:"name"`
	Day   int           `json:"day"`
	Holes []HoleRequest `json:"holes"`
}

// CourseResponse mirrors the stored course with its holes.
type CourseResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Day      int            `json:"day"`
	TotalPar int            `json:"total_par"`
	Holes    []HoleResponse `json:"holes"`
}

type HoleResponse struct {
	HoleNumber  int `json:"hole_number"`
	Par         int `json:"par"`
	StrokeIndex int `json:"stroke_index"`
}

func courseResponse(course models.Course) CourseResponse {
	out := CourseResponse{
		ID:       course.ID.String(),
		Name:     course.Name,
		Day:      course.Day,
		TotalPar: course.TotalPar,
		Holes:    make([]HoleResponse, 0, len(course.Holes)),
	}
	for _, h := range course.Holes {
		out.Holes = append(out.Holes, HoleResponse{
			HoleNumber:  h.HoleNumber,
			Par:         h.Par,
			StrokeIndex: h.StrokeIndex,
		})
	}
	return out
}

// GetCourses returns a handler for GET /api/v1/courses.
func GetCourses(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var courses []models.Course
		if err := db.Preload("Holes", func(db *gorm.DB) *gorm.DB {
			return db.Order("hole_number")
		}).Order("day").Find(&courses).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch courses",
			})
		}
		out := make([]CourseResponse, 0, len(courses))
		for _, course := range courses {
			out = append(out, courseResponse(course))
		}
		return c.JSON(out)
	}
}

// CreateCourse returns a handler for POST /api/v1/courses (admin only).
// Validates that the 18 stroke indexes form a permutation of 1..18 — stroke
// allocation depends on it — and inserts course and holes in one transaction.
func CreateCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CourseRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "name is required",
			})
		}
		if req.Day < 1 || req.Day > 3 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "day must be 1, 2, or 3",
			})
		}
		if len(req.Holes) != 18 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "exactly 18 holes are required",
			})
		}

		seenNumber := make(map[int]bool, 18)
		seenIndex := make(map[int]bool, 18)
		totalPar := 0
		for _, h := range req.Holes {
			if h.HoleNumber < 1 || h.HoleNumber > 18 || seenNumber[h.HoleNumber] {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "hole numbers must be a permutation of 1..18",
				})
			}
			if h.StrokeIndex < 1 || h.StrokeIndex > 18 || seenIndex[h.StrokeIndex] {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "stroke indexes must be a permutation of 1..18",
				})
			}
			seenNumber[h.HoleNumber] = true
			seenIndex[h.StrokeIndex] = true
			totalPar += h.Par
		}

		course := models.Course{Name: req.Name, Day: req.Day, TotalPar: totalPar}
		txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&course).Error; err != nil {
				return err
			}
			for _, h := range req.Holes {
				hole := models.Hole{
					CourseID:    course.ID,
					HoleNumber:  h.HoleNumber,
					Par:         h.Par,
					StrokeIndex: h.StrokeIndex,
				}
				if err := tx.Create(&hole).Error; err != nil {
					return err
				}
				course.Holes = append(course.Holes, hole)
			}
			return nil
		})
		if txErr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create course",
			})
		}
		return c.Status(fiber.StatusCreated).JSON(courseResponse(course))
	}
}
