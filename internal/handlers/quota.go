package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dmoran14/buddies-cup/internal/scoring"
)

// GetQuota returns a handler for GET /api/v1/quota/:day — the handicap quota
// side game standings. The game rides the same gross scores as everything
// else; no extra entry is needed to be in it.
func GetQuota(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day, err := c.ParamsInt("day")
		if err != nil || day < 1 || day > 3 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "day must be 1, 2, or 3",
			})
		}
		snap, err := loadDaySnapshot(db, day)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no course configured for that day",
			})
		}
		return c.JSON(scoring.EvaluateQuota(snap.Players, snap.Scores, snap.Course))
	}
}
