package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoran14/buddies-cup/internal/models"
)

// PlayerResponse is the wire shape for a player. PlayingHandicap is the
// authoritative 75%-allowance value every stroke calculation uses.
type PlayerResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Team            string  `json:"team"`
	RawHandicap     float64 `json:"raw_handicap"`
	PlayingHandicap int     `json:"playing_handicap"`
}

// PlayerRequest is the JSON body for creating or updating a player.
type PlayerRequest struct {
	Name            string  `json:"name"`
	Team            string  `json:"team"`
	RawHandicap     float64 `json:"raw_handicap"`
	PlayingHandicap int     `json:"playing_handicap"`
}

func playerResponse(p models.Player) PlayerResponse {
	return PlayerResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Team:            string(p.Team),
		RawHandicap:     p.RawHandicap,
		PlayingHandicap: p.PlayingHandicap,
	}
}

// validTeam checks the team value against the two fixed trip teams.
func validTeam(s string) bool {
	return s == string(models.TeamShaft) || s == string(models.TeamBalls)
}

// GetPlayers returns a handler for GET /api/v1/players — the full trip roster.
func GetPlayers(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var players []models.Player
		if err := db.Order("name").Find(&players).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch players",
			})
		}
		out := make([]PlayerResponse, 0, len(players))
		for _, p := range players {
			out = append(out, playerResponse(p))
		}
		return c.JSON(out)
	}
}

// CreatePlayer returns a handler for POST /api/v1/players (admin only).
func CreatePlayer(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req PlayerRequest
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
		if !validTeam(req.Team) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "team must be 'shaft' or 'balls'",
			})
		}

		player := models.Player{
			Name:            req.Name,
			Team:            models.Team(req.Team),
			RawHandicap:     req.RawHandicap,
			PlayingHandicap: req.PlayingHandicap,
		}
		if err := db.Create(&player).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create player",
			})
		}
		return c.Status(fiber.StatusCreated).JSON(playerResponse(player))
	}
}

// UpdatePlayer returns a handler for PUT /api/v1/players/:id (admin only).
// Handicap edits take effect on the next evaluation — results are always
// recomputed from scratch, never stored.
func UpdatePlayer(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid player id",
			})
		}
		var req PlayerRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if !validTeam(req.Team) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "team must be 'shaft' or 'balls'",
			})
		}

		var player models.Player
		if err := db.First(&player, "id = ?", id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "player not found",
			})
		}

		player.Name = req.Name
		player.Team = models.Team(req.Team)
		player.RawHandicap = req.RawHandicap
		player.PlayingHandicap = req.PlayingHandicap
		if err := db.Save(&player).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to update player",
			})
		}
		return c.JSON(playerResponse(player))
	}
}
