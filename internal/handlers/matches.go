package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoran14/buddies-cup/internal/models"
	"github.com/dmoran14/buddies-cup/internal/scoring"
)

// MatchRequest is the JSON body for POST /api/v1/matches. Rosters are player
// ID lists in slot order; for the individual format they must be the same
// length, because slot N on one side plays slot N on the other.
type MatchRequest struct {
	Day          int      `json:"day"`
	Format       string   `json:"format"`
	Team1Players []string `json:"team1_players"`
	Team2Players []string `json:"team2_players"`
}

// MatchResponse carries a match, its rosters, and its freshly evaluated
// result. The result is recomputed on every read — nothing derived is stored.
type MatchResponse struct {
	ID           string              `json:"id"`
	Day          int                 `json:"day"`
	Format       string              `json:"format"`
	Status       string              `json:"status"`
	ScoresLocked bool                `json:"scores_locked"`
	Team1Players []PlayerResponse    `json:"team1_players"`
	Team2Players []PlayerResponse    `json:"team2_players"`
	Result       scoring.MatchResult `json:"result"`
}

func matchResponse(in scoring.MatchInput, result scoring.MatchResult) MatchResponse {
	out := MatchResponse{
		ID:           in.Match.ID.String(),
		Day:          in.Match.Day,
		Format:       string(in.Match.Format),
		Status:       string(in.Match.Status),
		ScoresLocked: in.Match.ScoresLocked,
		Result:       result,
	}
	// An admin-completed match keeps reporting "completed"; otherwise the
	// evaluator's upcoming/in_progress determination wins.
	if in.Match.Status != models.MatchStatusCompleted {
		out.Status = string(result.Status)
	}
	for _, p := range in.Team1 {
		out.Team1Players = append(out.Team1Players, playerResponse(p))
	}
	for _, p := range in.Team2 {
		out.Team2Players = append(out.Team2Players, playerResponse(p))
	}
	return out
}

// validFormat maps a request string onto a MatchFormat.
func validFormat(s string) (models.MatchFormat, bool) {
	switch models.MatchFormat(s) {
	case models.FormatBestBall, models.FormatStableford, models.FormatIndividual:
		return models.MatchFormat(s), true
	}
	return "", false
}

// GetMatches returns a handler for GET /api/v1/matches, optionally filtered by
// ?day=N. Every match is returned with its evaluated result.
func GetMatches(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := db.Model(&models.Match{})
		if day := c.QueryInt("day"); day != 0 {
			query = query.Where("day = ?", day)
		}
		var ids []uuid.UUID
		if err := query.Order("created_at").Pluck("id", &ids).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch matches",
			})
		}

		out := make([]MatchResponse, 0, len(ids))
		for _, id := range ids {
			in, err := loadMatchInput(db, id)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "failed to load match",
				})
			}
			out = append(out, matchResponse(in, scoring.EvaluateMatch(in)))
		}
		return c.JSON(out)
	}
}

// GetMatch returns a handler for GET /api/v1/matches/:id.
func GetMatch(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid match id",
			})
		}
		in, err := loadMatchInput(db, id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "match not found",
			})
		}
		return c.JSON(matchResponse(in, scoring.EvaluateMatch(in)))
	}
}

// CreateMatch returns a handler for POST /api/v1/matches (admin only).
// The match is bound to the course configured for its day; rosters are
// inserted with the match in one transaction.
func CreateMatch(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req MatchRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		format, ok := validFormat(req.Format)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "format must be 'best_ball', 'stableford', or 'individual'",
			})
		}
		if req.Day < 1 || req.Day > 3 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "day must be 1, 2, or 3",
			})
		}
		if len(req.Team1Players) == 0 || len(req.Team2Players) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "both rosters are required",
			})
		}
		if format == models.FormatIndividual && len(req.Team1Players) != len(req.Team2Players) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "individual rosters must be the same length",
			})
		}

		var course models.Course
		if err := db.First(&course, "day = ?", req.Day).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "no course configured for that day",
			})
		}

		match := models.Match{Day: req.Day, Format: format, CourseID: course.ID}
		txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&match).Error; err != nil {
				return err
			}
			for side, roster := range map[int][]string{1: req.Team1Players, 2: req.Team2Players} {
				for slot, idStr := range roster {
					playerID, err := uuid.Parse(idStr)
					if err != nil {
						return err
					}
					mp := models.MatchPlayer{
						MatchID:    match.ID,
						PlayerID:   playerID,
						TeamNumber: side,
						Slot:       slot,
					}
					if err := tx.Create(&mp).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if txErr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create match",
			})
		}

		in, err := loadMatchInput(db, match.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load match",
			})
		}
		return c.Status(fiber.StatusCreated).JSON(matchResponse(in, scoring.EvaluateMatch(in)))
	}
}

// SetMatchLock returns a handler for PUT /api/v1/matches/:id/lock (admin
// only). Body: {"locked": true|false}. The lock gates score writes; it never
// changes how existing scores evaluate.
func SetMatchLock(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid match id",
			})
		}
		var req struct {
			Locked bool `json:"locked"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		result := db.Model(&models.Match{}).Where("id = ?", id).
			Update("scores_locked", req.Locked)
		if result.Error != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to update lock",
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "match not found",
			})
		}
		return c.JSON(fiber.Map{"locked": req.Locked})
	}
}
