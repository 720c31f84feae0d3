package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dmoran14/buddies-cup/internal/models"
	"github.com/dmoran14/buddies-cup/internal/scoring"
	"github.com/dmoran14/buddies-cup/internal/websocket"
)

// ScoreRequest is the JSON body for PUT /api/v1/matches/:id/scores.
// Gross may be null to blank a hole back out (fat-fingered entry).
type ScoreRequest struct {
	PlayerID   string `json:"player_id"`
	HoleNumber int    `json:"hole_number"`
	Gross      *int   `json:"gross"`
}

// ScoreResponse echoes a stored score row.
type ScoreResponse struct {
	PlayerID   string `json:"player_id"`
	HoleNumber int    `json:"hole_number"`
	Gross      *int   `json:"gross"`
}

// GetScores returns a handler for GET /api/v1/matches/:id/scores.
func GetScores(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matchID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid match id",
			})
		}
		var scores []models.Score
		if err := db.Where("match_id = ?", matchID).
			Order("hole_number").Find(&scores).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch scores",
			})
		}
		out := make([]ScoreResponse, 0, len(scores))
		for _, s := range scores {
			out = append(out, ScoreResponse{
				PlayerID:   s.PlayerID.String(),
				HoleNumber: s.HoleNumber,
				Gross:      s.Gross,
			})
		}
		return c.JSON(out)
	}
}

// UpsertScore returns a handler for PUT /api/v1/matches/:id/scores.
// Anyone signed in can enter scores — that's the whole point of the app — but
// a locked match bounces writes with 409 until an admin unlocks it.
//
// On an accepted write the match is re-evaluated and the fresh result is
// broadcast to everyone watching that day.
func UpsertScore(db *gorm.DB, hub *websocket.Hub, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matchID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid match id",
			})
		}
		var req ScoreRequest
		if err := c.BodyParser(&req); err != nil {
			scoreWrites.WithLabelValues("rejected").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		playerID, err := uuid.Parse(req.PlayerID)
		if err != nil {
			scoreWrites.WithLabelValues("rejected").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid player id",
			})
		}
		if req.HoleNumber < 1 || req.HoleNumber > 18 {
			scoreWrites.WithLabelValues("rejected").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "hole_number must be 1..18",
			})
		}
		if req.Gross != nil && (*req.Gross < 1 || *req.Gross > 15) {
			scoreWrites.WithLabelValues("rejected").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "gross must be 1..15",
			})
		}

		var match models.Match
		if err := db.First(&match, "id = ?", matchID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "match not found",
			})
		}
		if match.ScoresLocked {
			scoreWrites.WithLabelValues("locked").Inc()
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "scores are locked for this match",
			})
		}

		// Upsert on the (match, player, hole) unique index so re-entering a
		// hole overwrites rather than erroring.
		score := models.Score{
			MatchID:    matchID,
			PlayerID:   playerID,
			HoleNumber: req.HoleNumber,
			Gross:      req.Gross,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "match_id"}, {Name: "player_id"}, {Name: "hole_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"gross", "updated_at"}),
		}).Create(&score).Error; err != nil {
			scoreWrites.WithLabelValues("rejected").Inc()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save score",
			})
		}
		scoreWrites.WithLabelValues("accepted").Inc()

		broadcastDay(db, hub, log, match.Day)

		return c.JSON(ScoreResponse{
			PlayerID:   playerID.String(),
			HoleNumber: req.HoleNumber,
			Gross:      req.Gross,
		})
	}
}

// DeleteScore returns a handler for DELETE /api/v1/matches/:id/scores/:player/:hole.
// Subject to the same lock as writes.
func DeleteScore(db *gorm.DB, hub *websocket.Hub, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matchID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid match id",
			})
		}
		playerID, err := uuid.Parse(c.Params("player"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid player id",
			})
		}
		hole, err := strconv.Atoi(c.Params("hole"))
		if err != nil || hole < 1 || hole > 18 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid hole number",
			})
		}

		var match models.Match
		if err := db.First(&match, "id = ?", matchID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "match not found",
			})
		}
		if match.ScoresLocked {
			scoreWrites.WithLabelValues("locked").Inc()
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "scores are locked for this match",
			})
		}

		if err := db.Where("match_id = ? AND player_id = ? AND hole_number = ?",
			matchID, playerID, hole).Delete(&models.Score{}).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to delete score",
			})
		}
		scoreWrites.WithLabelValues("accepted").Inc()

		broadcastDay(db, hub, log, match.Day)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// dayBroadcast is the payload pushed to websocket subscribers after a score
// write: every match result for the day plus the skins standing, so watchers
// never have to refetch.
type dayBroadcast struct {
	Day     int                  `json:"day"`
	Matches []MatchResponse      `json:"matches"`
	Skins   scoring.SkinsSummary `json:"skins"`
}

// broadcastDay re-evaluates the day and pushes the result to the hub. Failures
// here are logged and swallowed — a broken push must never fail the score
// write that triggered it.
func broadcastDay(db *gorm.DB, hub *websocket.Hub, log *logrus.Logger, day int) {
	var ids []uuid.UUID
	if err := db.Model(&models.Match{}).Where("day = ?", day).
		Pluck("id", &ids).Error; err != nil {
		log.WithError(err).Warn("broadcast: failed to list matches")
		return
	}
	payload := dayBroadcast{Day: day}
	for _, id := range ids {
		in, err := loadMatchInput(db, id)
		if err != nil {
			log.WithError(err).Warn("broadcast: failed to load match")
			return
		}
		payload.Matches = append(payload.Matches, matchResponse(in, scoring.EvaluateMatch(in)))
	}
	snap, err := loadDaySnapshot(db, day)
	if err != nil {
		log.WithError(err).Warn("broadcast: failed to load day snapshot")
		return
	}
	payload.Skins = scoring.EvaluateSkins(snap.Players, snap.Scores, snap.Course)

	data, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Warn("broadcast: failed to marshal payload")
		return
	}
	hub.BroadcastToDay(strconv.Itoa(day), data)
	broadcasts.Inc()
}
