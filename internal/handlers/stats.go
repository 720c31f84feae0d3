package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dmoran14/buddies-cup/internal/models"
	"github.com/dmoran14/buddies-cup/internal/scoring"
)

// RoundStatResponse is the wire shape of one player's per-round aggregate.
type RoundStatResponse struct {
	PlayerID      string `json:"player_id"`
	Day           int    `json:"day"`
	HolesPlayed   int    `json:"holes_played"`
	GrossTotal    int    `json:"gross_total"`
	NetTotal      int    `json:"net_total"`
	Eagles        int    `json:"eagles"`
	Birdies       int    `json:"birdies"`
	Pars          int    `json:"pars"`
	Bogeys        int    `json:"bogeys"`
	Doubles       int    `json:"doubles"`
	Others        int    `json:"others"`
	BestHole      int    `json:"best_hole"`
	BestHoleDiff  int    `json:"best_hole_diff"`
	WorstHole     int    `json:"worst_hole"`
	WorstHoleDiff int    `json:"worst_hole_diff"`
}

func roundStatResponse(s models.RoundStat) RoundStatResponse {
	return RoundStatResponse{
		PlayerID:      s.PlayerID.String(),
		Day:           s.Day,
		HolesPlayed:   s.HolesPlayed,
		GrossTotal:    s.GrossTotal,
		NetTotal:      s.NetTotal,
		Eagles:        s.Eagles,
		Birdies:       s.Birdies,
		Pars:          s.Pars,
		Bogeys:        s.Bogeys,
		Doubles:       s.Doubles,
		Others:        s.Others,
		BestHole:      s.BestHole,
		BestHoleDiff:  s.BestHoleDiff,
		WorstHole:     s.WorstHole,
		WorstHoleDiff: s.WorstHoleDiff,
	}
}

// GetRoundStats returns a handler for GET /api/v1/stats — all persisted
// per-round aggregates.
func GetRoundStats(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var stats []models.RoundStat
		if err := db.Order("day, player_id").Find(&stats).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch stats",
			})
		}
		out := make([]RoundStatResponse, 0, len(stats))
		for _, s := range stats {
			out = append(out, roundStatResponse(s))
		}
		return c.JSON(out)
	}
}

// SnapshotRoundStats returns a handler for POST /api/v1/days/:day/stats
// (admin only). Computes every player's per-round aggregate from the day's
// scores and upserts the records — typically run after the day is locked.
// The core computes; this handler is the external layer that writes.
func SnapshotRoundStats(db *gorm.DB) fiber.Handler {
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

		out := make([]RoundStatResponse, 0, len(snap.Players))
		txErr := db.Transaction(func(tx *gorm.DB) error {
			for _, p := range snap.Players {
				stat := scoring.ComputeRoundStat(p, day, snap.Scores, snap.Course)
				if stat.HolesPlayed == 0 {
					continue // Nothing to persist for a player who didn't play
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns: []clause.Column{{Name: "player_id"}, {Name: "day"}},
					DoUpdates: clause.AssignmentColumns([]string{
						"holes_played", "gross_total", "net_total",
						"eagles", "birdies", "pars", "bogeys", "doubles", "others",
						"best_hole", "best_hole_diff", "worst_hole", "worst_hole_diff",
						"updated_at",
					}),
				}).Create(&stat).Error; err != nil {
					return err
				}
				out = append(out, roundStatResponse(stat))
			}
			return nil
		})
		if txErr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to snapshot stats",
			})
		}
		return c.JSON(out)
	}
}
