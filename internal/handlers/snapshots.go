package handlers

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoran14/buddies-cup/internal/models"
	"github.com/dmoran14/buddies-cup/internal/scoring"
)

// This file loads the read snapshots the pure evaluators run over. The scoring
// and odds packages never touch the database themselves: handlers fetch a
// consistent snapshot here, hand it over, and serialize whatever comes back.

// loadMatchInput fetches everything a match evaluation needs: the match with
// its course and roster, the roster resolved to players split by side and
// ordered by slot, and all scores recorded for the match.
func loadMatchInput(db *gorm.DB, matchID uuid.UUID) (scoring.MatchInput, error) {
	var match models.Match
	if err := db.Preload("Course.Holes").Preload("Players.Player").
		First(&match, "id = ?", matchID).Error; err != nil {
		return scoring.MatchInput{}, err
	}

	var scores []models.Score
	if err := db.Where("match_id = ?", matchID).Find(&scores).Error; err != nil {
		return scoring.MatchInput{}, err
	}

	team1, team2 := splitRosters(match.Players)
	return scoring.MatchInput{
		Match:  match,
		Course: match.Course,
		Team1:  team1,
		Team2:  team2,
		Scores: scores,
	}, nil
}

// splitRosters resolves a match's player rows into the two side rosters,
// ordered by slot (slot order is what pairs singles opponents).
func splitRosters(matchPlayers []models.MatchPlayer) (team1, team2 []models.Player) {
	sorted := make([]models.MatchPlayer, len(matchPlayers))
	copy(sorted, matchPlayers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Slot < sorted[j].Slot })

	for _, mp := range sorted {
		if mp.TeamNumber == 1 {
			team1 = append(team1, mp.Player)
		} else {
			team2 = append(team2, mp.Player)
		}
	}
	return team1, team2
}

// daySnapshot is the cross-match view of one tournament day: every player,
// every score from every match that day, and the day's course. Skins, the
// quota game, and round stats all run over this scope rather than a single
// match.
type daySnapshot struct {
	Course  models.Course
	Players []models.Player
	Scores  []models.Score
}

// loadDaySnapshot fetches the day-wide snapshot. The day's roster is the full
// trip roster — skins and the quota game span all matches.
func loadDaySnapshot(db *gorm.DB, day int) (daySnapshot, error) {
	var snap daySnapshot

	if err := db.Preload("Holes").First(&snap.Course, "day = ?", day).Error; err != nil {
		return snap, err
	}
	if err := db.Order("name").Find(&snap.Players).Error; err != nil {
		return snap, err
	}

	var matchIDs []uuid.UUID
	if err := db.Model(&models.Match{}).Where("day = ?", day).
		Pluck("id", &matchIDs).Error; err != nil {
		return snap, err
	}
	if len(matchIDs) == 0 {
		return snap, nil
	}
	if err := db.Where("match_id IN ?", matchIDs).Find(&snap.Scores).Error; err != nil {
		return snap, err
	}
	return snap, nil
}
