package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmoran14/buddies-cup/internal/models"
)

func TestComputeRoundStat(t *testing.T) {
	matchID := uuid.New()
	p := testPlayer("P", models.TeamShaft, 9)

	// Eagle, birdie, par, bogey, double, and a blowup across six holes.
	scores := holeScores(matchID, p, map[int]int{
		1: 2, // Eagle on the SI-1 hole (1 stroke: net 1)
		2: 3,
		3: 4,
		4: 5,
		5: 6,
		6: 8,
	})

	stat := ComputeRoundStat(p, 2, scores, flatCourse())

	assert.Equal(t, p.ID, stat.PlayerID)
	assert.Equal(t, 2, stat.Day)
	assert.Equal(t, 6, stat.HolesPlayed)
	assert.Equal(t, 28, stat.GrossTotal)
	// 9 handicap strokes on SI 1-9: one stroke on each hole played.
	assert.Equal(t, 22, stat.NetTotal)

	assert.Equal(t, 1, stat.Eagles)
	assert.Equal(t, 1, stat.Birdies)
	assert.Equal(t, 1, stat.Pars)
	assert.Equal(t, 1, stat.Bogeys)
	assert.Equal(t, 1, stat.Doubles)
	assert.Equal(t, 1, stat.Others)

	assert.Equal(t, 1, stat.BestHole)
	assert.Equal(t, -2, stat.BestHoleDiff)
	assert.Equal(t, 6, stat.WorstHole)
	assert.Equal(t, 4, stat.WorstHoleDiff)
}

func TestComputeRoundStatNoScores(t *testing.T) {
	p := testPlayer("P", models.TeamShaft, 9)
	stat := ComputeRoundStat(p, 1, nil, flatCourse())

	assert.Zero(t, stat.HolesPlayed)
	assert.Zero(t, stat.GrossTotal)
	assert.Zero(t, stat.BestHole)
	assert.Zero(t, stat.WorstHole)
}
