package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoran14/buddies-cup/internal/models"
)

func TestSkinsGrossTieNetWinner(t *testing.T) {
	matchID := uuid.New()
	p1 := testPlayer("A", models.TeamShaft, 0)
	p2 := testPlayer("B", models.TeamBalls, 0)
	p3 := testPlayer("C", models.TeamBalls, 18) // Strokes everywhere

	// Hole 1: all three tie gross at par. The gross skin is tied, but the
	// 18-handicap's stroke makes him the sole net winner.
	var scores []models.Score
	scores = append(scores, holeScores(matchID, p1, map[int]int{1: 4})...)
	scores = append(scores, holeScores(matchID, p2, map[int]int{1: 4})...)
	scores = append(scores, holeScores(matchID, p3, map[int]int{1: 4})...)

	summary := EvaluateSkins([]models.Player{p1, p2, p3}, scores, flatCourse())
	require.Len(t, summary.Holes, 18)

	hole := summary.Holes[0]
	assert.True(t, hole.GrossTie)
	assert.Nil(t, hole.GrossWinner)
	assert.Zero(t, hole.GrossSkins)
	assert.False(t, hole.NetTie)
	require.NotNil(t, hole.NetWinner)
	assert.Equal(t, p3.ID, *hole.NetWinner)
	assert.Equal(t, 1, hole.NetSkins)
	assert.Equal(t, 1, summary.NetWon[p3.ID])
}

func TestSkinsBirdieProtection(t *testing.T) {
	matchID := uuid.New()
	birdie := testPlayer("Birdie", models.TeamShaft, 0)
	stroker := testPlayer("Stroker", models.TeamBalls, 36)

	// The 36-handicap nets 2 (4 gross minus 2 strokes), strictly lower than
	// the scratch player's 3 — but a unique gross birdie takes both skins, so
	// the lower net never cashes.
	var scores []models.Score
	scores = append(scores, holeScores(matchID, birdie, map[int]int{1: 3})...)
	scores = append(scores, holeScores(matchID, stroker, map[int]int{1: 4})...)

	summary := EvaluateSkins([]models.Player{birdie, stroker}, scores, flatCourse())
	hole := summary.Holes[0]

	require.NotNil(t, hole.GrossWinner)
	assert.Equal(t, birdie.ID, *hole.GrossWinner)
	require.NotNil(t, hole.NetWinner)
	assert.Equal(t, birdie.ID, *hole.NetWinner)
	assert.Equal(t, 1, summary.GrossWon[birdie.ID])
	assert.Equal(t, 1, summary.NetWon[birdie.ID])
	assert.Zero(t, summary.NetWon[stroker.ID])
}

func TestSkinsGrossWinnerExcludedFromNetPool(t *testing.T) {
	matchID := uuid.New()
	p1 := testPlayer("A", models.TeamShaft, 0)
	p2 := testPlayer("B", models.TeamBalls, 0)
	p3 := testPlayer("C", models.TeamBalls, 0)

	// p1 wins gross at par (no birdie protection). The net pool is p2 and p3
	// only; they tie net, so the net skin rides even though p1's net is lowest.
	var scores []models.Score
	scores = append(scores, holeScores(matchID, p1, map[int]int{1: 4})...)
	scores = append(scores, holeScores(matchID, p2, map[int]int{1: 5})...)
	scores = append(scores, holeScores(matchID, p3, map[int]int{1: 5})...)

	summary := EvaluateSkins([]models.Player{p1, p2, p3}, scores, flatCourse())
	hole := summary.Holes[0]

	require.NotNil(t, hole.GrossWinner)
	assert.Equal(t, p1.ID, *hole.GrossWinner)
	assert.Nil(t, hole.NetWinner)
	assert.True(t, hole.NetTie)
}

func TestSkinsCarryover(t *testing.T) {
	matchID := uuid.New()
	p1 := testPlayer("A", models.TeamShaft, 0)
	p2 := testPlayer("B", models.TeamBalls, 0)

	// Holes 1-2 tie on both tracks; hole 3 resolves and pays three skins.
	g1 := map[int]int{1: 4, 2: 4, 3: 3}
	g2 := map[int]int{1: 4, 2: 4, 3: 5}

	var scores []models.Score
	scores = append(scores, holeScores(matchID, p1, g1)...)
	scores = append(scores, holeScores(matchID, p2, g2)...)

	summary := EvaluateSkins([]models.Player{p1, p2}, scores, flatCourse())

	assert.Zero(t, summary.Holes[0].GrossSkins)
	assert.Zero(t, summary.Holes[1].GrossSkins)
	assert.Equal(t, 3, summary.Holes[2].GrossSkins)
	assert.Equal(t, 3, summary.Holes[2].NetSkins)
	assert.Equal(t, 3, summary.GrossWon[p1.ID])
	assert.Equal(t, 3, summary.NetWon[p1.ID])

	// Holes 4-18 have no scores and ride to day's end unresolved.
	assert.Equal(t, 15, summary.GrossOutstanding)
	assert.Equal(t, 15, summary.NetOutstanding)
}

func TestSkinsNoScoresAllOutstanding(t *testing.T) {
	summary := EvaluateSkins([]models.Player{testPlayer("A", models.TeamShaft, 5)}, nil, flatCourse())
	assert.Len(t, summary.Holes, 18)
	assert.Equal(t, 18, summary.GrossOutstanding)
	assert.Equal(t, 18, summary.NetOutstanding)
	assert.Empty(t, summary.GrossWon)
	assert.Empty(t, summary.NetWon)
}
