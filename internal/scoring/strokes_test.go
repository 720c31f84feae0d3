package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmoran14/buddies-cup/internal/models"
)

// flatCourse is a plain 18 of par 4s with stroke indexes 1..18 in hole order,
// which makes expected stroke allocations easy to read off.
func flatCourse() models.Course {
	holes := make([]models.Hole, 18)
	for i := range holes {
		holes[i] = models.Hole{HoleNumber: i + 1, Par: 4, StrokeIndex: i + 1}
	}
	return models.Course{Day: 1, TotalPar: 72, Holes: holes}
}

func TestStrokesForHole(t *testing.T) {
	tests := []struct {
		name        string
		handicap    int
		strokeIndex int
		want        int
	}{
		{"18 handicap gets one everywhere", 18, 7, 1},
		{"20 handicap, easy hole", 20, 15, 1},
		{"20 handicap, hardest holes get two", 20, 2, 2},
		{"scratch gets nothing", 0, 1, 0},
		{"plus handicap gets nothing", -2, 1, 0},
		{"9 handicap, hard hole", 9, 9, 1},
		{"9 handicap, easy hole", 9, 10, 0},
		{"36 handicap gets two everywhere", 36, 18, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StrokesForHole(tt.handicap, tt.strokeIndex))
		})
	}
}

func TestStrokesForHoleSumsToHandicap(t *testing.T) {
	// Over a full stroke-index permutation the allocation must hand out
	// exactly the handicap, whatever it is.
	for h := 0; h <= 40; h++ {
		sum := 0
		for si := 1; si <= 18; si++ {
			sum += StrokesForHole(h, si)
		}
		assert.Equal(t, h, sum, "handicap %d", h)
	}
}

func TestMatchPlayStrokesOffTheLowMan(t *testing.T) {
	course := flatCourse()

	// 13 vs 9: only the 4-stroke difference is dealt, to the hardest holes.
	strokes := MatchPlayStrokes(13, 9, course)
	assert.Len(t, strokes, 18)
	for hole := 1; hole <= 4; hole++ {
		assert.Equal(t, 1, strokes[hole], "hole %d", hole)
	}
	for hole := 5; hole <= 18; hole++ {
		assert.Equal(t, 0, strokes[hole], "hole %d", hole)
	}

	// The lower-handicap side of the same pairing receives nothing.
	lower := MatchPlayStrokes(9, 13, course)
	for hole := 1; hole <= 18; hole++ {
		assert.Equal(t, 0, lower[hole], "hole %d", hole)
	}
}

func TestMatchPlayStrokesSumToDelta(t *testing.T) {
	course := flatCourse()
	pairs := [][2]int{{4, 23}, {23, 4}, {10, 10}, {0, 25}, {12, 5}, {20, 16}}
	for _, pair := range pairs {
		delta := pair[0] - pair[1]
		if delta < 0 {
			delta = 0
		}
		sum := 0
		for _, s := range MatchPlayStrokes(pair[0], pair[1], course) {
			sum += s
		}
		assert.Equal(t, delta, sum, "pair %v", pair)
	}
}

func TestHoleInfoDefaults(t *testing.T) {
	// A hole the course has no row for falls back to a stroke-first par 4.
	par, si := HoleInfo(models.Course{}, 7)
	assert.Equal(t, 4, par)
	assert.Equal(t, 1, si)

	course := flatCourse()
	par, si = HoleInfo(course, 12)
	assert.Equal(t, 4, par)
	assert.Equal(t, 12, si)
}
