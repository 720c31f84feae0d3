// Package scoring implements the pure scoring core for the trip: handicap stroke
// allocation, net score and point conversion, the three match-format evaluators,
// tournament-wide skins, the quota side game, and per-round aggregates.
//
// Every function in this package is a pure, synchronous function of the snapshot
// it is handed — no I/O, no stored state, no mutation of its inputs. Handlers
// re-invoke the evaluators on every read (and after every score write, to push
// fresh results over the websocket hub). Repeated calls with the same inputs
// produce identical outputs, which matters because results and odds are rendered
// live and must not flicker between equivalent renders.
package scoring

import "github.com/dmoran14/buddies-cup/internal/models"

// Defaults used when a course is missing hole data. A missing hole is a data
// entry gap, not a failure: the evaluators keep working with a plain par 4
// that receives a stroke first.
const (
	defaultPar         = 4
	defaultStrokeIndex = 1
)

// HoleInfo returns the par and stroke index for a hole number, falling back to
// the documented defaults when the course has no row for that hole.
func HoleInfo(course models.Course, holeNumber int) (par, strokeIndex int) {
	for _, h := range course.Holes {
		if h.HoleNumber == holeNumber {
			return h.Par, h.StrokeIndex
		}
	}
	return defaultPar, defaultStrokeIndex
}

// StrokesForHole computes how many handicap strokes a player receives on a hole.
//
// Strokes are dealt in stroke-index order: every hole gets floor(h/18) strokes,
// and the hardest h%18 holes (stroke index 1..h%18) get one more. For playing
// handicaps in the realistic range this yields 0–2 strokes per hole, and summed
// over a full 18 it always returns exactly h.
func StrokesForHole(playingHandicap, strokeIndex int) int {
	if playingHandicap <= 0 {
		return 0
	}
	strokes := playingHandicap / 18
	if strokeIndex <= playingHandicap%18 {
		strokes++
	}
	return strokes
}

// MatchPlayStrokes allocates match-play strokes "off the low man" for one player
// against one opponent on a course.
//
// Only the higher-handicap player receives strokes, and only the handicap
// difference is dealt out — the same floor-plus-remainder logic as
// StrokesForHole, keyed to the delta instead of the full handicap. The returned
// map has an entry for every hole 1–18; entries sum to exactly max(delta, 0),
// and a harder hole never receives fewer strokes than an easier one.
func MatchPlayStrokes(playerHandicap, opponentHandicap int, course models.Course) map[int]int {
	strokes := make(map[int]int, 18)
	delta := playerHandicap - opponentHandicap
	for hole := 1; hole <= 18; hole++ {
		if delta <= 0 {
			strokes[hole] = 0
			continue
		}
		_, si := HoleInfo(course, hole)
		strokes[hole] = StrokesForHole(delta, si)
	}
	return strokes
}
