// cmd/oddstable regenerates the empirical matchup table in internal/odds.
//
// For every unordered pair of handicaps in the simulated set it runs 100k
// 18-hole net match-play simulations (strokes allocated off the low man, net
// winner per hole, most holes wins) and prints the resulting win/draw
// percentages as Go struct literal rows:
//
//	go run ./cmd/oddstable > internal/odds/table.gen.txt
//
// Paste the output over the matchupTable rows. The per-hole score model is a
// right-skewed normal over strokes-above-par whose mean scales with handicap,
// fit so the simulated 18-hole totals land on handicap-appropriate averages.
package main

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dmoran14/buddies-cup/internal/models"
	"github.com/dmoran14/buddies-cup/internal/scoring"
)

const (
	simsPerPair = 100_000
	rngSeed     = 7
)

// handicaps mirrors the set priced by internal/odds: the playing handicaps
// actually held by trip participants.
var handicaps = []int{4, 5, 8, 9, 10, 11, 12, 13, 16, 20, 21, 23}

func main() {
	course := syntheticCourse()
	src := rand.NewSource(rngSeed)

	for i, low := range handicaps {
		for _, high := range handicaps[i+1:] {
			lowWins, highWins, draws := simulatePair(low, high, course, src)
			total := float64(simsPerPair)
			fmt.Printf("{%d, %d, %.2f, %.2f, %.2f},\n",
				low, high,
				float64(lowWins)/total*100,
				float64(highWins)/total*100,
				float64(draws)/total*100,
			)
		}
	}
}

// simulatePair plays simsPerPair full matches between the two handicaps and
// tallies outcomes. Strokes come off the low man, so only the higher handicap
// receives any.
func simulatePair(low, high int, course models.Course, src rand.Source) (lowWins, highWins, draws int) {
	lowStrokes := scoring.MatchPlayStrokes(low, high, course)
	highStrokes := scoring.MatchPlayStrokes(high, low, course)

	lowModel := holeModel(low, src)
	highModel := holeModel(high, src)

	for s := 0; s < simsPerPair; s++ {
		lowHoles, highHoles := 0, 0
		for h := 1; h <= 18; h++ {
			par, _ := scoring.HoleInfo(course, h)
			lowNet := par + lowModel.strokesOverPar() - lowStrokes[h]
			highNet := par + highModel.strokesOverPar() - highStrokes[h]
			if lowNet < highNet {
				lowHoles++
			} else if highNet < lowNet {
				highHoles++
			}
		}
		switch {
		case lowHoles > highHoles:
			lowWins++
		case highHoles > lowHoles:
			highWins++
		default:
			draws++
		}
	}
	return lowWins, highWins, draws
}

// scoreModel draws a player's per-hole strokes over par. The mean tracks the
// handicap (an h-handicap averages roughly h strokes over par across 18
// holes) and
// the spread widens slightly with handicap, matching how amateur rounds
// actually disperse.
type scoreModel struct {
	dist distuv.Normal
}

func holeModel(handicap int, src rand.Source) scoreModel {
	return scoreModel{dist: distuv.Normal{
		Mu:    float64(handicap) / 18.0,
		Sigma: 1.05 + float64(handicap)*0.012,
		Src:   src,
	}}
}

// strokesOverPar samples one hole, rounded to the nearest whole stroke and
// floored at -2 (nobody holes out three under on a par 4).
func (m scoreModel) strokesOverPar() int {
	v := int(math.Round(m.dist.Rand()))
	if v < -2 {
		v = -2
	}
	return v
}

// syntheticCourse is the neutral 18 the simulation plays: all par 4s with
// stroke indexes 1..18 in order. Stroke allocation only cares about the
// indexes, and a flat par keeps the model simple.
func syntheticCourse() models.Course {
	holes := make([]models.Hole, 18)
	for i := range holes {
		holes[i] = models.Hole{HoleNumber: i + 1, Par: 4, StrokeIndex: i + 1}
	}
	return models.Course{Day: 0, TotalPar: 72, Holes: holes}
}
