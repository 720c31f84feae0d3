package scoring

import (
	"github.com/google/uuid"

	"github.com/dmoran14/buddies-cup/internal/models"
)

// SkinResult is the outcome of one hole in the day-wide skins game. Gross and
// net run as separate tracks. Winner and score fields are nil when the hole is
// unresolved on that track (tied, or nobody has a score yet).
//
// GrossSkins/NetSkins are the number of skins paid on the hole — 1 plus any
// carryover from preceding unresolved holes — and are zero on unresolved holes.
type SkinResult struct {
	Hole        int        `json:"hole"`
	Par         int        `json:"par"`
	GrossWinner *uuid.UUID `json:"gross_winner,omitempty"`
	GrossScore  *int       `json:"gross_score,omitempty"`
	GrossTie    bool       `json:"gross_tie"`
	GrossSkins  int        `json:"gross_skins"`
	NetWinner   *uuid.UUID `json:"net_winner,omitempty"`
	NetScore    *int       `json:"net_score,omitempty"`
	NetTie      bool       `json:"net_tie"`
	NetSkins    int        `json:"net_skins"`
}

// SkinsSummary is the full day-wide skins standing: per-hole results, skins won
// per player on each track, and any carryover still riding past the last
// resolved hole (paid out by a future resolving hole, or reported as
// outstanding at day's end).
type SkinsSummary struct {
	Holes            []SkinResult      `json:"holes"`
	GrossWon         map[uuid.UUID]int `json:"gross_won"`
	NetWon           map[uuid.UUID]int `json:"net_won"`
	GrossOutstanding int               `json:"gross_outstanding"`
	NetOutstanding   int               `json:"net_outstanding"`
}

// skinEntry is one player's line on one hole.
type skinEntry struct {
	playerID uuid.UUID
	gross    int
	net      int
}

// EvaluateSkins runs the tournament-day skins game. Scope is the whole day —
// every score from every match that day competes on every hole, not just
// scores within one match.
//
// Net always uses the player's full playing handicap, even on the singles day
// where the matches themselves play off the low man.
//
// Per hole: the unique lowest gross wins the gross skin (a shared low is a
// gross tie). A unique gross winner at birdie or better also takes the net
// skin outright — no net score may cut or push a gross birdie. Otherwise the
// net pool is everyone except the unique gross winner, and the unique lowest
// net wins (shared low = net tie).
func EvaluateSkins(players []models.Player, scores []models.Score, course models.Course) SkinsSummary {
	gross := grossByPlayer(scores)

	summary := SkinsSummary{
		Holes:    make([]SkinResult, 0, 18),
		GrossWon: make(map[uuid.UUID]int),
		NetWon:   make(map[uuid.UUID]int),
	}

	grossCarry, netCarry := 0, 0
	for hole := 1; hole <= 18; hole++ {
		par, si := HoleInfo(course, hole)
		result := SkinResult{Hole: hole, Par: par}

		var entries []skinEntry
		for _, p := range players {
			g, ok := gross[p.ID][hole]
			if !ok {
				continue
			}
			entries = append(entries, skinEntry{
				playerID: p.ID,
				gross:    g,
				net:      NetScore(g, StrokesForHole(p.PlayingHandicap, si)),
			})
		}

		if len(entries) > 0 {
			resolveHole(&result, entries, par)
		}

		// Payout pass: an unresolved hole rides its skin forward; a resolved
		// hole pays 1 plus whatever has accumulated.
		if result.GrossWinner != nil {
			result.GrossSkins = 1 + grossCarry
			summary.GrossWon[*result.GrossWinner] += result.GrossSkins
			grossCarry = 0
		} else {
			grossCarry++
		}
		if result.NetWinner != nil {
			result.NetSkins = 1 + netCarry
			summary.NetWon[*result.NetWinner] += result.NetSkins
			netCarry = 0
		} else {
			netCarry++
		}

		summary.Holes = append(summary.Holes, result)
	}

	summary.GrossOutstanding = grossCarry
	summary.NetOutstanding = netCarry
	return summary
}

// resolveHole fills in the gross and net outcome for a hole with at least one
// entry, applying birdie protection and gross-winner exclusion on the net track.
func resolveHole(result *SkinResult, entries []skinEntry, par int) {
	// Gross track: unique minimum wins, shared minimum is a tie.
	lowGross := entries[0]
	lowGrossCount := 0
	for _, e := range entries {
		if e.gross < lowGross.gross {
			lowGross = e
		}
	}
	for _, e := range entries {
		if e.gross == lowGross.gross {
			lowGrossCount++
		}
	}

	var grossWinner *skinEntry
	if lowGrossCount == 1 {
		w := lowGross
		grossWinner = &w
		result.GrossWinner = &w.playerID
		g := w.gross
		result.GrossScore = &g
	} else {
		result.GrossTie = true
	}

	// Birdie protection: a unique gross birdie-or-better takes both skins
	// outright. No net score may tie or beat it.
	if grossWinner != nil && grossWinner.gross <= par-1 {
		result.NetWinner = result.GrossWinner
		n := grossWinner.net
		result.NetScore = &n
		return
	}

	// Net track: the pool excludes the unique gross winner (net can never cut
	// or push gross), then unique minimum net wins.
	var pool []skinEntry
	for _, e := range entries {
		if grossWinner != nil && e.playerID == grossWinner.playerID {
			continue
		}
		pool = append(pool, e)
	}
	if len(pool) == 0 {
		return
	}

	lowNet := pool[0]
	lowNetCount := 0
	for _, e := range pool {
		if e.net < lowNet.net {
			lowNet = e
		}
	}
	for _, e := range pool {
		if e.net == lowNet.net {
			lowNetCount++
		}
	}

	if lowNetCount == 1 {
		result.NetWinner = &lowNet.playerID
		n := lowNet.net
		result.NetScore = &n
	} else {
		result.NetTie = true
	}
}
