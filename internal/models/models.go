// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to Go
// values. The struct field tags (the backtick strings like `gorm:"..."`) tell GORM
// how to handle each field: its column type, constraints, defaults, and relationships.
//
// The data model represents a three-day, two-team golf trip:
//   - Players belong to one of exactly two Teams (shaft or balls)
//   - Each Day (1–3) is played on a Course with 18 Holes
//   - Matches pit rosters from each team against each other in a day-specific Format
//   - Scores track gross strokes per player per hole; everything else is derived
//   - Bets pair two players with moneylines priced from the handicap matchup table
//
// Derived values (net scores, match results, skins, odds, quota standings) are never
// stored — they are recomputed from scores on every read by the scoring and odds
// packages. The only derived artifact that persists is RoundStat, the per-round
// aggregate used for season-long statistics.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Enums ---
// Go doesn't have a built-in enum keyword, so we use named string types plus
// constants. This gives type safety while keeping values human-readable in the DB.

// Team is one of the two fixed trip teams. There are never more than two.
type Team string

const (
	TeamShaft Team = "shaft"
	TeamBalls Team = "balls"
)

// MatchFormat describes how a match is scored. The trip plays one format per day.
type MatchFormat string

const (
	FormatBestBall   MatchFormat = "best_ball"  // Day 1: 2v2, lower net score per side counts each hole
	FormatStableford MatchFormat = "stableford" // Day 2: 2v2, combined Stableford points per side
	FormatIndividual MatchFormat = "individual" // Day 3: 1v1 pairings by roster slot, strokes off the low man
)

// MatchStatus tracks a match's lifecycle. The scoring core only ever reports
// "upcoming" or "in_progress"; "completed" is set by an admin once every roster
// player has all 18 holes entered.
type MatchStatus string

const (
	MatchStatusUpcoming   MatchStatus = "upcoming"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
)

// BetType identifies which segment of a match a bet rides on. Front and back are
// 9-hole bets and get extra variance baked into their lines by the odds engine.
type BetType string

const (
	BetTypeFront   BetType = "front"
	BetTypeBack    BetType = "back"
	BetTypeOverall BetType = "overall"
)

// BetStatus tracks settlement. Settlement itself is manual (Venmo between
// players); the app only records the agreed terms.
type BetStatus string

const (
	BetStatusOpen    BetStatus = "open"
	BetStatusSettled BetStatus = "settled"
	BetStatusVoided  BetStatus = "voided"
)

// --- Models ---

// Player is one of the trip participants.
//
// PlayingHandicap is the authoritative input to all stroke math. It is the raw
// handicap at the agreed 75% allowance, rounded, and is entered by the admin —
// the server never recomputes it from RawHandicap.
type Player struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"not null"`
	Team            Team      `gorm:"type:team;not null"`
	RawHandicap     float64   `gorm:"type:decimal(4,1);not null"` // Full handicap index (e.g., 14.2)
	PlayingHandicap int       `gorm:"not null"`                   // 75% allowance, rounded; input to every stroke calculation
	Phone           *string   // Optional, kept for the external SMS notifier; nullable
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Course is the course played on one day of the trip.
type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Day       int       `gorm:"not null;uniqueIndex"` // 1–3; one course per tournament day
	TotalPar  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Holes     []Hole `gorm:"foreignKey:CourseID"`
}

// Hole stores per-hole details for a course.
// StrokeIndex values 1–18 are a permutation within a course: 1 = hardest hole,
// and handicap strokes are handed out in stroke-index order.
type Hole struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_hole"`
	Course      Course    `gorm:"foreignKey:CourseID"`
	HoleNumber  int       `gorm:"not null;uniqueIndex:idx_course_hole"` // 1–18
	Par         int       `gorm:"not null"`
	StrokeIndex int       `gorm:"not null"`
}

// Match is one contest between rosters from the two teams on a given day.
//
// ScoresLocked gates score entry. It is enforced in the score handlers, not in
// the evaluators — the scoring core is a pure function of whatever scores exist.
type Match struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Day          int         `gorm:"not null"` // 1–3
	Format       MatchFormat `gorm:"type:match_format;not null"`
	CourseID     uuid.UUID   `gorm:"type:uuid;not null"`
	Course       Course      `gorm:"foreignKey:CourseID"`
	Status       MatchStatus `gorm:"type:match_status;not null;default:'upcoming'"`
	ScoresLocked bool        `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Players      []MatchPlayer `gorm:"foreignKey:MatchID"`
}

// MatchPlayer places a player on one side of a match.
//
// Slot orders the roster within a side. For the individual format the rosters
// are parallel: team 1 slot N plays team 2 slot N. The composite unique index
// keeps a player from appearing twice in the same match.
type MatchPlayer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MatchID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_player"`
	Match      Match     `gorm:"foreignKey:MatchID"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_player"`
	Player     Player    `gorm:"foreignKey:PlayerID"`
	TeamNumber int       `gorm:"not null"` // 1 or 2 (side within the match)
	Slot       int       `gorm:"not null"` // 0-based position within the side
}

// Score records a player's gross strokes on a single hole of a match.
//
// Gross is a pointer: a NULL gross means the hole was opened in the UI but not
// filled in, and the evaluators treat it the same as a missing row — "no data",
// never zero. The composite unique index allows one score per player per hole
// per match.
type Score struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MatchID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_player_hole"`
	Match      Match     `gorm:"foreignKey:MatchID"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_player_hole"`
	Player     Player    `gorm:"foreignKey:PlayerID"`
	HoleNumber int       `gorm:"not null;uniqueIndex:idx_match_player_hole"` // 1–18
	Gross      *int      // NULL = hole not yet played
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Bet records a head-to-head wager between two players.
//
// Moneylines are stored as quoted at bet time so a later table regeneration
// can't retroactively change agreed terms. TeaseAdjustment is the stroke shift
// (−5..+5) applied to side 1's effective handicap before the line was priced.
type Bet struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MatchID         uuid.UUID       `gorm:"type:uuid;not null"`
	Match           Match           `gorm:"foreignKey:MatchID"`
	Side1PlayerID   uuid.UUID       `gorm:"type:uuid;not null"`
	Side1Player     Player          `gorm:"foreignKey:Side1PlayerID"`
	Side2PlayerID   uuid.UUID       `gorm:"type:uuid;not null"`
	Side2Player     Player          `gorm:"foreignKey:Side2PlayerID"`
	Amount          decimal.Decimal `gorm:"type:decimal(8,2);not null"` // Stake in dollars
	BetType         BetType         `gorm:"type:bet_type;not null"`
	Side1Moneyline  int             `gorm:"not null"`
	Side2Moneyline  int             `gorm:"not null"`
	TeaseAdjustment int             `gorm:"not null;default:0"` // Signed stroke shift, −5..+5
	Status          BetStatus       `gorm:"type:bet_status;not null;default:'open'"`
	WinnerPlayerID  *uuid.UUID      `gorm:"type:uuid"` // Set when settled
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RoundStat is the per-player per-day aggregate handed to season-long stats.
// It is the one derived artifact this system persists; the scoring package
// computes it and the stats handler upserts it.
type RoundStat struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlayerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_day"`
	Player        Player    `gorm:"foreignKey:PlayerID"`
	Day           int       `gorm:"not null;uniqueIndex:idx_player_day"`
	HolesPlayed   int       `gorm:"not null"`
	GrossTotal    int       `gorm:"not null"`
	NetTotal      int       `gorm:"not null"`
	Eagles        int       `gorm:"not null"` // Gross eagle or better
	Birdies       int       `gorm:"not null"`
	Pars          int       `gorm:"not null"`
	Bogeys        int       `gorm:"not null"`
	Doubles       int       `gorm:"not null"`
	Others        int       `gorm:"not null"` // Triple bogey or worse
	BestHole      int       `gorm:"not null"` // Hole number of the best gross-to-par result
	BestHoleDiff  int       `gorm:"not null"` // Gross minus par on that hole
	WorstHole     int       `gorm:"not null"`
	WorstHoleDiff int       `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
