package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/gender"
)

// Player is a beach volleyball player. Rating fields are not stored,
// they are derived from the match log on every read.
type Player struct {
	ID           uuid.UUID
	Name         string
	Gender       gender.Gender
	RegisteredAt time.Time

	EloRating    int
	GamesPlayed  int
	RatingRank   int
	RatingChange int
	Calibrated   bool

	Glicko2Rating Glicko2Rating
}

// Glicko2Rating carries the player's Glicko-2 numbers. Interval is the
// 95% confidence interval: R ± 2*RD.
type Glicko2Rating struct {
	Rating     float64
	Deviation  float64
	Volatility float64
	Interval   Interval
}

type Interval struct {
	Min float64
	Max float64
}

func (g Glicko2Rating) IsZero() bool {
	return g.Rating == 0 && g.Deviation == 0 && g.Volatility == 0
}

// PlayerStats is a win/loss line against (or alongside) another player.
type PlayerStats struct {
	Player Player
	Wins   int
	Loses  int
}
