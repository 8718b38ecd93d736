package service

import (
	"time"

	glicko2 "github.com/zelenin/go-glicko2"

	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/domain"
)

// glickoRatings replays the match log through Glicko-2. Matches are
// grouped into rating periods by calendar day, so the deviation of
// players who skip a tournament grows. A doubles win is fed as four
// pairwise wins.
func (s *PlayerService) glickoRatings(matches []domain.Match) map[uuid.UUID]domain.Glicko2Rating {
	players := make(map[uuid.UUID]*glicko2.Player)
	get := func(p domain.Player) *glicko2.Player {
		gp, ok := players[p.ID]
		if !ok {
			gp = glicko2.NewPlayer(glicko2.NewDefaultRating())
			players[p.ID] = gp
		}
		return gp
	}

	var period *glicko2.RatingPeriod
	var periodDay time.Time
	flush := func() {
		if period != nil {
			period.Calculate()
			period = nil
		}
	}
	for _, match := range matches {
		day := match.Date.Truncate(24 * time.Hour)
		if period == nil || !day.Equal(periodDay) {
			flush()
			period = glicko2.NewRatingPeriod()
			periodDay = day
			for _, gp := range players {
				period.AddPlayer(gp)
			}
		}
		winners, losers := match.TeamA, match.TeamB
		if match.Winner() == 2 {
			winners, losers = match.TeamB, match.TeamA
		}
		for _, winner := range winners {
			for _, loser := range losers {
				period.AddMatch(get(winner), get(loser), glicko2.MATCH_RESULT_WIN)
			}
		}
	}
	flush()

	converted := make(map[uuid.UUID]domain.Glicko2Rating, len(players))
	for id, gp := range players {
		r := gp.Rating()
		converted[id] = domain.Glicko2Rating{
			Rating:     r.R(),
			Deviation:  r.Rd(),
			Volatility: r.Sigma(),
			Interval: domain.Interval{
				Min: r.R() - 2*r.Rd(),
				Max: r.R() + 2*r.Rd(),
			},
		}
	}
	return converted
}
