package domain

import (
	"time"

	"github.com/google/uuid"
)

type Season struct {
	ID       uuid.UUID
	Name     string
	StartsAt time.Time
}

type Tournament struct {
	ID       uuid.UUID
	SeasonID uuid.UUID
	Name     string
	Season   string
	StartsAt time.Time

	Leagues []League
}

type League struct {
	ID           uuid.UUID
	TournamentID uuid.UUID
	Name         string

	Stages []Stage
}

// Stage is a group or the playoff bracket of a league.
type Stage struct {
	ID       uuid.UUID
	LeagueID uuid.UUID
	Name     string
	Playoff  bool
}
