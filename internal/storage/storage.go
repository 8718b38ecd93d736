package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/domain"
)

var ErrNotFound = errors.New("not found")

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
	Get(id uuid.UUID) (domain.Player, error)
	GetByName(name string) (domain.Player, error)
	CreatePlayer(player domain.Player) error
	ImportPlayers(players []domain.Player) error
}

type MatchStorage interface {
	// ListMatches returns the whole match log in play order.
	ListMatches() ([]domain.Match, error)
	ListLeagueMatches(leagueID uuid.UUID) ([]domain.Match, error)
	Create(match domain.Match) error
	ImportMatches(matches []domain.Match) error
}

type TournamentStorage interface {
	GetOrCreateSeason(name string, startsAt time.Time) (domain.Season, error)
	CreateTournament(tournament domain.Tournament) error
	CreateLeague(league domain.League) error
	CreateStage(stage domain.Stage) error
	ListTournaments() ([]domain.Tournament, error)
	GetTournament(id uuid.UUID) (domain.Tournament, error)
	GetLeague(id uuid.UUID) (domain.League, error)
}
