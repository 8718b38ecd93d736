package service

import (
	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/gender"
	"github.com/sandcourt/beachrank/internal/metrics"
	"github.com/sandcourt/beachrank/internal/normalize"
	"github.com/sandcourt/beachrank/internal/tournament"
)

// ImportReport sums up one protocol import.
type ImportReport struct {
	Tournament      domain.Tournament
	MatchesImported int
	DrawsSkipped    int
	PlayersCreated  int
}

// ImportTournament stores a whole protocol file: the tournament tree,
// players seen for the first time and every played match. Draws are
// skipped and counted. Aliases map protocol spellings to canonical
// player names.
func (s *PlayerService) ImportTournament(data []byte, aliases map[string]string) (ImportReport, error) {
	var report ImportReport

	file, err := tournament.Parse(data)
	if err != nil {
		return report, err
	}

	existing, err := s.playerStorage.ListPlayers()
	if err != nil {
		return report, err
	}
	known := make(map[string]domain.Player, len(existing))
	for _, player := range existing {
		known[player.Name] = player
	}
	var created []domain.Player
	resolve := func(raw string) domain.Player {
		name := normalize.Name(raw)
		if canonical, ok := aliases[name]; ok {
			name = normalize.Name(canonical)
		}
		if player, ok := known[name]; ok {
			return player
		}
		player := domain.Player{
			ID:           uuid.New(),
			Name:         name,
			Gender:       gender.Guess(name),
			RegisteredAt: file.Date.Time,
		}
		known[name] = player
		created = append(created, player)
		return player
	}

	var seasonID uuid.UUID
	if file.Season != "" {
		season, err := s.tournamentStorage.GetOrCreateSeason(file.Season, file.Date.Time)
		if err != nil {
			return report, err
		}
		seasonID = season.ID
	}
	newTournament := domain.Tournament{
		ID:       uuid.New(),
		SeasonID: seasonID,
		Name:     file.Name,
		StartsAt: file.Date.Time,
	}
	if err := s.tournamentStorage.CreateTournament(newTournament); err != nil {
		return report, err
	}
	report.Tournament = newTournament

	var matches []domain.Match
	seq := 0
	addMatch := func(stage domain.Stage, round string, m tournament.Match) {
		if m.IsDraw() {
			report.DrawsSkipped++
			return
		}
		seq++
		matches = append(matches, domain.Match{
			ID:      uuid.New(),
			StageID: stage.ID,
			Date:    file.Date.Time,
			Seq:     seq,
			TeamA:   domain.Team{resolve(m.TeamA[0]), resolve(m.TeamA[1])},
			TeamB:   domain.Team{resolve(m.TeamB[0]), resolve(m.TeamB[1])},
			ScoreA:  m.ScoreA,
			ScoreB:  m.ScoreB,
			Round:   round,
		})
	}

	for _, fileLeague := range file.Leagues {
		league := domain.League{
			ID:           uuid.New(),
			TournamentID: newTournament.ID,
			Name:         fileLeague.Name,
		}
		if err := s.tournamentStorage.CreateLeague(league); err != nil {
			return report, err
		}
		for _, group := range fileLeague.Groups {
			stage := domain.Stage{
				ID:       uuid.New(),
				LeagueID: league.ID,
				Name:     group.Name,
			}
			if err := s.tournamentStorage.CreateStage(stage); err != nil {
				return report, err
			}
			for _, match := range group.Matches {
				addMatch(stage, "", match)
			}
		}
		if len(fileLeague.Playoff) > 0 {
			stage := domain.Stage{
				ID:       uuid.New(),
				LeagueID: league.ID,
				Name:     "Плейофф",
				Playoff:  true,
			}
			if err := s.tournamentStorage.CreateStage(stage); err != nil {
				return report, err
			}
			for _, round := range fileLeague.Playoff {
				for _, match := range round.Matches {
					addMatch(stage, round.Name, match)
				}
			}
		}
	}

	if err := s.playerStorage.ImportPlayers(created); err != nil {
		return report, err
	}
	if err := s.matchStorage.ImportMatches(matches); err != nil {
		return report, err
	}
	report.MatchesImported = len(matches)
	report.PlayersCreated = len(created)

	metrics.MatchesImported.Add(float64(len(matches)))
	s.cache.Invalidate()
	s.log.WithFields(map[string]interface{}{
		"tournament": newTournament.Name,
		"matches":    report.MatchesImported,
		"draws":      report.DrawsSkipped,
		"players":    report.PlayersCreated,
	}).Info("tournament imported")
	return report, nil
}

func (s *PlayerService) ListTournaments() ([]domain.Tournament, error) {
	return s.tournamentStorage.ListTournaments()
}

func (s *PlayerService) GetTournament(id uuid.UUID) (domain.Tournament, error) {
	return s.tournamentStorage.GetTournament(id)
}

func (s *PlayerService) GetLeague(id uuid.UUID) (domain.League, error) {
	return s.tournamentStorage.GetLeague(id)
}
