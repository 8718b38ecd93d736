package sqlite

import (
	"time"

	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/gen/model"
	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/gender"
)

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, err
	}
	return domain.Player{
		ID:           id,
		Name:         player.Name,
		Gender:       gender.Gender(player.Gender),
		RegisteredAt: player.CreatedAt,
	}, nil
}

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:        player.ID.String(),
		Name:      player.Name,
		Gender:    string(player.Gender),
		CreatedAt: player.RegisteredAt,
	}
}

func convertMatchToDomain(match model.Matches, players map[string]domain.Player) (domain.Match, error) {
	id, err := uuid.Parse(match.ID)
	if err != nil {
		return domain.Match{}, err
	}
	converted := domain.Match{
		ID:     id,
		Date:   match.PlayedAt,
		Seq:    int(match.Seq),
		TeamA:  domain.Team{players[match.PlayerA1], players[match.PlayerA2]},
		TeamB:  domain.Team{players[match.PlayerB1], players[match.PlayerB2]},
		ScoreA: int(match.ScoreA),
		ScoreB: int(match.ScoreB),
		Round:  match.Round,
	}
	if match.StageID != nil {
		stageID, err := uuid.Parse(*match.StageID)
		if err != nil {
			return domain.Match{}, err
		}
		converted.StageID = stageID
	}
	return converted, nil
}

func convertMatchFromDomain(match domain.Match) model.Matches {
	converted := model.Matches{
		ID:        match.ID.String(),
		PlayerA1:  match.TeamA[0].ID.String(),
		PlayerA2:  match.TeamA[1].ID.String(),
		PlayerB1:  match.TeamB[0].ID.String(),
		PlayerB2:  match.TeamB[1].ID.String(),
		ScoreA:    int32(match.ScoreA),
		ScoreB:    int32(match.ScoreB),
		Round:     match.Round,
		Seq:       int32(match.Seq),
		PlayedAt:  match.Date,
		CreatedAt: time.Now(),
	}
	if match.StageID != uuid.Nil {
		stageID := match.StageID.String()
		converted.StageID = &stageID
	}
	return converted
}

func convertSeasonToDomain(season model.Seasons) (domain.Season, error) {
	id, err := uuid.Parse(season.ID)
	if err != nil {
		return domain.Season{}, err
	}
	return domain.Season{
		ID:       id,
		Name:     season.Name,
		StartsAt: season.StartsAt,
	}, nil
}

func convertTournamentToDomain(tournament model.Tournaments) (domain.Tournament, error) {
	id, err := uuid.Parse(tournament.ID)
	if err != nil {
		return domain.Tournament{}, err
	}
	converted := domain.Tournament{
		ID:       id,
		Name:     tournament.Name,
		StartsAt: tournament.StartsAt,
	}
	if tournament.SeasonID != nil {
		seasonID, err := uuid.Parse(*tournament.SeasonID)
		if err != nil {
			return domain.Tournament{}, err
		}
		converted.SeasonID = seasonID
	}
	return converted, nil
}

func convertTournamentFromDomain(tournament domain.Tournament) model.Tournaments {
	converted := model.Tournaments{
		ID:        tournament.ID.String(),
		Name:      tournament.Name,
		StartsAt:  tournament.StartsAt,
		CreatedAt: time.Now(),
	}
	if tournament.SeasonID != uuid.Nil {
		seasonID := tournament.SeasonID.String()
		converted.SeasonID = &seasonID
	}
	return converted
}

func convertLeagueToDomain(league model.Leagues) (domain.League, error) {
	id, err := uuid.Parse(league.ID)
	if err != nil {
		return domain.League{}, err
	}
	tournamentID, err := uuid.Parse(league.TournamentID)
	if err != nil {
		return domain.League{}, err
	}
	return domain.League{
		ID:           id,
		TournamentID: tournamentID,
		Name:         league.Name,
	}, nil
}

func convertStageToDomain(stage model.Stages) (domain.Stage, error) {
	id, err := uuid.Parse(stage.ID)
	if err != nil {
		return domain.Stage{}, err
	}
	leagueID, err := uuid.Parse(stage.LeagueID)
	if err != nil {
		return domain.Stage{}, err
	}
	return domain.Stage{
		ID:       id,
		LeagueID: leagueID,
		Name:     stage.Name,
		Playoff:  stage.Playoff,
	}, nil
}
