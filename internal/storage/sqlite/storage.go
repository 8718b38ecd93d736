package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sandcourt/beachrank/gen/model"
	"github.com/sandcourt/beachrank/gen/table"
	"github.com/sandcourt/beachrank/internal/config"
	"github.com/sandcourt/beachrank/internal/domain"
	sqlite3 "github.com/sandcourt/beachrank/internal/migrate"
	"github.com/sandcourt/beachrank/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)
var _ storage.TournamentStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "server-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("server storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.CreatedAt.ASC()).
		Query(s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) Get(id uuid.UUID) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.UUID(id))).
		Query(s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) GetByName(name string) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.Name.EQ(sqlite.String(name))).
		Query(s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) CreatePlayer(player domain.Player) error {
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(convertPlayerFromDomain(player)).
		Exec(s.db)
	return err
}

func (s *Storage) ImportPlayers(players []domain.Player) error {
	if len(players) == 0 {
		return nil
	}
	dbPlayers := make([]model.Players, 0, len(players))
	for _, player := range players {
		dbPlayers = append(dbPlayers, convertPlayerFromDomain(player))
	}
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODELS(dbPlayers).
		Exec(s.db)
	return err
}

func (s *Storage) ListMatches() ([]domain.Match, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.PlayedAt.ASC(), table.Matches.Seq.ASC()).
		Query(s.db, &matches)
	if err != nil {
		return nil, err
	}
	return s.hydrateMatches(matches)
}

func (s *Storage) ListLeagueMatches(leagueID uuid.UUID) ([]domain.Match, error) {
	var stages []model.Stages
	err := table.Stages.
		SELECT(table.Stages.AllColumns).
		FROM(table.Stages).
		WHERE(table.Stages.LeagueID.EQ(sqlite.UUID(leagueID))).
		Query(s.db, &stages)
	if err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		return nil, nil
	}
	stageIDs := make([]sqlite.Expression, 0, len(stages))
	for _, stage := range stages {
		stageIDs = append(stageIDs, sqlite.String(stage.ID))
	}
	var matches []model.Matches
	err = table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.StageID.IN(stageIDs...)).
		ORDER_BY(table.Matches.PlayedAt.ASC(), table.Matches.Seq.ASC()).
		Query(s.db, &matches)
	if err != nil {
		return nil, err
	}
	return s.hydrateMatches(matches)
}

func (s *Storage) Create(match domain.Match) error {
	_, err := table.Matches.
		INSERT(table.Matches.AllColumns).
		MODEL(convertMatchFromDomain(match)).
		Exec(s.db)
	return err
}

func (s *Storage) ImportMatches(matches []domain.Match) error {
	if len(matches) == 0 {
		return nil
	}
	dbMatches := make([]model.Matches, 0, len(matches))
	for _, match := range matches {
		dbMatches = append(dbMatches, convertMatchFromDomain(match))
	}
	_, err := table.Matches.
		INSERT(table.Matches.AllColumns).
		MODELS(dbMatches).
		Exec(s.db)
	return err
}

// hydrateMatches fills match participants and tournament tags. Players
// and the tournament tree are loaded whole, matches reference them by
// id.
func (s *Storage) hydrateMatches(dbMatches []model.Matches) ([]domain.Match, error) {
	if len(dbMatches) == 0 {
		return nil, nil
	}
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	playerMap := make(map[string]domain.Player, len(players))
	for _, player := range players {
		playerMap[player.ID.String()] = player
	}

	var stages []model.Stages
	err = table.Stages.SELECT(table.Stages.AllColumns).FROM(table.Stages).Query(s.db, &stages)
	if err != nil {
		return nil, err
	}
	stageMap := make(map[string]model.Stages, len(stages))
	for _, stage := range stages {
		stageMap[stage.ID] = stage
	}

	var leagues []model.Leagues
	err = table.Leagues.SELECT(table.Leagues.AllColumns).FROM(table.Leagues).Query(s.db, &leagues)
	if err != nil {
		return nil, err
	}
	leagueMap := make(map[string]model.Leagues, len(leagues))
	for _, league := range leagues {
		leagueMap[league.ID] = league
	}

	var tournaments []model.Tournaments
	err = table.Tournaments.SELECT(table.Tournaments.AllColumns).FROM(table.Tournaments).Query(s.db, &tournaments)
	if err != nil {
		return nil, err
	}
	tournamentMap := make(map[string]model.Tournaments, len(tournaments))
	for _, tournament := range tournaments {
		tournamentMap[tournament.ID] = tournament
	}

	converted := make([]domain.Match, 0, len(dbMatches))
	for _, dbMatch := range dbMatches {
		match, err := convertMatchToDomain(dbMatch, playerMap)
		if err != nil {
			return nil, err
		}
		if dbMatch.StageID != nil {
			if stage, ok := stageMap[*dbMatch.StageID]; ok {
				match.Stage = stage.Name
				if league, ok := leagueMap[stage.LeagueID]; ok {
					match.League = league.Name
					if tournament, ok := tournamentMap[league.TournamentID]; ok {
						match.Tournament = tournament.Name
					}
				}
			}
		}
		converted = append(converted, match)
	}
	return converted, nil
}

func (s *Storage) GetOrCreateSeason(name string, startsAt time.Time) (domain.Season, error) {
	var season model.Seasons
	err := table.Seasons.
		SELECT(table.Seasons.AllColumns).
		FROM(table.Seasons).
		WHERE(table.Seasons.Name.EQ(sqlite.String(name))).
		Query(s.db, &season)
	if err == nil {
		return convertSeasonToDomain(season)
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return domain.Season{}, err
	}

	season = model.Seasons{
		ID:        uuid.New().String(),
		Name:      name,
		StartsAt:  startsAt,
		CreatedAt: time.Now(),
	}
	_, err = table.Seasons.
		INSERT(table.Seasons.AllColumns).
		MODEL(season).
		Exec(s.db)
	if err != nil {
		return domain.Season{}, err
	}
	return convertSeasonToDomain(season)
}

func (s *Storage) CreateTournament(tournament domain.Tournament) error {
	_, err := table.Tournaments.
		INSERT(table.Tournaments.AllColumns).
		MODEL(convertTournamentFromDomain(tournament)).
		Exec(s.db)
	return err
}

func (s *Storage) CreateLeague(league domain.League) error {
	dbLeague := model.Leagues{
		ID:           league.ID.String(),
		TournamentID: league.TournamentID.String(),
		Name:         league.Name,
	}
	_, err := table.Leagues.
		INSERT(table.Leagues.AllColumns).
		MODEL(dbLeague).
		Exec(s.db)
	return err
}

func (s *Storage) CreateStage(stage domain.Stage) error {
	dbStage := model.Stages{
		ID:       stage.ID.String(),
		LeagueID: stage.LeagueID.String(),
		Name:     stage.Name,
		Playoff:  stage.Playoff,
	}
	_, err := table.Stages.
		INSERT(table.Stages.AllColumns).
		MODEL(dbStage).
		Exec(s.db)
	return err
}

func (s *Storage) ListTournaments() ([]domain.Tournament, error) {
	var tournaments []model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		ORDER_BY(table.Tournaments.StartsAt.DESC()).
		Query(s.db, &tournaments)
	if err != nil {
		return nil, err
	}

	var seasons []model.Seasons
	err = table.Seasons.SELECT(table.Seasons.AllColumns).FROM(table.Seasons).Query(s.db, &seasons)
	if err != nil {
		return nil, err
	}
	seasonMap := make(map[string]model.Seasons, len(seasons))
	for _, season := range seasons {
		seasonMap[season.ID] = season
	}

	converted := make([]domain.Tournament, 0, len(tournaments))
	for _, dbTournament := range tournaments {
		tournament, err := convertTournamentToDomain(dbTournament)
		if err != nil {
			return nil, err
		}
		if dbTournament.SeasonID != nil {
			if season, ok := seasonMap[*dbTournament.SeasonID]; ok {
				tournament.Season = season.Name
			}
		}
		converted = append(converted, tournament)
	}
	return converted, nil
}

func (s *Storage) GetTournament(id uuid.UUID) (domain.Tournament, error) {
	var dbTournament model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		WHERE(table.Tournaments.ID.EQ(sqlite.UUID(id))).
		Query(s.db, &dbTournament)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Tournament{}, storage.ErrNotFound
		}
		return domain.Tournament{}, err
	}
	tournament, err := convertTournamentToDomain(dbTournament)
	if err != nil {
		return domain.Tournament{}, err
	}
	if dbTournament.SeasonID != nil {
		var season model.Seasons
		err = table.Seasons.
			SELECT(table.Seasons.AllColumns).
			FROM(table.Seasons).
			WHERE(table.Seasons.ID.EQ(sqlite.String(*dbTournament.SeasonID))).
			Query(s.db, &season)
		if err == nil {
			tournament.Season = season.Name
		} else if !errors.Is(err, qrm.ErrNoRows) {
			return domain.Tournament{}, err
		}
	}

	var dbLeagues []model.Leagues
	err = table.Leagues.
		SELECT(table.Leagues.AllColumns).
		FROM(table.Leagues).
		WHERE(table.Leagues.TournamentID.EQ(sqlite.UUID(id))).
		Query(s.db, &dbLeagues)
	if err != nil {
		return domain.Tournament{}, err
	}
	if len(dbLeagues) == 0 {
		return tournament, nil
	}

	leagueIDs := make([]sqlite.Expression, 0, len(dbLeagues))
	for _, league := range dbLeagues {
		leagueIDs = append(leagueIDs, sqlite.String(league.ID))
	}
	var dbStages []model.Stages
	err = table.Stages.
		SELECT(table.Stages.AllColumns).
		FROM(table.Stages).
		WHERE(table.Stages.LeagueID.IN(leagueIDs...)).
		Query(s.db, &dbStages)
	if err != nil {
		return domain.Tournament{}, err
	}

	for _, dbLeague := range dbLeagues {
		league, err := convertLeagueToDomain(dbLeague)
		if err != nil {
			return domain.Tournament{}, err
		}
		for _, dbStage := range dbStages {
			if dbStage.LeagueID != dbLeague.ID {
				continue
			}
			stage, err := convertStageToDomain(dbStage)
			if err != nil {
				return domain.Tournament{}, err
			}
			league.Stages = append(league.Stages, stage)
		}
		tournament.Leagues = append(tournament.Leagues, league)
	}
	return tournament, nil
}

func (s *Storage) GetLeague(id uuid.UUID) (domain.League, error) {
	var dbLeague model.Leagues
	err := table.Leagues.
		SELECT(table.Leagues.AllColumns).
		FROM(table.Leagues).
		WHERE(table.Leagues.ID.EQ(sqlite.UUID(id))).
		Query(s.db, &dbLeague)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.League{}, storage.ErrNotFound
		}
		return domain.League{}, err
	}
	league, err := convertLeagueToDomain(dbLeague)
	if err != nil {
		return domain.League{}, err
	}

	var dbStages []model.Stages
	err = table.Stages.
		SELECT(table.Stages.AllColumns).
		FROM(table.Stages).
		WHERE(table.Stages.LeagueID.EQ(sqlite.UUID(id))).
		Query(s.db, &dbStages)
	if err != nil {
		return domain.League{}, err
	}
	for _, dbStage := range dbStages {
		stage, err := convertStageToDomain(dbStage)
		if err != nil {
			return domain.League{}, err
		}
		league.Stages = append(league.Stages, stage)
	}
	return league, nil
}
