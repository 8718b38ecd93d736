package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/elo"
	"github.com/sandcourt/beachrank/internal/standings"
	"github.com/sandcourt/beachrank/internal/storage"
)

// memStorage keeps everything in slices, enough to drive the service
// in tests.
type memStorage struct {
	players     []domain.Player
	matches     []domain.Match
	seasons     []domain.Season
	tournaments []domain.Tournament
	leagues     []domain.League
	stages      []domain.Stage
}

func (m *memStorage) ListPlayers() ([]domain.Player, error) {
	return append([]domain.Player(nil), m.players...), nil
}

func (m *memStorage) Get(id uuid.UUID) (domain.Player, error) {
	for _, player := range m.players {
		if player.ID == id {
			return player, nil
		}
	}
	return domain.Player{}, storage.ErrNotFound
}

func (m *memStorage) GetByName(name string) (domain.Player, error) {
	for _, player := range m.players {
		if player.Name == name {
			return player, nil
		}
	}
	return domain.Player{}, storage.ErrNotFound
}

func (m *memStorage) CreatePlayer(player domain.Player) error {
	m.players = append(m.players, player)
	return nil
}

func (m *memStorage) ImportPlayers(players []domain.Player) error {
	m.players = append(m.players, players...)
	return nil
}

func (m *memStorage) ListMatches() ([]domain.Match, error) {
	return append([]domain.Match(nil), m.matches...), nil
}

func (m *memStorage) ListLeagueMatches(leagueID uuid.UUID) ([]domain.Match, error) {
	leagueStages := make(map[uuid.UUID]domain.Stage)
	for _, stage := range m.stages {
		if stage.LeagueID == leagueID {
			leagueStages[stage.ID] = stage
		}
	}
	var matches []domain.Match
	for _, match := range m.matches {
		if stage, ok := leagueStages[match.StageID]; ok {
			match.Stage = stage.Name
			matches = append(matches, match)
		}
	}
	return matches, nil
}

func (m *memStorage) Create(match domain.Match) error {
	m.matches = append(m.matches, match)
	return nil
}

func (m *memStorage) ImportMatches(matches []domain.Match) error {
	m.matches = append(m.matches, matches...)
	return nil
}

func (m *memStorage) GetOrCreateSeason(name string, startsAt time.Time) (domain.Season, error) {
	for _, season := range m.seasons {
		if season.Name == name {
			return season, nil
		}
	}
	season := domain.Season{ID: uuid.New(), Name: name, StartsAt: startsAt}
	m.seasons = append(m.seasons, season)
	return season, nil
}

func (m *memStorage) CreateTournament(tournament domain.Tournament) error {
	m.tournaments = append(m.tournaments, tournament)
	return nil
}

func (m *memStorage) CreateLeague(league domain.League) error {
	m.leagues = append(m.leagues, league)
	return nil
}

func (m *memStorage) CreateStage(stage domain.Stage) error {
	m.stages = append(m.stages, stage)
	return nil
}

func (m *memStorage) ListTournaments() ([]domain.Tournament, error) {
	return append([]domain.Tournament(nil), m.tournaments...), nil
}

func (m *memStorage) GetTournament(id uuid.UUID) (domain.Tournament, error) {
	for _, tournament := range m.tournaments {
		if tournament.ID == id {
			return tournament, nil
		}
	}
	return domain.Tournament{}, storage.ErrNotFound
}

func (m *memStorage) GetLeague(id uuid.UUID) (domain.League, error) {
	for _, league := range m.leagues {
		if league.ID == id {
			for _, stage := range m.stages {
				if stage.LeagueID == id {
					league.Stages = append(league.Stages, stage)
				}
			}
			return league, nil
		}
	}
	return domain.League{}, storage.ErrNotFound
}

func newTestService(db *memStorage) *PlayerService {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return New(db, db, db, l)
}

func testPlayer(name string) domain.Player {
	return domain.Player{ID: uuid.New(), Name: name}
}

func TestImportTournament(t *testing.T) {
	db := &memStorage{}
	s := newTestService(db)

	protocol := `{
	  "name": "Кубок открытия",
	  "season": "Лето 2023",
	  "date": "2023-06-03",
	  "leagues": [
	    {
	      "name": "Высшая лига",
	      "groups": [
	        {
	          "name": "Группа А",
	          "matches": [
	            {"team_a": ["Вася П.", "Петя Иванов"], "team_b": ["Коля Смирнов", "Миша Белов"], "score_a": 21, "score_b": 15},
	            {"team_a": ["Вася П.", "Коля Смирнов"], "team_b": ["Петя Иванов", "Миша Белов"], "score_a": 18, "score_b": 18}
	          ]
	        }
	      ],
	      "playoff": [
	        {
	          "name": "Финал",
	          "matches": [
	            {"team_a": ["Вася П.", "Петя Иванов"], "team_b": ["Коля Смирнов", "Миша Белов"], "score_a": 15, "score_b": 13}
	          ]
	        }
	      ]
	    }
	  ]
	}`
	aliases := map[string]string{"Вася П.": "Вася Пупкин"}

	report, err := s.ImportTournament([]byte(protocol), aliases)
	if err != nil {
		t.Fatalf("ImportTournament() error = %v", err)
	}
	if report.MatchesImported != 2 {
		t.Errorf("MatchesImported = %d, want 2", report.MatchesImported)
	}
	if report.DrawsSkipped != 1 {
		t.Errorf("DrawsSkipped = %d, want 1", report.DrawsSkipped)
	}
	if report.PlayersCreated != 4 {
		t.Errorf("PlayersCreated = %d, want 4", report.PlayersCreated)
	}

	if _, err := db.GetByName("Вася Пупкин"); err != nil {
		t.Error("alias must resolve to the canonical player")
	}
	if _, err := db.GetByName("Вася П."); err == nil {
		t.Error("protocol spelling must not become a player")
	}

	if len(db.matches) != 2 {
		t.Fatalf("stored matches = %d, want 2", len(db.matches))
	}
	group, final := db.matches[0], db.matches[1]
	if group.Seq != 1 || final.Seq != 2 {
		t.Errorf("seq = %d, %d, want 1, 2", group.Seq, final.Seq)
	}
	if group.Round != "" || group.IsPlayoff() {
		t.Errorf("group match must not be playoff: %+v", group)
	}
	if final.Round != "Финал" || !final.IsPlayoff() {
		t.Errorf("final must be playoff round: %+v", final)
	}
	if len(db.stages) != 2 {
		t.Errorf("stages = %d, want group + playoff", len(db.stages))
	}
	if len(db.tournaments) != 1 || db.tournaments[0].SeasonID == uuid.Nil {
		t.Errorf("tournament must be linked to the season: %+v", db.tournaments)
	}

	// a second import of the same season must reuse it
	_, err = s.ImportTournament([]byte(protocol), aliases)
	if err != nil {
		t.Fatalf("second ImportTournament() error = %v", err)
	}
	if len(db.seasons) != 1 {
		t.Errorf("seasons = %d, want 1", len(db.seasons))
	}
}

func TestGetRatings(t *testing.T) {
	vasya := testPlayer("Вася")
	petya := testPlayer("Петя")
	kolya := testPlayer("Коля")
	misha := testPlayer("Миша")
	idle := testPlayer("Егор")

	db := &memStorage{
		players: []domain.Player{vasya, petya, kolya, misha, idle},
		matches: []domain.Match{{
			ID:     uuid.New(),
			Date:   time.Date(2023, 6, 3, 12, 0, 0, 0, time.UTC),
			TeamA:  domain.Team{vasya, petya},
			TeamB:  domain.Team{kolya, misha},
			ScoreA: 21,
			ScoreB: 15,
		}},
	}
	s := newTestService(db)

	ratings := s.GetRatings()
	if len(ratings) != 5 {
		t.Fatalf("ratings = %d players, want 5", len(ratings))
	}
	if ratings[0].EloRating != 1520 || ratings[0].RatingRank != 1 {
		t.Errorf("leader = %+v, want 1520 at rank 1", ratings[0])
	}
	if ratings[0].RatingChange != 20 {
		t.Errorf("leader change = %d, want 20", ratings[0].RatingChange)
	}
	if ratings[0].Glicko2Rating.IsZero() {
		t.Error("players with games must carry a glicko2 rating")
	}

	last := ratings[len(ratings)-1]
	if last.ID != idle.ID {
		t.Fatalf("idle player must close the list, got %s", last.Name)
	}
	if last.EloRating != elo.InitialRating || last.RatingRank != 0 {
		t.Errorf("idle player = %+v, want initial rating and no rank", last)
	}

	// second call is served from cache
	again := s.GetRatings()
	if len(again) != len(ratings) {
		t.Errorf("cached ratings = %d players, want %d", len(again), len(ratings))
	}
}

func TestCreateMatchValidation(t *testing.T) {
	vasya := testPlayer("Вася")
	petya := testPlayer("Петя")
	kolya := testPlayer("Коля")
	misha := testPlayer("Миша")

	tests := []struct {
		name    string
		match   domain.Match
		wantErr error
	}{
		{
			name: "valid",
			match: domain.Match{
				TeamA:  domain.Team{vasya, petya},
				TeamB:  domain.Team{kolya, misha},
				ScoreA: 21, ScoreB: 17,
			},
		},
		{
			name: "draw",
			match: domain.Match{
				TeamA:  domain.Team{vasya, petya},
				TeamB:  domain.Team{kolya, misha},
				ScoreA: 15, ScoreB: 15,
			},
			wantErr: ErrDraw,
		},
		{
			name: "same player on both sides",
			match: domain.Match{
				TeamA:  domain.Team{vasya, petya},
				TeamB:  domain.Team{vasya, misha},
				ScoreA: 21, ScoreB: 15,
			},
			wantErr: ErrSamePlayer,
		},
		{
			name: "missing player",
			match: domain.Match{
				TeamA:  domain.Team{vasya, petya},
				TeamB:  domain.Team{kolya, {}},
				ScoreA: 21, ScoreB: 15,
			},
			wantErr: ErrPlayerNotFound,
		},
		{
			name: "negative score",
			match: domain.Match{
				TeamA:  domain.Team{vasya, petya},
				TeamB:  domain.Team{kolya, misha},
				ScoreA: -1, ScoreB: 15,
			},
			wantErr: ErrNegativeScore,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &memStorage{players: []domain.Player{vasya, petya, kolya, misha}}
			s := newTestService(db)
			created, err := s.CreateMatch(tt.match)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("CreateMatch() error = %v", err)
				}
				if created.ID == uuid.Nil || created.Date.IsZero() {
					t.Errorf("created match must get id and date: %+v", created)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateMatch() error = %v, want %v", err, tt.wantErr)
			}
			if len(db.matches) != 0 {
				t.Error("invalid match must not be stored")
			}
		})
	}
}

func TestGetPlayerData(t *testing.T) {
	vasya := testPlayer("Вася")
	petya := testPlayer("Петя")
	kolya := testPlayer("Коля")
	misha := testPlayer("Миша")

	day := time.Date(2023, 6, 3, 12, 0, 0, 0, time.UTC)
	db := &memStorage{
		players: []domain.Player{vasya, petya, kolya, misha},
		matches: []domain.Match{
			{
				ID: uuid.New(), Date: day,
				TeamA: domain.Team{vasya, petya}, TeamB: domain.Team{kolya, misha},
				ScoreA: 21, ScoreB: 15,
			},
			{
				ID: uuid.New(), Date: day.Add(time.Hour),
				TeamA: domain.Team{vasya, kolya}, TeamB: domain.Team{petya, misha},
				ScoreA: 19, ScoreB: 21,
			},
		},
	}
	s := newTestService(db)

	card, err := s.GetPlayerData(vasya.ID)
	if err != nil {
		t.Fatalf("GetPlayerData() error = %v", err)
	}
	if card.Player.ID != vasya.ID {
		t.Errorf("card player = %s", card.Player.Name)
	}
	if len(card.Matches) != 2 {
		t.Errorf("card matches = %d, want 2", len(card.Matches))
	}
	// newest first
	if !card.Matches[0].Date.After(card.Matches[1].Date) {
		t.Error("card matches must be newest first")
	}
	// initial snapshot plus two games
	if len(card.History) != 3 {
		t.Errorf("history = %d points, want 3", len(card.History))
	}
	if len(card.Partners) != 2 {
		t.Fatalf("partners = %+v, want 2", card.Partners)
	}
	for _, partner := range card.Partners {
		switch partner.Player.ID {
		case petya.ID:
			if partner.Wins != 1 || partner.Loses != 0 {
				t.Errorf("with Петя = %d/%d, want 1/0", partner.Wins, partner.Loses)
			}
		case kolya.ID:
			if partner.Wins != 0 || partner.Loses != 1 {
				t.Errorf("with Коля = %d/%d, want 0/1", partner.Wins, partner.Loses)
			}
		default:
			t.Errorf("unexpected partner %s", partner.Player.Name)
		}
	}
	if len(card.Rivals) != 3 {
		t.Errorf("rivals = %+v, want 3", card.Rivals)
	}
	for _, rival := range card.Rivals {
		if rival.Player.ID == misha.ID {
			if rival.Wins != 1 || rival.Loses != 1 {
				t.Errorf("against Миша = %d/%d, want 1/1", rival.Wins, rival.Loses)
			}
		}
	}
}

func TestGetStandings(t *testing.T) {
	vasya := testPlayer("Вася")
	petya := testPlayer("Петя")
	kolya := testPlayer("Коля")
	misha := testPlayer("Миша")

	leagueID := uuid.New()
	otherLeagueID := uuid.New()
	group := domain.Stage{ID: uuid.New(), LeagueID: leagueID, Name: "Группа А"}
	playoff := domain.Stage{ID: uuid.New(), LeagueID: leagueID, Name: "Плейофф", Playoff: true}
	otherGroup := domain.Stage{ID: uuid.New(), LeagueID: otherLeagueID, Name: "Группа А"}

	day := time.Date(2023, 6, 3, 0, 0, 0, 0, time.UTC)
	db := &memStorage{
		players: []domain.Player{vasya, petya, kolya, misha},
		stages:  []domain.Stage{group, playoff, otherGroup},
		matches: []domain.Match{
			{
				ID: uuid.New(), StageID: group.ID, Date: day, Seq: 1,
				TeamA: domain.Team{vasya, petya}, TeamB: domain.Team{kolya, misha},
				ScoreA: 21, ScoreB: 15,
			},
			{
				ID: uuid.New(), StageID: playoff.ID, Date: day, Seq: 2, Round: "Финал",
				TeamA: domain.Team{vasya, petya}, TeamB: domain.Team{kolya, misha},
				ScoreA: 15, ScoreB: 13,
			},
			{
				ID: uuid.New(), StageID: otherGroup.ID, Date: day, Seq: 3,
				TeamA: domain.Team{vasya, petya}, TeamB: domain.Team{kolya, misha},
				ScoreA: 21, ScoreB: 10,
			},
		},
	}
	s := newTestService(db)

	groups, err := s.GetStandings(leagueID, standings.Italian)
	if err != nil {
		t.Fatalf("GetStandings() error = %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].Stage != "Группа А" {
		t.Errorf("group name = %q, want %q", groups[0].Stage, "Группа А")
	}
	rows := groups[0].Rows
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	for _, row := range rows {
		if row.Games != 1 {
			t.Errorf("%s played %d games in the table, playoff and other leagues must not count", row.Player.Name, row.Games)
		}
	}
	if rows[0].Points != 3 {
		t.Errorf("winner points = %d, want 3", rows[0].Points)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	vasya := testPlayer("Вася")
	petya := testPlayer("Петя")
	kolya := testPlayer("Коля")
	misha := testPlayer("Миша")
	db := &memStorage{
		players: []domain.Player{vasya, petya, kolya, misha},
		matches: []domain.Match{{
			ID:    uuid.New(),
			Date:  time.Date(2023, 6, 3, 12, 0, 0, 0, time.UTC),
			TeamA: domain.Team{vasya, petya}, TeamB: domain.Team{kolya, misha},
			ScoreA: 21, ScoreB: 15,
		}},
	}
	data, err := newTestService(db).Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	restored := &memStorage{}
	err = newTestService(restored).Import(data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(restored.players) != 4 || len(restored.matches) != 1 {
		t.Errorf("restored %d players and %d matches", len(restored.players), len(restored.matches))
	}

	err = newTestService(&memStorage{}).Import([]byte(`{"Version": 2}`))
	if err == nil {
		t.Error("unknown export version must be rejected")
	}
}
