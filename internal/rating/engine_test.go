package rating

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/elo"
)

func testPlayer(name string) domain.Player {
	return domain.Player{ID: uuid.New(), Name: name}
}

func TestComputeSingleMatch(t *testing.T) {
	a := testPlayer("Анна")
	b := testPlayer("Белла")
	c := testPlayer("Вера")
	d := testPlayer("Галя")
	date := time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)
	match := domain.Match{
		ID:     uuid.New(),
		Date:   date,
		TeamA:  domain.Team{a, b},
		TeamB:  domain.Team{c, d},
		ScoreA: 21,
		ScoreB: 15,
	}

	got := Compute([]domain.Match{match})

	want := Result{
		Leaderboard: []PlayerRating{
			{
				Player: a, Rating: 1520, GamesPlayed: 1, LastChange: 20,
				History: []Snapshot{
					{Date: date, Rating: 1500, MatchID: uuid.Nil},
					{Date: date, Rating: 1520, MatchID: match.ID, Change: 20},
				},
			},
			{
				Player: b, Rating: 1520, GamesPlayed: 1, LastChange: 20,
				History: []Snapshot{
					{Date: date, Rating: 1500, MatchID: uuid.Nil},
					{Date: date, Rating: 1520, MatchID: match.ID, Change: 20},
				},
			},
			{
				Player: c, Rating: 1480, GamesPlayed: 1, LastChange: -20,
				History: []Snapshot{
					{Date: date, Rating: 1500, MatchID: uuid.Nil},
					{Date: date, Rating: 1480, MatchID: match.ID, Change: -20},
				},
			},
			{
				Player: d, Rating: 1480, GamesPlayed: 1, LastChange: -20,
				History: []Snapshot{
					{Date: date, Rating: 1500, MatchID: uuid.Nil},
					{Date: date, Rating: 1480, MatchID: match.ID, Change: -20},
				},
			},
		},
		Matches: []MatchResult{
			{
				Match: match,
				Changes: map[uuid.UUID]int{
					a.ID: 20, b.ID: 20, c.ID: -20, d.ID: -20,
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

// Every player is compared against the mean rating of the opposing
// pair, taken before the match.
func TestComputeOpposingTeamAverage(t *testing.T) {
	a := testPlayer("Аня")
	b := testPlayer("Боря")
	c := testPlayer("Витя")
	d := testPlayer("Гриша")
	e := testPlayer("Егор")
	f := testPlayer("Федя")
	day := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)

	matches := []domain.Match{
		{
			ID:    uuid.New(),
			Date:  day,
			TeamA: domain.Team{c, d}, TeamB: domain.Team{e, f},
			ScoreA: 21, ScoreB: 15,
		},
		{
			ID:    uuid.New(),
			Date:  day.Add(time.Hour),
			TeamA: domain.Team{a, b}, TeamB: domain.Team{c, d},
			ScoreA: 21, ScoreB: 19,
		},
	}

	got := Compute(matches)

	// After match one c and d sit on 1520. Fresh a and b beat the
	// 1520 average: round(40*(1-1/(1+10^(20/400)))) = 21. The losers
	// drop the mirrored 21 against the fresh 1500 average.
	wantRatings := map[string]int{
		"Аня": 1521, "Боря": 1521,
		"Витя": 1499, "Гриша": 1499,
		"Егор": 1480, "Федя": 1480,
	}
	wantOrder := []string{"Аня", "Боря", "Витя", "Гриша", "Егор", "Федя"}

	if len(got.Leaderboard) != len(wantOrder) {
		t.Fatalf("leaderboard size = %d, want %d", len(got.Leaderboard), len(wantOrder))
	}
	for i, pr := range got.Leaderboard {
		if pr.Player.Name != wantOrder[i] {
			t.Errorf("leaderboard[%d] = %s, want %s", i, pr.Player.Name, wantOrder[i])
		}
		if pr.Rating != wantRatings[pr.Player.Name] {
			t.Errorf("%s rating = %d, want %d", pr.Player.Name, pr.Rating, wantRatings[pr.Player.Name])
		}
	}

	secondChanges := got.Matches[1].Changes
	for _, id := range []uuid.UUID{a.ID, b.ID} {
		if secondChanges[id] != 21 {
			t.Errorf("winner change = %d, want 21", secondChanges[id])
		}
	}
	for _, id := range []uuid.UUID{c.ID, d.ID} {
		if secondChanges[id] != -21 {
			t.Errorf("loser change = %d, want -21", secondChanges[id])
		}
	}
}

// The K coefficient has to follow the player's own game counter: 40
// for the first 15 games, 32 from the 16th on. One player loses 16
// games in a row, always against fresh 1500-rated opponents, so each
// observed change must match the elo primitives fed with the frozen
// pre-match state.
func TestComputeCalibrationBoundary(t *testing.T) {
	p := testPlayer("Проигравший")
	day := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	const games = 16
	matches := make([]domain.Match, 0, games)
	for i := 0; i < games; i++ {
		matches = append(matches, domain.Match{
			ID:    uuid.New(),
			Date:  day.Add(time.Duration(i) * time.Hour),
			TeamA: domain.Team{p, testPlayer("Партнёр")},
			TeamB: domain.Team{testPlayer("Соперник"), testPlayer("Соперник")},
			ScoreA: 15, ScoreB: 21,
		})
	}

	got := Compute(matches)

	pr, ok := got.Get(p.ID)
	if !ok {
		t.Fatal("player missing from leaderboard")
	}
	if pr.GamesPlayed != games {
		t.Fatalf("games played = %d, want %d", pr.GamesPlayed, games)
	}
	if pr.Calibrated != true {
		t.Error("player with 16 games must be calibrated")
	}

	rating := elo.InitialRating
	for i, mr := range got.Matches {
		want := elo.Delta(float64(rating), elo.InitialRating, elo.KFactor(i), elo.Lose)
		if mr.Changes[p.ID] != want {
			t.Errorf("game %d change = %d, want %d", i+1, mr.Changes[p.ID], want)
		}
		rating += want
	}
	if pr.Rating != rating {
		t.Errorf("final rating = %d, want %d", pr.Rating, rating)
	}

	// The switch itself: the 16th game must be K=32, not K=40.
	last := got.Matches[games-1].Changes[p.ID]
	preLast := pr.History[games-1].Rating
	if k40 := elo.Delta(float64(preLast), elo.InitialRating, elo.KCalibration, elo.Lose); last == k40 {
		t.Errorf("16th game change %d still uses calibration K", last)
	}
	if k32 := elo.Delta(float64(preLast), elo.InitialRating, elo.KDefault, elo.Lose); last != k32 {
		t.Errorf("16th game change = %d, want %d", last, k32)
	}
}

func TestComputeCalibratedFlag(t *testing.T) {
	p := testPlayer("Игрок")
	day := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	var matches []domain.Match
	for i := 0; i < elo.CalibrationGames-1; i++ {
		matches = append(matches, domain.Match{
			ID:    uuid.New(),
			Date:  day.Add(time.Duration(i) * time.Hour),
			TeamA: domain.Team{p, testPlayer("Партнёр")},
			TeamB: domain.Team{testPlayer("Соперник"), testPlayer("Соперник")},
			ScoreA: 21, ScoreB: 15,
		})
	}

	res := Compute(matches)
	pr, _ := res.Get(p.ID)
	if pr.Calibrated {
		t.Errorf("player with %d games must not be calibrated", pr.GamesPlayed)
	}
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil)
	if len(got.Leaderboard) != 0 || len(got.Matches) != 0 {
		t.Errorf("Compute(nil) = %+v, want empty result", got)
	}
}

func TestComputeDeterminism(t *testing.T) {
	a := testPlayer("Аня")
	b := testPlayer("Боря")
	c := testPlayer("Витя")
	d := testPlayer("Гриша")
	day := time.Date(2023, 8, 5, 0, 0, 0, 0, time.UTC)

	var matches []domain.Match
	for i := 0; i < 10; i++ {
		match := domain.Match{
			ID:    uuid.New(),
			Date:  day.Add(time.Duration(i) * time.Hour),
			TeamA: domain.Team{a, b}, TeamB: domain.Team{c, d},
			ScoreA: 21, ScoreB: 15 + i%6,
		}
		if i%3 == 0 {
			match.TeamA, match.TeamB = domain.Team{a, c}, domain.Team{b, d}
			match.ScoreA, match.ScoreB = 19, 21
		}
		matches = append(matches, match)
	}

	first := Compute(matches)
	second := Compute(matches)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Compute() is not deterministic (-first +second):\n%s", diff)
	}
}
