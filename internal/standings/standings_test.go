package standings

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/domain"
)

func TestMatchPoints(t *testing.T) {
	type args struct {
		my  int
		opp int
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			name: "balanced win",
			args: args{my: 15, opp: 13},
			want: 2,
		},
		{
			name: "balanced loss",
			args: args{my: 13, opp: 15},
			want: 1,
		},
		{
			name: "clean win",
			args: args{my: 15, opp: 10},
			want: 3,
		},
		{
			name: "clean loss",
			args: args{my: 10, opp: 15},
			want: 0,
		},
		{
			name: "margin of two in a long set is still balanced",
			args: args{my: 21, opp: 19},
			want: 2,
		},
		{
			name: "win by one",
			args: args{my: 22, opp: 21},
			want: 3,
		},
		{
			name: "loss by one",
			args: args{my: 21, opp: 22},
			want: 0,
		},
		{
			name: "blowout",
			args: args{my: 21, opp: 3},
			want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchPoints(tt.args.my, tt.args.opp); got != tt.want {
				t.Errorf("MatchPoints(%d, %d) = %v, want %v", tt.args.my, tt.args.opp, got, tt.want)
			}
		})
	}
}

func groupMatch(a1, a2, b1, b2 domain.Player, sa, sb int) domain.Match {
	return domain.Match{
		ID:     uuid.New(),
		Date:   time.Date(2023, 8, 5, 10, 0, 0, 0, time.UTC),
		TeamA:  domain.Team{a1, a2},
		TeamB:  domain.Team{b1, b2},
		ScoreA: sa,
		ScoreB: sb,
	}
}

func TestBuildItalian(t *testing.T) {
	a := domain.Player{ID: uuid.New(), Name: "Аня"}
	b := domain.Player{ID: uuid.New(), Name: "Боря"}
	c := domain.Player{ID: uuid.New(), Name: "Витя"}
	d := domain.Player{ID: uuid.New(), Name: "Гриша"}

	matches := []domain.Match{
		// a+b take a clean win, c+d get nothing.
		groupMatch(a, b, c, d, 21, 15),
		// c+d win the tie-break: 2 points against 1.
		groupMatch(c, d, a, b, 15, 13),
	}

	rows := Build(matches, Italian)
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}

	// a and b: 3+1=4 points, diff +4. c and d: 0+2=2 points, diff -4.
	for i, want := range []struct {
		name   string
		rank   int
		points int
		wins   int
		losses int
		diff   int
	}{
		{name: "Аня", rank: 1, points: 4, wins: 1, losses: 1, diff: 4},
		{name: "Боря", rank: 2, points: 4, wins: 1, losses: 1, diff: 4},
		{name: "Витя", rank: 3, points: 2, wins: 1, losses: 1, diff: -4},
		{name: "Гриша", rank: 4, points: 2, wins: 1, losses: 1, diff: -4},
	} {
		row := rows[i]
		if row.Player.Name != want.name || row.Rank != want.rank ||
			row.Points != want.points || row.Wins != want.wins ||
			row.Losses != want.losses || row.PointsDiff != want.diff {
			t.Errorf("row %d = {%s rank %d points %d wins %d losses %d diff %d}, want %+v",
				i, row.Player.Name, row.Rank, row.Points, row.Wins, row.Losses, row.PointsDiff, want)
		}
		if row.Games != 2 {
			t.Errorf("row %d games = %d, want 2", i, row.Games)
		}
	}
}

// Primary key strictly before the tie-break: five points always beat
// three, whatever the difference says.
func TestRowsSortOrder(t *testing.T) {
	table := New()
	first := &Row{Player: domain.Player{ID: uuid.New(), Name: "Первый"}, Points: 5, PointsFor: 2}
	second := &Row{Player: domain.Player{ID: uuid.New(), Name: "Второй"}, Points: 5, PointsAgainst: 1}
	third := &Row{Player: domain.Player{ID: uuid.New(), Name: "Третий"}, Points: 3, PointsFor: 10}
	for _, r := range []*Row{third, second, first} {
		table.rows[r.Player.ID] = r
		table.order = append(table.order, r.Player.ID)
	}

	rows := table.Rows(Italian)
	wantOrder := []string{"Первый", "Второй", "Третий"}
	for i, want := range wantOrder {
		if rows[i].Player.Name != want {
			t.Errorf("rows[%d] = %s, want %s", i, rows[i].Player.Name, want)
		}
		if rows[i].Rank != i+1 {
			t.Errorf("rows[%d] rank = %d, want %d", i, rows[i].Rank, i+1)
		}
	}
}

func TestRowsWinLossStrategy(t *testing.T) {
	a := domain.Player{ID: uuid.New(), Name: "Аня"}
	b := domain.Player{ID: uuid.New(), Name: "Боря"}
	c := domain.Player{ID: uuid.New(), Name: "Витя"}
	d := domain.Player{ID: uuid.New(), Name: "Гриша"}

	// c+d collect italian points from two tie-breaks, a+b take one
	// clean win and one clean loss... then one more clean win each way
	// keeps wins equal and lets the difference decide.
	matches := []domain.Match{
		groupMatch(a, b, c, d, 15, 13),
		groupMatch(c, d, a, b, 15, 13),
		groupMatch(a, b, c, d, 21, 10),
		groupMatch(c, d, a, b, 21, 18),
	}

	italian := Build(matches, Italian)
	winloss := Build(matches, WinLoss)

	// Italian: a+b 2+1+3+0 = 6, c+d 1+2+0+3 = 6, diff decides on both
	// strategies here, so orders agree.
	if italian[0].Points != 6 || italian[2].Points != 6 {
		t.Errorf("italian points = %d/%d, want 6/6", italian[0].Points, italian[2].Points)
	}
	diffLeader := winloss[0]
	if diffLeader.Wins != 2 {
		t.Errorf("winloss leader wins = %d, want 2", diffLeader.Wins)
	}
	wantDiff := (15 - 13) + (13 - 15) + (21 - 10) + (18 - 21)
	if diffLeader.PointsDiff != wantDiff {
		t.Errorf("winloss leader diff = %d, want %d", diffLeader.PointsDiff, wantDiff)
	}
	if diffLeader.Player.Name != "Аня" {
		t.Errorf("winloss leader = %s, want Аня", diffLeader.Player.Name)
	}
}

// Folding a group in two halves and merging must equal one pass over
// the whole group.
func TestMergeEqualsSinglePass(t *testing.T) {
	a := domain.Player{ID: uuid.New(), Name: "Аня"}
	b := domain.Player{ID: uuid.New(), Name: "Боря"}
	c := domain.Player{ID: uuid.New(), Name: "Витя"}
	d := domain.Player{ID: uuid.New(), Name: "Гриша"}

	matches := []domain.Match{
		groupMatch(a, b, c, d, 21, 15),
		groupMatch(a, c, b, d, 15, 13),
		groupMatch(a, d, b, c, 17, 21),
		groupMatch(b, c, a, d, 23, 21),
	}

	single := Build(matches, Italian)

	left, right := New(), New()
	for _, m := range matches[:2] {
		left.Add(m)
	}
	for _, m := range matches[2:] {
		right.Add(m)
	}
	left.Merge(right)
	merged := left.Rows(Italian)

	if diff := cmp.Diff(single, merged); diff != "" {
		t.Errorf("merged table differs from single pass (-single +merged):\n%s", diff)
	}
}

func TestDetails(t *testing.T) {
	a := domain.Player{ID: uuid.New(), Name: "Аня"}
	b := domain.Player{ID: uuid.New(), Name: "Боря"}
	c := domain.Player{ID: uuid.New(), Name: "Витя"}
	d := domain.Player{ID: uuid.New(), Name: "Гриша"}

	m := groupMatch(a, b, c, d, 15, 13)
	rows := Build([]domain.Match{m}, Italian)

	var row Row
	for _, r := range rows {
		if r.Player.ID == a.ID {
			row = r
		}
	}
	want := []Detail{{
		MatchID:      m.ID,
		Date:         m.Date,
		Partner:      b,
		Opponents:    [2]domain.Player{c, d},
		ScoreFor:     15,
		ScoreAgainst: 13,
		Won:          true,
		Margin:       2,
		Points:       2,
	}}
	if diff := cmp.Diff(want, row.Details); diff != "" {
		t.Errorf("details mismatch (-want +got):\n%s", diff)
	}
}
