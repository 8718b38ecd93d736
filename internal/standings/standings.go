// Package standings builds group tables over sets of matches. Scoring
// follows the italian beach volleyball convention where the margin of
// two points marks a deciding third set.
package standings

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/domain"
)

// Strategy selects the ranking order of a built table.
type Strategy string

const (
	// Italian ranks by italian points, points difference breaks ties.
	Italian Strategy = "italian"
	// WinLoss ranks by wins, points difference breaks ties.
	WinLoss Strategy = "winloss"
)

// MatchPoints is the italian scoring table for one played match. A win
// by exactly two (a tie-break set) pays 2, any other win 3, a loss by
// exactly two 1, any other loss 0.
func MatchPoints(my int, opp int) int {
	switch margin := my - opp; {
	case margin == 2:
		return 2
	case margin > 0:
		return 3
	case margin == -2:
		return 1
	default:
		return 0
	}
}

// Detail is the audit line behind one cell of the table: one match
// from one player's point of view.
type Detail struct {
	MatchID      uuid.UUID
	Date         time.Time
	Partner      domain.Player
	Opponents    [2]domain.Player
	ScoreFor     int
	ScoreAgainst int
	Won          bool
	Margin       int
	Points       int
}

// Row is one line of the table.
type Row struct {
	Rank          int
	Player        domain.Player
	Games         int
	Wins          int
	Losses        int
	Points        int
	PointsFor     int
	PointsAgainst int
	PointsDiff    int
	Details       []Detail
}

// Table accumulates matches player by player. Add and Merge commute
// with concatenation of inputs: a group folded in two halves and then
// merged gives the same table as one pass over the whole group.
type Table struct {
	rows  map[uuid.UUID]*Row
	order []uuid.UUID
}

func New() *Table {
	return &Table{rows: make(map[uuid.UUID]*Row)}
}

func (t *Table) row(p domain.Player) *Row {
	r, ok := t.rows[p.ID]
	if !ok {
		r = &Row{Player: p}
		t.rows[p.ID] = r
		t.order = append(t.order, p.ID)
	}
	return r
}

// Add folds one match into the table, both sides at once. Filtering
// matches down to one group is on the caller.
func (t *Table) Add(m domain.Match) {
	t.addSide(m, m.TeamA, m.TeamB, m.ScoreA, m.ScoreB)
	t.addSide(m, m.TeamB, m.TeamA, m.ScoreB, m.ScoreA)
}

func (t *Table) addSide(m domain.Match, us domain.Team, them domain.Team, my int, opp int) {
	for _, p := range us {
		r := t.row(p)
		won := my > opp
		pts := MatchPoints(my, opp)

		r.Games++
		if won {
			r.Wins++
		} else {
			r.Losses++
		}
		r.Points += pts
		r.PointsFor += my
		r.PointsAgainst += opp
		r.Details = append(r.Details, Detail{
			MatchID:      m.ID,
			Date:         m.Date,
			Partner:      us.PartnerOf(p.ID),
			Opponents:    [2]domain.Player{them[0], them[1]},
			ScoreFor:     my,
			ScoreAgainst: opp,
			Won:          won,
			Margin:       my - opp,
			Points:       pts,
		})
	}
}

// Merge folds another table into this one.
func (t *Table) Merge(other *Table) {
	for _, id := range other.order {
		o := other.rows[id]
		r := t.row(o.Player)
		r.Games += o.Games
		r.Wins += o.Wins
		r.Losses += o.Losses
		r.Points += o.Points
		r.PointsFor += o.PointsFor
		r.PointsAgainst += o.PointsAgainst
		r.Details = append(r.Details, o.Details...)
	}
}

// Rows ranks the accumulated players and assigns places starting from
// one. The sort is stable: players equal on every key keep their
// first-appearance order.
func (t *Table) Rows(strategy Strategy) []Row {
	rows := make([]Row, 0, len(t.order))
	for _, id := range t.order {
		r := *t.rows[id]
		r.PointsDiff = r.PointsFor - r.PointsAgainst
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if strategy == WinLoss {
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
			return a.PointsDiff > b.PointsDiff
		}
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return a.PointsDiff > b.PointsDiff
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// Build is the one-shot form: fold the matches and rank.
func Build(matches []domain.Match, strategy Strategy) []Row {
	t := New()
	for _, m := range matches {
		t.Add(m)
	}
	return t.Rows(strategy)
}
