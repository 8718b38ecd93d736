// Package rating replays a match log and derives Elo ratings for
// every participant. The replay is deterministic: same matches in the
// same order, same ratings.
package rating

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/elo"
)

// Snapshot is one point of a player's rating history. The first
// snapshot of every player is synthetic: initial rating, nil match,
// zero change.
type Snapshot struct {
	Date    time.Time
	Rating  int
	MatchID uuid.UUID
	Change  int
}

// PlayerRating is one leaderboard line.
type PlayerRating struct {
	Player      domain.Player
	Rating      int
	GamesPlayed int
	Calibrated  bool
	LastChange  int
	History     []Snapshot
}

// MatchResult is the input match annotated with the rating change of
// each of the four participants.
type MatchResult struct {
	domain.Match
	Changes map[uuid.UUID]int
}

// ChangeOf returns the rating change of one participant.
func (m MatchResult) ChangeOf(id uuid.UUID) int {
	return m.Changes[id]
}

type Result struct {
	// Leaderboard is sorted by rating, highest first. Players equal on
	// rating keep their first-appearance order.
	Leaderboard []PlayerRating
	// Matches mirrors the input order.
	Matches []MatchResult
}

// Get returns the leaderboard line of one player.
func (r Result) Get(id uuid.UUID) (PlayerRating, bool) {
	for i := range r.Leaderboard {
		if r.Leaderboard[i].Player.ID == id {
			return r.Leaderboard[i], true
		}
	}
	return PlayerRating{}, false
}

type state struct {
	player  domain.Player
	rating  int
	games   int
	history []Snapshot
}

// Compute replays matches in the order given. The caller is
// responsible for true chronological order.
//
// Per match all four deltas are taken from the ratings and game
// counters as they were before the match and only then applied, so the
// order of the four players never matters. Teams are rated by the mean
// of the pair, each player is compared against the opposing mean.
func Compute(matches []domain.Match) Result {
	states := make(map[uuid.UUID]*state)
	var seen []uuid.UUID

	get := func(p domain.Player, date time.Time) *state {
		st, ok := states[p.ID]
		if !ok {
			st = &state{
				player: p,
				rating: elo.InitialRating,
				history: []Snapshot{{
					Date:    date,
					Rating:  elo.InitialRating,
					MatchID: uuid.Nil,
				}},
			}
			states[p.ID] = st
			seen = append(seen, p.ID)
		}
		return st
	}

	annotated := make([]MatchResult, 0, len(matches))
	for _, m := range matches {
		sideA := [2]*state{get(m.TeamA[0], m.Date), get(m.TeamA[1], m.Date)}
		sideB := [2]*state{get(m.TeamB[0], m.Date), get(m.TeamB[1], m.Date)}

		avgA := float64(sideA[0].rating+sideA[1].rating) / 2
		avgB := float64(sideB[0].rating+sideB[1].rating) / 2

		sa, sb := elo.Win, elo.Lose
		if m.Winner() == 2 {
			sa, sb = elo.Lose, elo.Win
		}

		changes := make(map[uuid.UUID]int, 4)
		for _, st := range sideA {
			changes[st.player.ID] = elo.Delta(float64(st.rating), avgB, elo.KFactor(st.games), sa)
		}
		for _, st := range sideB {
			changes[st.player.ID] = elo.Delta(float64(st.rating), avgA, elo.KFactor(st.games), sb)
		}

		for _, st := range [4]*state{sideA[0], sideA[1], sideB[0], sideB[1]} {
			d := changes[st.player.ID]
			st.rating += d
			st.games++
			st.history = append(st.history, Snapshot{
				Date:    m.Date,
				Rating:  st.rating,
				MatchID: m.ID,
				Change:  d,
			})
		}

		annotated = append(annotated, MatchResult{Match: m, Changes: changes})
	}

	board := make([]PlayerRating, 0, len(seen))
	for _, id := range seen {
		st := states[id]
		board = append(board, PlayerRating{
			Player:      st.player,
			Rating:      st.rating,
			GamesPlayed: st.games,
			Calibrated:  st.games >= elo.CalibrationGames,
			LastChange:  st.history[len(st.history)-1].Change,
			History:     st.history,
		})
	}
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Rating > board[j].Rating
	})

	return Result{Leaderboard: board, Matches: annotated}
}
