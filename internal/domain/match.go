package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Team is a doubles pair. Order inside the pair carries no meaning.
type Team [2]Player

func (t Team) Has(id uuid.UUID) bool {
	return t[0].ID == id || t[1].ID == id
}

// PartnerOf returns the teammate of the given player.
func (t Team) PartnerOf(id uuid.UUID) Player {
	if t[0].ID == id {
		return t[1]
	}
	return t[0]
}

func (t Team) String() string {
	return fmt.Sprintf("%s + %s", t[0].Name, t[1].Name)
}

// Match is one finished game, two against two. Draws do not exist:
// they are dropped before a match reaches the log.
type Match struct {
	ID      uuid.UUID
	StageID uuid.UUID
	Date    time.Time
	Seq     int

	TeamA  Team
	TeamB  Team
	ScoreA int
	ScoreB int

	// Display tags filled on read, empty for standalone matches.
	Tournament string
	League     string
	Stage      string
	Round      string
}

// Winner reports the side that took the match: 1 for TeamA, 2 for TeamB.
func (m Match) Winner() int {
	if m.ScoreA > m.ScoreB {
		return 1
	}
	return 2
}

// WinnerTeam returns the winning pair.
func (m Match) WinnerTeam() Team {
	if m.Winner() == 1 {
		return m.TeamA
	}
	return m.TeamB
}

func (m Match) Players() [4]Player {
	return [4]Player{m.TeamA[0], m.TeamA[1], m.TeamB[0], m.TeamB[1]}
}

func (m Match) HasPlayer(id uuid.UUID) bool {
	return m.TeamA.Has(id) || m.TeamB.Has(id)
}

// TeamsOf splits the match into the team of the given player and the
// opposing team. The player must be one of the four participants.
func (m Match) TeamsOf(id uuid.UUID) (us Team, them Team) {
	if m.TeamA.Has(id) {
		return m.TeamA, m.TeamB
	}
	return m.TeamB, m.TeamA
}

// ScoresOf returns the score from the point of view of the given player.
func (m Match) ScoresOf(id uuid.UUID) (my int, opp int) {
	if m.TeamA.Has(id) {
		return m.ScoreA, m.ScoreB
	}
	return m.ScoreB, m.ScoreA
}

func (m Match) IsPlayoff() bool {
	return m.Round != ""
}
