package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestMatchSides(t *testing.T) {
	vasya := Player{ID: uuid.New(), Name: "Вася"}
	petya := Player{ID: uuid.New(), Name: "Петя"}
	kolya := Player{ID: uuid.New(), Name: "Коля"}
	misha := Player{ID: uuid.New(), Name: "Миша"}
	outsider := uuid.New()

	m := Match{
		TeamA:  Team{vasya, petya},
		TeamB:  Team{kolya, misha},
		ScoreA: 19,
		ScoreB: 21,
	}

	if m.Winner() != 2 {
		t.Errorf("Winner() = %d, want 2", m.Winner())
	}
	if m.WinnerTeam() != m.TeamB {
		t.Errorf("WinnerTeam() = %v", m.WinnerTeam())
	}
	if m.IsPlayoff() {
		t.Error("match without a round must not be playoff")
	}

	us, them := m.TeamsOf(misha.ID)
	if us != m.TeamB || them != m.TeamA {
		t.Errorf("TeamsOf(Миша) = %v / %v", us, them)
	}
	if my, opp := m.ScoresOf(misha.ID); my != 21 || opp != 19 {
		t.Errorf("ScoresOf(Миша) = %d:%d, want 21:19", my, opp)
	}
	if my, opp := m.ScoresOf(vasya.ID); my != 19 || opp != 21 {
		t.Errorf("ScoresOf(Вася) = %d:%d, want 19:21", my, opp)
	}
	if partner := m.TeamA.PartnerOf(vasya.ID); partner.ID != petya.ID {
		t.Errorf("PartnerOf(Вася) = %s", partner.Name)
	}
	if !m.HasPlayer(kolya.ID) || m.HasPlayer(outsider) {
		t.Error("HasPlayer() must know the four participants")
	}

	rematch := m
	rematch.ScoreA, rematch.ScoreB = 21, 19
	if rematch.Winner() != 1 {
		t.Errorf("Winner() = %d, want 1", rematch.Winner())
	}

	final := m
	final.Round = "Финал"
	if !final.IsPlayoff() {
		t.Error("match with a round must be playoff")
	}
}
