package web

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sandcourt/beachrank/internal/normalize"
)

type createMatch struct {
	PlayerA1 string
	PlayerA2 string
	PlayerB1 string
	PlayerB2 string
	ScoreA   int
	ScoreB   int
}

var ErrMissingPlayer = errors.New("все четыре игрока должны быть указаны")

func parseCreateMatch(ctx *fiber.Ctx) (createMatch, error) {
	m := createMatch{
		PlayerA1: ctx.FormValue("player-a1", ""),
		PlayerA2: ctx.FormValue("player-a2", ""),
		PlayerB1: ctx.FormValue("player-b1", ""),
		PlayerB2: ctx.FormValue("player-b2", ""),
	}
	var err error
	m.ScoreA, err = parseScoreValue(ctx.FormValue("score-a", ""), "счет первой команды", err)
	m.ScoreB, err = parseScoreValue(ctx.FormValue("score-b", ""), "счет второй команды", err)
	err = errors.Join(err, m.Validate())
	if err != nil {
		return createMatch{}, err
	}
	return m, nil
}

func parseScoreValue(value string, what string, err error) (int, error) {
	score, convErr := strconv.Atoi(value)
	if convErr != nil {
		return 0, errors.Join(err, errors.New(what+" должен быть числом"))
	}
	return score, err
}

func (c createMatch) Validate() error {
	var err error
	missing := false
	seen := make(map[string]bool, 4)
	for _, name := range []string{c.PlayerA1, c.PlayerA2, c.PlayerB1, c.PlayerB2} {
		if name == "" {
			missing = true
			continue
		}
		key := normalize.Name(name)
		if seen[key] {
			err = errors.Join(err, fmt.Errorf("игрок %q указан дважды", name))
		}
		seen[key] = true
	}
	if missing {
		err = errors.Join(err, ErrMissingPlayer)
	}
	if c.ScoreA < 0 || c.ScoreB < 0 {
		err = errors.Join(err, errors.New("отрицательный счет"))
	}
	return err
}
