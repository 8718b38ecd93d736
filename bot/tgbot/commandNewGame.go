package tgbot

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/bot/model"
	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/rating"
	"github.com/sandcourt/beachrank/internal/service"
)

type NewGameCommand struct {
	playerService *service.PlayerService
	notify        func(msg string)
}

func (c *NewGameCommand) Reset() {}

func (c *NewGameCommand) Run(_ model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	match, err := c.processAddMatch(args)
	if err != nil {
		return false, err
	}
	c.sendMatchNotification(match)
	resp.Text = "матч создан"
	return false, nil
}

func (c *NewGameCommand) Help() string {
	return `Добавить игру. Использование: /game Вася+Петя Коля+Миша 21:15`
}

func (c *NewGameCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}
func (c *NewGameCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}

const (
	teamAIndex int = iota
	teamBIndex
	scoreIndex
)

func (c *NewGameCommand) processAddMatch(arguments string) (domain.Match, error) {
	match, err := parseMatchLine(c.playerService, arguments)
	if err != nil {
		return domain.Match{}, err
	}
	return c.playerService.CreateMatch(match)
}

// parseMatchLine reads one result line, "Вася+Петя Коля+Миша 21:15".
func parseMatchLine(ps *service.PlayerService, line string) (domain.Match, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return domain.Match{}, errors.New(`неверный запрос. Пример: "Вася+Петя Коля+Миша 21:15"`)
	}
	teamA, err := lookupTeam(ps, fields[teamAIndex])
	if err != nil {
		return domain.Match{}, err
	}
	teamB, err := lookupTeam(ps, fields[teamBIndex])
	if err != nil {
		return domain.Match{}, err
	}
	scoreA, scoreB, err := parseScore(fields[scoreIndex])
	if err != nil {
		return domain.Match{}, err
	}

	return domain.Match{
		TeamA:  teamA,
		TeamB:  teamB,
		ScoreA: scoreA,
		ScoreB: scoreB,
		Date:   time.Now(),
	}, nil
}

func lookupTeam(ps *service.PlayerService, arg string) (domain.Team, error) {
	names := strings.Split(arg, "+")
	if len(names) != 2 {
		return domain.Team{}, errors.New("в команде должно быть два игрока: " + arg)
	}
	var team domain.Team
	for i, name := range names {
		player, err := ps.GetByName(name)
		if err != nil {
			return domain.Team{}, errors.New(name + " не найден")
		}
		team[i] = player
	}
	return team, nil
}

func parseScore(arg string) (int, int, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 2 {
		return 0, 0, errors.New("счет должен быть в виде 21:15")
	}
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.New("счет должен быть в виде 21:15")
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.New("счет должен быть в виде 21:15")
	}
	return a, b, nil
}

func (c *NewGameCommand) sendMatchNotification(match domain.Match) {
	matches, err := c.playerService.GetMatches()
	if err != nil {
		log.Println("ERRRRRR", err.Error())
		return
	}
	for i := range matches {
		if matches[i].ID == match.ID {
			c.notify(formatMatchResult(matches[i], c.playerService.GetRatings()))
			return
		}
	}
}

func formatMatchResult(match rating.MatchResult, ratings []domain.Player) string {
	byID := make(map[uuid.UUID]domain.Player, len(ratings))
	for _, p := range ratings {
		byID[p.ID] = p
	}
	var buf strings.Builder
	if match.Winner() == 1 {
		buf.WriteString("🏆")
	}
	buf.WriteString(match.TeamA.String())
	buf.WriteString(" ")
	buf.WriteString(strconv.Itoa(match.ScoreA))
	buf.WriteString(":")
	buf.WriteString(strconv.Itoa(match.ScoreB))
	buf.WriteString(" ")
	buf.WriteString(match.TeamB.String())
	if match.Winner() == 2 {
		buf.WriteString("🏆")
	}
	buf.WriteString("\n")
	buf.WriteString("Рейтинг:\n")

	for _, p := range match.Players() {
		buf.WriteString(p.Name)
		buf.WriteString(": ")
		buf.WriteString(strconv.Itoa(byID[p.ID].EloRating))
		buf.WriteString("(")
		buf.WriteString(strconv.Itoa(match.ChangeOf(p.ID)))
		buf.WriteString(")\n")
	}

	return buf.String()
}
