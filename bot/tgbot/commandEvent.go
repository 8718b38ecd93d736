package tgbot

import (
	"errors"
	"log"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/bot/model"
	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/service"
)

const endEvent = "конец"

type EventState int

const (
	EventStateStart EventState = iota
	EventStateWaitForPlayers
	EventStateMatches
)

// EventCommand is a dialog for a game day: register who came, then
// enter match results one message at a time until the day is closed.
type EventCommand struct {
	playerService *service.PlayerService
	state         EventState
	roster        mapset.Set[uuid.UUID]
	names         []string
	created       int
	notify        func(msg string)
}

func NewEventCommand(ps *service.PlayerService, notify func(msg string)) *EventCommand {
	return &EventCommand{
		playerService: ps,
		state:         EventStateStart,
		roster:        mapset.NewSet[uuid.UUID](),
		notify:        notify,
	}
}

func (c *EventCommand) Reset() {
	c.state = EventStateStart
	c.roster = mapset.NewSet[uuid.UUID]()
	c.names = nil
	c.created = 0
}

func (c *EventCommand) Run(
	_ model.User,
	text string,
	resp *tgbotapi.MessageConfig,
) (needContinue bool, err error) {
	switch c.state {
	case EventStateStart:
		c.state = EventStateWaitForPlayers
		resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		resp.Text = "событие открыто, перечислите участников через пробел"
		return true, nil
	case EventStateWaitForPlayers:
		if text == "" {
			resp.Text = "жду имена участников"
			return true, nil
		}
		for _, name := range strings.Fields(text) {
			player, err := c.playerService.GetByName(name)
			if err != nil {
				return true, err
			}
			if c.roster.Add(player.ID) {
				c.names = append(c.names, player.Name)
			}
		}
		if c.roster.Cardinality() < 4 {
			resp.Text = "нужно минимум четыре участника, пока записаны: " + strings.Join(c.names, ", ")
			return true, nil
		}
		c.state = EventStateMatches
		resp.ReplyMarkup = endKeyboard()
		resp.Text = "участники: " + strings.Join(c.names, ", ") +
			"\nвводите матчи: Вася+Петя Коля+Миша 21:15"
		return true, nil
	case EventStateMatches:
		if text == "" {
			resp.Text = "жду результат матча"
			return true, nil
		}
		if strings.EqualFold(text, endEvent) {
			resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
			resp.Text = "событие завершено, матчей записано: " + strconv.Itoa(c.created)
			return false, nil
		}
		match, err := parseMatchLine(c.playerService, text)
		if err != nil {
			return true, err
		}
		for _, p := range match.Players() {
			if !c.roster.Contains(p.ID) {
				return true, errors.New(p.Name + " не записан на событие")
			}
		}
		created, err := c.playerService.CreateMatch(match)
		if err != nil {
			return true, err
		}
		c.created++
		c.sendMatchNotification(created)
		resp.Text = "матч записан, следующий или " + endEvent
		return true, nil
	}
	resp.Text = "internal error, command aborted"
	return false, nil
}

func endKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(endEvent),
		),
	)
}

func (c *EventCommand) Help() string {
	return `Запись матчей игрового дня`
}

func (c *EventCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}
func (c *EventCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}

func (c *EventCommand) sendMatchNotification(match domain.Match) {
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
