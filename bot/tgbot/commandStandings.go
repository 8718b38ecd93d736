package tgbot

import (
	"fmt"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sandcourt/beachrank/bot/model"
	"github.com/sandcourt/beachrank/internal/service"
	"github.com/sandcourt/beachrank/internal/standings"
)

type StandingsCommand struct {
	playerService *service.PlayerService
}

func (c *StandingsCommand) Reset() {}

func (c *StandingsCommand) Run(_ model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	strategy := standings.Italian
	if strings.TrimSpace(args) == "wl" {
		strategy = standings.WinLoss
	}
	tournaments, err := c.playerService.ListTournaments()
	if err != nil {
		return false, err
	}
	if len(tournaments) == 0 {
		resp.Text = "турниров пока нет"
		return false, nil
	}
	tournament, err := c.playerService.GetTournament(tournaments[0].ID)
	if err != nil {
		return false, err
	}
	var buffer strings.Builder
	buffer.WriteString(tournament.Name)
	buffer.WriteString("\n")
	for _, league := range tournament.Leagues {
		groups, err := c.playerService.GetStandings(league.ID, strategy)
		if err != nil {
			return false, err
		}
		if len(groups) == 0 {
			continue
		}
		buffer.WriteString("\n")
		buffer.WriteString(league.Name)
		buffer.WriteString(":\n")
		for _, group := range groups {
			if group.Stage != "" {
				buffer.WriteString(group.Stage)
				buffer.WriteString("\n")
			}
			for _, row := range group.Rows {
				buffer.WriteString(strconv.Itoa(row.Rank))
				buffer.WriteString(". ")
				buffer.WriteString(row.Player.Name)
				buffer.WriteString(" - ")
				buffer.WriteString(strconv.Itoa(row.Points))
				buffer.WriteString(" (")
				buffer.WriteString(strconv.Itoa(row.Wins))
				buffer.WriteString("-")
				buffer.WriteString(strconv.Itoa(row.Losses))
				buffer.WriteString(", ")
				buffer.WriteString(fmt.Sprintf("%+d", row.PointsDiff))
				buffer.WriteString(")\n")
			}
		}
	}
	resp.Text = buffer.String()
	return false, nil
}

func (c *StandingsCommand) Help() string {
	return `Таблица последнего турнира. Использование: /standings или /standings wl для подсчета по победам`
}

func (c *StandingsCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *StandingsCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
