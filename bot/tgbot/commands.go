package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sandcourt/beachrank/bot/botstorage"
	"github.com/sandcourt/beachrank/bot/model"
	"github.com/sandcourt/beachrank/internal/service"
)

// Command is a bot command. Run returns true when the command opened a
// dialog and wants the user's next messages too.
type Command interface {
	Run(user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error)
	Reset()
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command

	// active maps a user to the command holding an open dialog with him.
	active map[int]string
}

func NewCommands(
	ps *service.PlayerService,
	bs botstorage.BotStorage,
	adminPass string,
	subFn func(id int),
	unsubFn func(id int),
	sendNotifFn func(msg string),
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"top": &TopCommand{
				playerService: ps,
			},
			"gtop": &Glicko2TopCommand{
				playerService: ps,
			},
			"standings": &StandingsCommand{
				playerService: ps,
			},
			"me": &MeCommand{
				playerService: ps,
				botStorage:    bs,
			},
			"info": &InfoCommand{
				playerService: ps,
			},
			"role": &RoleCommand{
				adminPassword: adminPass,
				botStorage:    bs,
			},
			"game": &NewGameCommand{
				playerService: ps,
				notify:        sendNotifFn,
			},
			"event": NewEventCommand(ps, sendNotifFn),
			"new_player": &NewPlayerCommand{
				playerService: ps,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
		active: make(map[int]string),
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(user model.User, msg *tgbotapi.Message, resp *tgbotapi.MessageConfig) error {
	if msg.IsCommand() {
		name := msg.Command()
		command, ok := uc.list[name]
		if !ok || !command.Permission().Contains(user.Role) {
			return ErrBadRequest
		}
		if prev, ok := uc.active[user.ID]; ok && prev != name {
			uc.list[prev].Reset()
			delete(uc.active, user.ID)
		}
		return uc.run(user, name, command, msg.CommandArguments(), resp)
	}
	name, ok := uc.active[user.ID]
	if !ok {
		return ErrBadRequest
	}
	return uc.run(user, name, uc.list[name], msg.Text, resp)
}

// run executes the command and keeps the dialog book. An error does not
// close an open dialog: the command decides with the returned bool.
func (uc *Commands) run(user model.User, name string, command Command, args string, resp *tgbotapi.MessageConfig) error {
	needContinue, err := command.Run(user, args, resp)
	if needContinue {
		uc.active[user.ID] = name
		return err
	}
	command.Reset()
	delete(uc.active, user.ID)
	return err
}
