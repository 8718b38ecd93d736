package config

import (
	"os"

	authservice "github.com/sandcourt/beachrank/auth/service"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_apitoken"`
	AdminPass        string `toml:"admin_pass"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Server struct {
	Host         string             `toml:"host"`
	Port         int                `toml:"port"`
	Debug        bool               `toml:"debug_mode"`
	TgBotEnabled bool               `toml:"tg_bot_enabled"`
	SqliteFile   string             `toml:"sqlite_file"`
	MetricsAddr  string             `toml:"metrics_addr"`
	Auth         authservice.Config `toml:"auth"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

// NewServer reads the server config alone, for tools that don't
// carry the bot.
func NewServer(serverPath string) (Server, error) {
	var serverCfg Server
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Server{}, err
	}
	return serverCfg, nil
}

func New(serverPath, botPath string) (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}

	var tgBotCfg TgBot
	_, err = toml.DecodeFile(botPath, &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		tgBotCfg.TelegramApiToken = token
	}
	if pass := os.Getenv("BOT_ADMIN_PASS"); pass != "" {
		tgBotCfg.AdminPass = pass
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
