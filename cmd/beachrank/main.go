package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	authservice "github.com/sandcourt/beachrank/auth/service"
	"github.com/sandcourt/beachrank/auth/storage"
	authpostgres "github.com/sandcourt/beachrank/auth/storage/postgres"
	authsqlite "github.com/sandcourt/beachrank/auth/storage/sqlite"
	botsqlite "github.com/sandcourt/beachrank/bot/botstorage/sqlite"
	"github.com/sandcourt/beachrank/bot/tgbot"
	"github.com/sandcourt/beachrank/internal/config"
	"github.com/sandcourt/beachrank/internal/logger"
	"github.com/sandcourt/beachrank/internal/metrics"
	"github.com/sandcourt/beachrank/internal/service"
	"github.com/sandcourt/beachrank/internal/storage/sqlite"
	"github.com/sandcourt/beachrank/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	var serverConfigPath, botConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server config")
	flag.StringVar(&botConfigPath, "bot-config", "configs/bot.toml", "path to bot config")
	flag.Parse()

	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	store, err := sqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	playerService := service.New(store, store, store, log)

	ctx := context.Background()
	authStorage, err := newAuthStorage(ctx, log, cfg.Server)
	if err != nil {
		return err
	}
	authService, err := authservice.New(ctx, cfg.Server.Auth, authStorage)
	if err != nil {
		return err
	}

	server, err := web.New(playerService, cfg.Server, authService)
	if err != nil {
		return err
	}

	var bot tgbot.Bot
	if cfg.Server.TgBotEnabled {
		botStore, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err = tgbot.New(playerService, botStore, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
	}

	if cfg.Server.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(cfg.Server.MetricsAddr); err != nil {
				log.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		bot.Stop()
		return err
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
		bot.Stop()
		return server.Stop()
	}
}

func newAuthStorage(ctx context.Context, log *logrus.Logger, cfg config.Server) (storage.AuthStorage, error) {
	switch cfg.Auth.Driver {
	case "postgres":
		return authpostgres.New(ctx, cfg.Auth)
	default:
		return authsqlite.New(log, cfg)
	}
}
