package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	authservice "github.com/kickerlab/foosserver/auth/service"
	authsqlite "github.com/kickerlab/foosserver/auth/storage/sqlite"
	botsqlite "github.com/kickerlab/foosserver/bot/botstorage/sqlite"
	"github.com/kickerlab/foosserver/bot/tgbot"
	"github.com/kickerlab/foosserver/internal/config"
	"github.com/kickerlab/foosserver/internal/elo"
	"github.com/kickerlab/foosserver/internal/logger"
	"github.com/kickerlab/foosserver/internal/service"
	"github.com/kickerlab/foosserver/internal/storage/sqlite"
	"github.com/kickerlab/foosserver/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath, authConfigPath, botConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to the server config")
	flag.StringVar(&authConfigPath, "auth-config", "configs/auth.toml", "path to the auth config")
	flag.StringVar(&botConfigPath, "bot-config", "configs/bot.toml", "path to the bot config")
	flag.Parse()

	cfg, err := config.New(serverConfigPath, authConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	storage, err := sqlite.New(log, cfg.Server.SqliteFile)
	if err != nil {
		return err
	}
	playerService := service.New(storage, storage, elo.New(cfg.Server.Rating.KFactor), log)

	authStorage, err := authsqlite.New(log, cfg.Auth)
	if err != nil {
		return err
	}
	authService, err := authservice.New(context.Background(), cfg.Auth, authStorage)
	if err != nil {
		return err
	}

	if cfg.Server.TgBotEnabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(playerService, botStorage, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(playerService, cfg.Server, authService, log)
	if err != nil {
		return err
	}
	return server.Serve()
}
