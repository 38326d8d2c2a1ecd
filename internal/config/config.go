package config

import (
	"os"

	"github.com/BurntSushi/toml"

	authservice "github.com/kickerlab/foosserver/auth/service"
	"github.com/kickerlab/foosserver/internal/elo"
)

type Rating struct {
	// KFactor scales all rating deltas.
	KFactor float64 `toml:"k_factor"`
}

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Debug        bool   `toml:"debug_mode"`
	SqliteFile   string `toml:"sqlite_file"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	Rating       Rating `toml:"rating"`
}

type TgBot struct {
	TelegramAPIToken string `toml:"telegram_apitoken"`
	SqliteFile       string `toml:"sqlite_file"`
	AdminPass        string `toml:"admin_pass"`
}

type Config struct {
	Server Server
	TgBot  TgBot
	Auth   authservice.Config
}

func New(serverPath, authPath, botPath string) (Config, error) {
	var serverCfg Server
	if _, err := toml.DecodeFile(serverPath, &serverCfg); err != nil {
		return Config{}, err
	}
	if serverCfg.Rating.KFactor == 0 {
		serverCfg.Rating.KFactor = elo.DefaultKFactor
	}

	var authCfg authservice.Config
	if _, err := toml.DecodeFile(authPath, &authCfg); err != nil {
		return Config{}, err
	}

	var tgBotCfg TgBot
	if _, err := toml.DecodeFile(botPath, &tgBotCfg); err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		tgBotCfg.TelegramAPIToken = token
	}

	return Config{
		Server: serverCfg,
		TgBot:  tgBotCfg,
		Auth:   authCfg,
	}, nil
}
