package tgbot

import (
	"context"
	"errors"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kickerlab/foosserver/bot/model"
	"github.com/kickerlab/foosserver/internal/service"
)

type NewPlayerCommand struct {
	playerService *service.PlayerService
}

func (c *NewPlayerCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if args == "" {
		return errors.New("player name must not be empty")
	}
	for i, r := range args {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return errors.New("player name must start with a letter")
			}
			continue
		}
		if !unicode.IsPrint(r) {
			return errors.New("player name must contain only printable characters")
		}
	}
	err := c.playerService.RegisterPlayer(ctx, args)
	if err != nil {
		return err
	}
	resp.Text = "player registered"
	return nil
}

func (c *NewPlayerCommand) Help() string {
	return `Register a new player. Usage: /new_player <name>`
}

func (c *NewPlayerCommand) Permission() mapset.Set[model.UserRole] {
	return trustedRoles()
}

func (c *NewPlayerCommand) Visibility() mapset.Set[model.UserRole] {
	return trustedRoles()
}
