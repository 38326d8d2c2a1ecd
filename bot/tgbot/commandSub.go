package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kickerlab/foosserver/bot/botstorage"
	"github.com/kickerlab/foosserver/bot/model"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(int)
}

func (c *SubCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	err := c.botStorage.Subscribe(user)
	if err != nil {
		return err
	}
	c.sub(user.ID)
	resp.Text = "Subscribed, to stop notifications: /unsub"
	return nil
}

func (c *SubCommand) Help() string {
	return `Subscribe to match notifications`
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
