package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kickerlab/foosserver/bot/botstorage"
	"github.com/kickerlab/foosserver/bot/model"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(int)
}

func (c *UnsubCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	err := c.botStorage.Unsubscribe(user)
	if err != nil {
		return err
	}
	c.unsub(user.ID)
	resp.Text = "Unsubscribed, to resume notifications: /sub"
	return nil
}

func (c *UnsubCommand) Help() string {
	return `Unsubscribe from match notifications`
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
