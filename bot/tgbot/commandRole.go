package tgbot

import (
	"context"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kickerlab/foosserver/bot/botstorage"
	"github.com/kickerlab/foosserver/bot/model"
)

type RoleCommand struct {
	adminPassword string
	botStorage    botstorage.BotStorage
}

func (c *RoleCommand) Run(_ context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if c.adminPassword == "" || args != c.adminPassword {
		return errors.New("wrong password")
	}
	user.Role = model.RoleModerator
	err := c.botStorage.UpdateUserRole(user)
	if err != nil {
		return err
	}
	resp.Text = "you are a moderator now"
	return nil
}

func (c *RoleCommand) Help() string {
	return `Become a moderator. Usage: /role <admin password>`
}

func (c *RoleCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *RoleCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleUser)
}
