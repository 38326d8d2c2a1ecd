package tgbot

import (
	"context"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kickerlab/foosserver/bot/model"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	for s, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		if args == s {
			resp.Text = command.Help()
			return nil
		}
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for commandName, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		b.WriteString("/")
		b.WriteString(commandName)
		b.WriteString("\n")
	}
	b.WriteString("Send /help with a command name for details")
	resp.Text = b.String()
	return nil
}

func (c *HelpCommand) Help() string {
	return "List available commands"
}

func (c *HelpCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *HelpCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
