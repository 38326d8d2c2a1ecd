package tgbot

import (
	"context"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kickerlab/foosserver/bot/model"
	"github.com/kickerlab/foosserver/internal/service"
)

const topSize = 10

type TopCommand struct {
	playerService *service.PlayerService
}

func (c *TopCommand) Run(ctx context.Context, _ model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	leaderboard, err := c.playerService.Leaderboard(ctx)
	if err != nil {
		return err
	}
	var buffer strings.Builder
	for i := range leaderboard {
		if i >= topSize {
			break
		}
		buffer.WriteString(strconv.Itoa(i + 1))
		buffer.WriteString(". ")
		buffer.WriteString(leaderboard[i].Name)
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(leaderboard[i].RatingInt()))
		buffer.WriteString(")\n")
	}
	if buffer.Len() == 0 {
		buffer.WriteString("No players yet")
	}
	resp.Text = buffer.String()
	return nil
}

func (c *TopCommand) Help() string {
	return "Show the top of the rating"
}

func (c *TopCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *TopCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
