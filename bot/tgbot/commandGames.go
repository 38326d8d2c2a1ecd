package tgbot

import (
	"context"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kickerlab/foosserver/bot/model"
	"github.com/kickerlab/foosserver/internal/domain"
	"github.com/kickerlab/foosserver/internal/service"
)

const gamesPageSize = 10

type GamesCommand struct {
	playerService *service.PlayerService
}

func (c *GamesCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	limit := gamesPageSize
	if args != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(args)); err == nil && n > 0 {
			limit = n
		}
	}
	matches, err := c.playerService.MatchHistory(ctx, limit)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		resp.Text = "No matches yet"
		return nil
	}
	var buffer strings.Builder
	for i := range matches {
		buffer.WriteString(formatMatchLine(matches[i]))
		buffer.WriteString("\n")
	}
	resp.Text = buffer.String()
	return nil
}

func formatMatchLine(match domain.Match) string {
	var buf strings.Builder
	buf.WriteString(match.Date.Format("02.01 15:04"))
	buf.WriteString(" ")
	buf.WriteString(match.A1.Name)
	buf.WriteString(" & ")
	buf.WriteString(match.A2.Name)
	buf.WriteString(" ")
	buf.WriteString(strconv.Itoa(match.GoalsA))
	buf.WriteString(":")
	buf.WriteString(strconv.Itoa(match.GoalsB))
	buf.WriteString(" ")
	buf.WriteString(match.B1.Name)
	buf.WriteString(" & ")
	buf.WriteString(match.B2.Name)
	return buf.String()
}

func (c *GamesCommand) Help() string {
	return "Show recent matches. Usage: /games [count]"
}

func (c *GamesCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *GamesCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
