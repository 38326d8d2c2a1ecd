package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kickerlab/foosserver/bot/model"
	"github.com/kickerlab/foosserver/internal/domain"
	"github.com/kickerlab/foosserver/internal/service"
)

type NewGameCommand struct {
	playerService *service.PlayerService
	notify        func(msg string)
}

func (c *NewGameCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	report, err := parseGameArgs(args)
	if err != nil {
		return err
	}
	match, err := c.playerService.ReportMatch(ctx, report)
	if err != nil {
		return err
	}
	c.notify(formatMatchResult(match))
	resp.Text = "match recorded"
	return nil
}

func (c *NewGameCommand) Help() string {
	return `Record a 2v2 match. Usage: /game <a1> <a2> <b1> <b2> <goals a> <goals b>`
}

func (c *NewGameCommand) Permission() mapset.Set[model.UserRole] {
	return trustedRoles()
}

func (c *NewGameCommand) Visibility() mapset.Set[model.UserRole] {
	return trustedRoles()
}

func parseGameArgs(arguments string) (domain.MatchReport, error) {
	fields := strings.Fields(arguments)
	if len(fields) != 6 {
		return domain.MatchReport{}, errors.New(`bad request, expected: /game <a1> <a2> <b1> <b2> <goals a> <goals b>`)
	}
	goalsA, err := strconv.Atoi(fields[4])
	if err != nil {
		return domain.MatchReport{}, errors.New("goals a must be a number")
	}
	goalsB, err := strconv.Atoi(fields[5])
	if err != nil {
		return domain.MatchReport{}, errors.New("goals b must be a number")
	}
	return domain.MatchReport{
		A1:     fields[0],
		A2:     fields[1],
		B1:     fields[2],
		B2:     fields[3],
		GoalsA: goalsA,
		GoalsB: goalsB,
	}, nil
}

func formatMatchResult(match domain.Match) string {
	var buf strings.Builder
	if match.WinnerIsTeamA() {
		buf.WriteString("🏆")
	}
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
	if !match.WinnerIsTeamA() {
		buf.WriteString("🏆")
	}
	buf.WriteString("\nRatings:\n")
	writeRatingLine(&buf, match.A1, match.DeltaA)
	writeRatingLine(&buf, match.A2, match.DeltaA)
	writeRatingLine(&buf, match.B1, match.DeltaB)
	writeRatingLine(&buf, match.B2, match.DeltaB)
	return buf.String()
}

func writeRatingLine(buf *strings.Builder, player domain.Player, delta float64) {
	buf.WriteString(player.Name)
	buf.WriteString(": ")
	buf.WriteString(strconv.Itoa(player.RatingInt()))
	buf.WriteString(" (")
	if delta >= 0 {
		buf.WriteString("+")
	}
	buf.WriteString(strconv.Itoa(int(delta)))
	buf.WriteString(")\n")
}
