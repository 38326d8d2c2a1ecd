package sqlite

import (
	"github.com/kickerlab/foosserver/gen/model"
	"github.com/kickerlab/foosserver/internal/domain"
)

func convertPlayer(player model.Players) domain.Player {
	return domain.Player{
		ID:       int64(player.ID),
		Name:     player.Name,
		Rating:   player.Rating,
		Games:    int(player.Games),
		Wins:     int(player.Wins),
		Losses:   int(player.Losses),
		GoalDiff: int(player.GoalDiff),
	}
}

func convertPlayers(players []model.Players) []domain.Player {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		converted = append(converted, convertPlayer(player))
	}
	return converted
}

func convertPlayersToMap(players []domain.Player) map[int64]domain.Player {
	m := make(map[int64]domain.Player, len(players))
	for _, player := range players {
		m[player.ID] = player
	}
	return m
}

func convertMatches(matches []model.Matches, players map[int64]domain.Player) []domain.Match {
	converted := make([]domain.Match, 0, len(matches))
	for _, match := range matches {
		converted = append(converted, domain.Match{
			ID:     int64(match.ID),
			Date:   match.Date,
			A1:     players[int64(match.A1ID)],
			A2:     players[int64(match.A2ID)],
			B1:     players[int64(match.B1ID)],
			B2:     players[int64(match.B2ID)],
			GoalsA: int(match.GoalsA),
			GoalsB: int(match.GoalsB),
			DeltaA: match.DeltaA,
			DeltaB: match.DeltaB,
		})
	}
	return converted
}
