package storage

import (
	"context"

	"github.com/kickerlab/foosserver/internal/domain"
	"github.com/kickerlab/foosserver/internal/elo"
)

type PlayerStorage interface {
	// ListPlayers returns all players ordered by rating descending.
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	// RegisterIfAbsent creates a player with the initial rating. It is
	// a no-op when the name is already taken.
	RegisterIfAbsent(ctx context.Context, name string) error
}

type MatchStorage interface {
	// Settle resolves the four participants (creating missing ones),
	// applies the deltas produced by calc and persists the match plus
	// four rating history rows, all in one transaction.
	Settle(ctx context.Context, report domain.MatchReport, calc elo.Calculator) (domain.Match, error)
	// ListMatches returns settled matches, most recent first, at most
	// limit rows when limit is positive.
	ListMatches(ctx context.Context, limit int) ([]domain.Match, error)
	// RatingHistory returns every rating snapshot ordered by creation
	// time ascending.
	RatingHistory(ctx context.Context) ([]domain.RatingSnapshot, error)
}
