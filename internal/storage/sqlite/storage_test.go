package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/kickerlab/foosserver/internal/domain"
	"github.com/kickerlab/foosserver/internal/elo"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(logrus.New(), filepath.Join(t.TempDir(), "rating.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func playersByName(t *testing.T, s *Storage) map[string]domain.Player {
	t.Helper()
	players, err := s.ListPlayers(context.Background())
	require.NoError(t, err)
	m := make(map[string]domain.Player, len(players))
	for _, p := range players {
		m[p.Name] = p
	}
	return m
}

func TestSettle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	match, err := s.Settle(ctx, domain.MatchReport{
		A1: "Anna", A2: "Alex",
		B1: "Boris", B2: "Bella",
		GoalsA: 10, GoalsB: 8,
	}, elo.New(20))
	require.NoError(t, err)
	require.Equal(t, 10.0, match.DeltaA)
	require.Equal(t, -10.0, match.DeltaB)

	players := playersByName(t, s)
	require.Len(t, players, 4)
	for _, name := range []string{"Anna", "Alex"} {
		p := players[name]
		require.Equal(t, 1010.0, p.Rating, name)
		require.Equal(t, 1, p.Games, name)
		require.Equal(t, 1, p.Wins, name)
		require.Equal(t, 0, p.Losses, name)
		require.Equal(t, 2, p.GoalDiff, name)
	}
	for _, name := range []string{"Boris", "Bella"} {
		p := players[name]
		require.Equal(t, 990.0, p.Rating, name)
		require.Equal(t, 1, p.Games, name)
		require.Equal(t, 0, p.Wins, name)
		require.Equal(t, 1, p.Losses, name)
		require.Equal(t, -2, p.GoalDiff, name)
	}

	matches, err := s.ListMatches(ctx, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, 10, matches[0].GoalsA)
	require.Equal(t, 8, matches[0].GoalsB)
	require.Equal(t, "Anna", matches[0].A1.Name)
	require.Equal(t, "Bella", matches[0].B2.Name)

	history, err := s.RatingHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 4)
	for _, snapshot := range history {
		require.Equal(t, match.ID, snapshot.MatchID)
		require.Equal(t, history[0].CreatedAt, snapshot.CreatedAt)
	}
}

func TestSettleTeammateSymmetry(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	calc := elo.New(20)

	_, err := s.Settle(ctx, domain.MatchReport{
		A1: "Anna", A2: "Alex", B1: "Boris", B2: "Bella",
		GoalsA: 10, GoalsB: 5,
	}, calc)
	require.NoError(t, err)

	// Mixed teams: teammates start at different ratings but must still
	// receive identical deltas and counters.
	_, err = s.Settle(ctx, domain.MatchReport{
		A1: "Anna", A2: "Boris", B1: "Alex", B2: "Bella",
		GoalsA: 3, GoalsB: 10,
	}, calc)
	require.NoError(t, err)

	players := playersByName(t, s)
	require.Equal(t, players["Anna"].Games, players["Boris"].Games)
	require.Equal(t, players["Anna"].Rating-1013, players["Boris"].Rating-987)
	require.Equal(t, players["Anna"].GoalDiff-5, players["Boris"].GoalDiff+5)
	require.Equal(t, players["Alex"].Rating-1013, players["Bella"].Rating-987)
	for _, p := range players {
		require.Equal(t, p.Games, p.Wins+p.Losses, p.Name)
	}
}

func TestListPlayersOrderedByRating(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Settle(ctx, domain.MatchReport{
		A1: "Anna", A2: "Alex", B1: "Boris", B2: "Bella",
		GoalsA: 10, GoalsB: 8,
	}, elo.New(20))
	require.NoError(t, err)

	players, err := s.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 4)
	for i := 1; i < len(players); i++ {
		require.GreaterOrEqual(t, players[i-1].Rating, players[i].Rating)
	}
}

func TestRegisterIfAbsent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterIfAbsent(ctx, "Anna"))
	require.NoError(t, s.RegisterIfAbsent(ctx, "Anna"))

	players, err := s.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "Anna", players[0].Name)
	require.Equal(t, 1000.0, players[0].Rating)
	require.Equal(t, 0, players[0].Games)
}

func TestListMatchesLimit(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	calc := elo.New(20)

	goals := []int{2, 3, 4}
	for _, g := range goals {
		_, err := s.Settle(ctx, domain.MatchReport{
			A1: "Anna", A2: "Alex", B1: "Boris", B2: "Bella",
			GoalsA: 10, GoalsB: 10 - g,
		}, calc)
		require.NoError(t, err)
	}

	matches, err := s.ListMatches(ctx, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	// Most recent first.
	require.Equal(t, 6, matches[0].GoalsB)
	require.Equal(t, 7, matches[1].GoalsB)
	require.Greater(t, matches[0].ID, matches[1].ID)
}

func TestRatingHistoryAscending(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	calc := elo.New(20)

	for i := 0; i < 2; i++ {
		_, err := s.Settle(ctx, domain.MatchReport{
			A1: "Anna", A2: "Alex", B1: "Boris", B2: "Bella",
			GoalsA: 10, GoalsB: 8,
		}, calc)
		require.NoError(t, err)
	}

	history, err := s.RatingHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 8)
	for i := 1; i < len(history); i++ {
		require.False(t, history[i].CreatedAt.Before(history[i-1].CreatedAt))
	}
}
