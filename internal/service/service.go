package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kickerlab/foosserver/internal/cache/mem"
	"github.com/kickerlab/foosserver/internal/domain"
	"github.com/kickerlab/foosserver/internal/elo"
	"github.com/kickerlab/foosserver/internal/normalize"
	"github.com/kickerlab/foosserver/internal/storage"
)

const defaultHistoryLimit = 20

var ErrEmptyName = errors.New("empty player name")

type PlayerService struct {
	playerStorage storage.PlayerStorage
	matchStorage  storage.MatchStorage
	calc          elo.Calculator
	cache         *mem.Cache
	log           *logrus.Entry
}

func New(playerStorage storage.PlayerStorage, matchStorage storage.MatchStorage, calc elo.Calculator, log *logrus.Logger) *PlayerService {
	return &PlayerService{
		playerStorage: playerStorage,
		matchStorage:  matchStorage,
		calc:          calc,
		cache:         mem.New(),
		log:           log.WithField("from", "player-service"),
	}
}

// Leaderboard returns all players ordered by rating descending.
func (s *PlayerService) Leaderboard(ctx context.Context) ([]domain.Player, error) {
	if players, ok := s.cache.Leaderboard(); ok {
		return players, nil
	}
	players, err := s.playerStorage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Update(players)
	return players, nil
}

// RegisterPlayer seeds a player before any match is reported. Reusing
// an existing name is not an error.
func (s *PlayerService) RegisterPlayer(ctx context.Context, name string) error {
	name = normalize.Name(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := s.playerStorage.RegisterIfAbsent(ctx, name); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// ReportMatch validates and settles a reported 2v2 result. Unknown
// player names are created on the fly with the initial rating. On a
// validation error nothing is persisted.
func (s *PlayerService) ReportMatch(ctx context.Context, report domain.MatchReport) (domain.Match, error) {
	report.A1 = normalize.Name(report.A1)
	report.A2 = normalize.Name(report.A2)
	report.B1 = normalize.Name(report.B1)
	report.B2 = normalize.Name(report.B2)
	if err := validateReport(report); err != nil {
		return domain.Match{}, err
	}
	match, err := s.matchStorage.Settle(ctx, report, s.calc)
	if err != nil {
		return domain.Match{}, err
	}
	s.cache.Invalidate()
	s.log.WithFields(map[string]interface{}{
		"match_id": match.ID,
		"delta_a":  match.DeltaA,
		"delta_b":  match.DeltaB,
	}).Info("match settled")
	return match, nil
}

func validateReport(report domain.MatchReport) error {
	names := []string{report.A1, report.A2, report.B1, report.B2}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("%w: all four player names are required", domain.ErrInvalidMatch)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: player %q is listed twice", domain.ErrInvalidMatch, name)
		}
		seen[name] = struct{}{}
	}
	if report.GoalsA < 0 || report.GoalsB < 0 {
		return fmt.Errorf("%w: goals can not be negative", domain.ErrInvalidMatch)
	}
	if report.GoalsA == report.GoalsB {
		return fmt.Errorf("%w: draws are not allowed", domain.ErrInvalidMatch)
	}
	margin := report.GoalsA - report.GoalsB
	if margin < 0 {
		margin = -margin
	}
	if margin < 2 {
		return fmt.Errorf("%w: minimum margin is 2 goals", domain.ErrInvalidMatch)
	}
	return nil
}

// MatchHistory returns settled matches, most recent first.
func (s *PlayerService) MatchHistory(ctx context.Context, limit int) ([]domain.Match, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.matchStorage.ListMatches(ctx, limit)
}

// RatingHistory returns every rating snapshot ordered by time, the feed
// for the per-player trend chart.
func (s *PlayerService) RatingHistory(ctx context.Context) ([]domain.RatingSnapshot, error) {
	return s.matchStorage.RatingHistory(ctx)
}
