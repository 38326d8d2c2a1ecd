package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/kickerlab/foosserver/internal/domain"
	"github.com/kickerlab/foosserver/internal/elo"
)

type fakePlayerStorage struct {
	listCalls  int
	registered []string
	players    []domain.Player
}

func (f *fakePlayerStorage) ListPlayers(context.Context) ([]domain.Player, error) {
	f.listCalls++
	return f.players, nil
}

func (f *fakePlayerStorage) RegisterIfAbsent(_ context.Context, name string) error {
	f.registered = append(f.registered, name)
	return nil
}

type fakeMatchStorage struct {
	settleCalls int
	lastReport  domain.MatchReport
}

func (f *fakeMatchStorage) Settle(_ context.Context, report domain.MatchReport, _ elo.Calculator) (domain.Match, error) {
	f.settleCalls++
	f.lastReport = report
	return domain.Match{ID: 1, GoalsA: report.GoalsA, GoalsB: report.GoalsB}, nil
}

func (f *fakeMatchStorage) ListMatches(context.Context, int) ([]domain.Match, error) {
	return nil, nil
}

func (f *fakeMatchStorage) RatingHistory(context.Context) ([]domain.RatingSnapshot, error) {
	return nil, nil
}

func newTestService(ps *fakePlayerStorage, ms *fakeMatchStorage) *PlayerService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(ps, ms, elo.New(20), log)
}

func TestReportMatchValidation(t *testing.T) {
	tests := []struct {
		name   string
		report domain.MatchReport
	}{
		{
			name:   "draw",
			report: domain.MatchReport{A1: "a", A2: "b", B1: "c", B2: "d", GoalsA: 5, GoalsB: 5},
		},
		{
			name:   "zero draw",
			report: domain.MatchReport{A1: "a", A2: "b", B1: "c", B2: "d", GoalsA: 0, GoalsB: 0},
		},
		{
			name:   "margin of one",
			report: domain.MatchReport{A1: "a", A2: "b", B1: "c", B2: "d", GoalsA: 5, GoalsB: 4},
		},
		{
			name:   "negative goals",
			report: domain.MatchReport{A1: "a", A2: "b", B1: "c", B2: "d", GoalsA: -2, GoalsB: 2},
		},
		{
			name:   "missing name",
			report: domain.MatchReport{A1: "a", A2: "", B1: "c", B2: "d", GoalsA: 10, GoalsB: 8},
		},
		{
			name:   "duplicate participant",
			report: domain.MatchReport{A1: "a", A2: "a", B1: "c", B2: "d", GoalsA: 10, GoalsB: 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := &fakeMatchStorage{}
			s := newTestService(&fakePlayerStorage{}, ms)
			_, err := s.ReportMatch(context.Background(), tt.report)
			if !errors.Is(err, domain.ErrInvalidMatch) {
				t.Errorf("ReportMatch() error = %v, want ErrInvalidMatch", err)
			}
			if ms.settleCalls != 0 {
				t.Errorf("storage touched %d times on invalid report", ms.settleCalls)
			}
		})
	}
}

func TestReportMatchNormalizesNames(t *testing.T) {
	ms := &fakeMatchStorage{}
	s := newTestService(&fakePlayerStorage{}, ms)
	_, err := s.ReportMatch(context.Background(), domain.MatchReport{
		A1: "  anna ", A2: "ALEX", B1: "boris", B2: "bella",
		GoalsA: 10, GoalsB: 8,
	})
	if err != nil {
		t.Fatalf("ReportMatch() error = %v", err)
	}
	if ms.settleCalls != 1 {
		t.Fatalf("settle calls = %d, want 1", ms.settleCalls)
	}
	want := domain.MatchReport{A1: "Anna", A2: "Alex", B1: "Boris", B2: "Bella", GoalsA: 10, GoalsB: 8}
	if ms.lastReport != want {
		t.Errorf("settled report = %+v, want %+v", ms.lastReport, want)
	}
}

func TestRegisterPlayer(t *testing.T) {
	ps := &fakePlayerStorage{}
	s := newTestService(ps, &fakeMatchStorage{})
	if err := s.RegisterPlayer(context.Background(), " mario  rossi "); err != nil {
		t.Fatalf("RegisterPlayer() error = %v", err)
	}
	if len(ps.registered) != 1 || ps.registered[0] != "Mario Rossi" {
		t.Errorf("registered = %v, want [Mario Rossi]", ps.registered)
	}
	if err := s.RegisterPlayer(context.Background(), "   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("RegisterPlayer(blank) error = %v, want ErrEmptyName", err)
	}
}

func TestLeaderboardCache(t *testing.T) {
	ps := &fakePlayerStorage{players: []domain.Player{{Name: "Anna", Rating: 1010}}}
	s := newTestService(ps, &fakeMatchStorage{})
	ctx := context.Background()

	if _, err := s.Leaderboard(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Leaderboard(ctx); err != nil {
		t.Fatal(err)
	}
	if ps.listCalls != 1 {
		t.Errorf("list calls = %d, want 1 (second read cached)", ps.listCalls)
	}

	if _, err := s.ReportMatch(ctx, domain.MatchReport{
		A1: "a", A2: "b", B1: "c", B2: "d", GoalsA: 10, GoalsB: 8,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Leaderboard(ctx); err != nil {
		t.Fatal(err)
	}
	if ps.listCalls != 2 {
		t.Errorf("list calls = %d, want 2 (settlement invalidates cache)", ps.listCalls)
	}
}
