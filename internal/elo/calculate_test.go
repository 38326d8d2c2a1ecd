package elo

import (
	"math"
	"testing"
)

func TestExpectedScore(t *testing.T) {
	pairs := [][2]float64{
		{1000, 1000},
		{1100, 1000},
		{1000, 1100},
		{944, 938},
		{2400, 800},
	}
	for _, p := range pairs {
		got := ExpectedScore(p[0], p[1]) + ExpectedScore(p[1], p[0])
		if math.Abs(got-1.0) > 1e-9 {
			t.Errorf("ExpectedScore(%v,%v) + ExpectedScore(%v,%v) = %v, want 1", p[0], p[1], p[1], p[0], got)
		}
	}
	if got := ExpectedScore(1234, 1234); got != 0.5 {
		t.Errorf("ExpectedScore of equal ratings = %v, want 0.5", got)
	}
}

func TestMarginMultiplier(t *testing.T) {
	tests := []struct {
		margin int
		want   float64
	}{
		{margin: 2, want: 1.0},
		{margin: 3, want: 1.1},
		{margin: 4, want: 1.2},
		{margin: 5, want: 1.3},
		{margin: 6, want: 1.4},
		{margin: 7, want: 1.5},
		{margin: 8, want: 1.6},
		{margin: 9, want: 1.7},
		{margin: 10, want: 1.8},
		{margin: 15, want: 1.8},
	}
	for _, tt := range tests {
		if got := MarginMultiplier(tt.margin); got != tt.want {
			t.Errorf("MarginMultiplier(%d) = %v, want %v", tt.margin, got, tt.want)
		}
	}
	prev := 0.0
	for margin := 2; margin <= 20; margin++ {
		got := MarginMultiplier(margin)
		if got < prev {
			t.Errorf("MarginMultiplier(%d) = %v, less than MarginMultiplier(%d) = %v", margin, got, margin-1, prev)
		}
		prev = got
	}
}

func TestDeltas(t *testing.T) {
	type args struct {
		k      float64
		teamA  float64
		teamB  float64
		goalsA int
		goalsB int
	}
	tests := []struct {
		name       string
		args       args
		wantDeltaA float64
		wantDeltaB float64
	}{
		{
			name:       "equal teams minimum margin",
			args:       args{k: 20, teamA: 1000, teamB: 1000, goalsA: 10, goalsB: 8},
			wantDeltaA: 10,
			wantDeltaB: -10,
		},
		{
			name:       "equal teams margin five",
			args:       args{k: 20, teamA: 1000, teamB: 1000, goalsA: 10, goalsB: 5},
			wantDeltaA: 13,
			wantDeltaB: -13,
		},
		{
			name:       "favorites win",
			args:       args{k: 20, teamA: 1100, teamB: 1000, goalsA: 10, goalsB: 8},
			wantDeltaA: 7,
			wantDeltaB: -7,
		},
		{
			name:       "underdogs win",
			args:       args{k: 20, teamA: 1000, teamB: 1100, goalsA: 10, goalsB: 8},
			wantDeltaA: 13,
			wantDeltaB: -13,
		},
		{
			// 21 * 1.0 * 0.5 = 10.5 lands exactly between integers,
			// half-to-even keeps both sides at 10.
			name:       "tie adjacent rounding",
			args:       args{k: 21, teamA: 1000, teamB: 1000, goalsA: 10, goalsB: 8},
			wantDeltaA: 10,
			wantDeltaB: -10,
		},
		{
			name:       "blowout capped",
			args:       args{k: 20, teamA: 1000, teamB: 1000, goalsA: 12, goalsB: 0},
			wantDeltaA: 18,
			wantDeltaB: -18,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.args.k)
			gotA, gotB := c.Deltas(tt.args.teamA, tt.args.teamB, tt.args.goalsA, tt.args.goalsB)
			if gotA != tt.wantDeltaA || gotB != tt.wantDeltaB {
				t.Errorf("Deltas() = (%v, %v), want (%v, %v)", gotA, gotB, tt.wantDeltaA, tt.wantDeltaB)
			}
		})
	}
}
