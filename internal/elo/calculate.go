package elo

import "math"

// DefaultKFactor is used when the config carries no rating section.
const DefaultKFactor = 20.0

// InitialRating is assigned to every newly created player.
const InitialRating = 1000.0

// Calculator computes margin-scaled Elo deltas for 2v2 matches.
// K scales every delta and comes from the server config.
type Calculator struct {
	K float64
}

func New(k float64) Calculator {
	if k == 0 {
		k = DefaultKFactor
	}
	return Calculator{K: k}
}

// ExpectedScore returns the logistic win expectation of a side rated
// ra against a side rated rb. ExpectedScore(x, y) + ExpectedScore(y, x)
// is always 1 within floating point tolerance.
func ExpectedScore(ra, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
}

// MarginMultiplier scales the base delta by the goal margin, capped at
// 1.8 for blowouts of 10 and more.
func MarginMultiplier(margin int) float64 {
	switch {
	case margin <= 2:
		return 1.0
	case margin == 3:
		return 1.1
	case margin == 4:
		return 1.2
	case margin == 5:
		return 1.3
	case margin == 6:
		return 1.4
	case margin == 7:
		return 1.5
	case margin == 8:
		return 1.6
	case margin == 9:
		return 1.7
	default:
		return 1.8
	}
}

// Deltas returns the signed rating change for each side of a settled
// match, given the team average ratings and the goal counts. The
// expectation of each side is evaluated independently, not derived as
// the complement. Deltas are rounded half to even before application,
// so every post-match rating stays integer valued.
func (c Calculator) Deltas(teamA, teamB float64, goalsA, goalsB int) (deltaA, deltaB float64) {
	margin := goalsA - goalsB
	if margin < 0 {
		margin = -margin
	}
	m := MarginMultiplier(margin)

	var actualA, actualB float64
	if goalsA > goalsB {
		actualA = 1.0
	} else {
		actualB = 1.0
	}

	deltaA = math.RoundToEven(c.K * m * (actualA - ExpectedScore(teamA, teamB)))
	deltaB = math.RoundToEven(c.K * m * (actualB - ExpectedScore(teamB, teamA)))
	return deltaA, deltaB
}
