package domain

import (
	"errors"
	"time"
)

// ErrInvalidMatch marks a match report that can not be settled. The
// validation message is wrapped around it.
var ErrInvalidMatch = errors.New("invalid match")

// MatchReport is a raw 2v2 result as reported by a user: two player
// names per side and the goals each side scored.
type MatchReport struct {
	A1, A2 string
	B1, B2 string
	GoalsA int
	GoalsB int
}

// Match is a settled 2v2 contest. DeltaA/DeltaB hold the signed rating
// change applied to every player of the respective side.
type Match struct {
	ID     int64
	Date   time.Time
	A1, A2 Player
	B1, B2 Player
	GoalsA int
	GoalsB int
	DeltaA float64
	DeltaB float64
}

func (m Match) WinnerIsTeamA() bool {
	return m.GoalsA > m.GoalsB
}

// RatingSnapshot is one append-only rating history row, written for
// every participant of every settled match.
type RatingSnapshot struct {
	ID         int64
	PlayerID   int64
	PlayerName string
	MatchID    int64
	Rating     int
	CreatedAt  time.Time
}
