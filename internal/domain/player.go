package domain

type Player struct {
	ID       int64
	Name     string
	Rating   float64
	Games    int
	Wins     int
	Losses   int
	GoalDiff int
}

// RatingInt is the rating as shown on the leaderboard. Deltas are
// rounded before application, so this never truncates anything real.
func (p Player) RatingInt() int {
	return int(p.Rating)
}
