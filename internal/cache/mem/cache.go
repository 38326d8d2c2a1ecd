package mem

import (
	"sync"

	"github.com/kickerlab/foosserver/internal/domain"
)

// Cache holds the last leaderboard read so the table and bot commands
// don't hit the database on every view. Any settlement or registration
// invalidates it.
type Cache struct {
	mu      sync.RWMutex
	valid   bool
	players []domain.Player
}

func New() *Cache {
	return &Cache{}
}

func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make([]domain.Player, len(players))
	copy(c.players, players)
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
	c.players = nil
}

func (c *Cache) Leaderboard() ([]domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, false
	}
	players := make([]domain.Player, len(c.players))
	copy(players, c.players)
	return players, true
}
