// Package mem keeps the last computed leaderboard in memory so name
// lookups from the bot and the web forms don't replay the whole match
// log.
package mem

import (
	"sync"

	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/normalize"
)

type Cache struct {
	mu      sync.RWMutex
	valid   bool
	list    []domain.Player
	players map[string]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
	}
}

// Update replaces the cached leaderboard. The slice order is kept as
// given.
func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.list = make([]domain.Player, len(players))
	copy(c.list, players)
	c.players = make(map[string]domain.Player, len(players))
	for i := range players {
		name := normalize.Name(players[i].Name)
		c.players[name] = players[i]
	}
	c.valid = true
}

// Invalidate marks the cache stale. The next Valid check forces the
// caller to recompute.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.valid
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return domain.Player{}, false
	}
	player, ok := c.players[normalize.Name(name)]
	if !ok {
		return domain.Player{}, false
	}
	return player, true
}

func (c *Cache) GetRatings() []domain.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()

	players := make([]domain.Player, len(c.list))
	copy(players, c.list)
	return players
}
