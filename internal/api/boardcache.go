package api

import (
	"sync"

	"fightboard/internal/combat"
)

// boardCache keeps the final P1/P2 board snapshot for recently completed
// rounds, so GET /rounds/{id}/board.png can render without re-deriving
// board state from the event stream. It mirrors eventlog.Log's bounded
// ring shape but stores a different payload (render.Board-ready state
// instead of the replayable event log).
type boardCache struct {
	mu       sync.Mutex
	capacity int
	order    []string
	boards   map[string][2]combat.Board
}

func newBoardCache(capacity int) *boardCache {
	if capacity <= 0 {
		capacity = 512
	}
	return &boardCache{
		capacity: capacity,
		boards:   make(map[string][2]combat.Board, capacity),
	}
}

// Put stores the P1/P2 boards for a round id, evicting the oldest entry
// once the cache is at capacity.
func (c *boardCache) Put(roundID string, p1, p2 combat.Board) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.boards[roundID]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.boards, oldest)
		}
		c.order = append(c.order, roundID)
	}
	c.boards[roundID] = [2]combat.Board{p1, p2}
}

// Lookup returns the stored boards for a round id, or empty boards if the
// round was never cached or has aged out.
func (c *boardCache) Lookup(roundID string) (combat.Board, combat.Board) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pair, ok := c.boards[roundID]
	if !ok {
		return combat.Board{}, combat.Board{}
	}
	return pair[0], pair[1]
}
