package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sleeper-league/internal/domain/player"
)

// PlayerRepository keeps the player directory in process. It is the default
// store and starts from the seed until the first sync.
type PlayerRepository struct {
	mu    sync.RWMutex
	index map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}
	return &PlayerRepository{index: index}
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.index[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) UpsertMany(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range players {
		r.index[p.ID] = p
	}
	return nil
}

func (r *PlayerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.index)
}
