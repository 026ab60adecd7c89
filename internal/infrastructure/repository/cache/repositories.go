package cache

import (
	"context"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/player"
	basecache "github.com/riskibarqy/sleeper-league/internal/platform/cache"
)

const (
	playerKeyPrefix = "player:id:"
	stateKey        = "league:state"
)

// PlayerRepository caches directory lookups per player id. Writes go to the
// wrapped store and drop every cached player.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	keys := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		keys = append(keys, playerKeyPrefix+id)
	}
	hits, misses := r.cache.GetMany(ctx, keys)

	loaded := make(map[string]player.Player, len(misses))
	if len(misses) > 0 {
		missingIDs := make([]string, 0, len(misses))
		for _, key := range misses {
			missingIDs = append(missingIDs, key[len(playerKeyPrefix):])
		}

		items, err := r.next.GetByIDs(ctx, missingIDs)
		if err != nil {
			return nil, err
		}

		fresh := make(map[string]any, len(missingIDs))
		for _, item := range items {
			loaded[item.ID] = item
			fresh[playerKeyPrefix+item.ID] = cachedPlayer{value: item, exists: true}
		}
		for _, id := range missingIDs {
			if _, ok := loaded[id]; !ok {
				fresh[playerKeyPrefix+id] = cachedPlayer{}
			}
		}
		r.cache.SetMany(ctx, fresh)
	}

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := loaded[id]; ok {
			out = append(out, item)
			continue
		}
		if cached, ok := hits[playerKeyPrefix+id].(cachedPlayer); ok && cached.exists {
			out = append(out, cached.value)
		}
	}
	return out, nil
}

func (r *PlayerRepository) UpsertMany(ctx context.Context, players []player.Player) error {
	if err := r.next.UpsertMany(ctx, players); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, playerKeyPrefix)
	return nil
}

type cachedPlayer struct {
	value  player.Player
	exists bool
}

// StateReader caches the sport state, which moves once a week.
type StateReader struct {
	next  league.StateReader
	cache *basecache.Store
}

func NewStateReader(next league.StateReader, cache *basecache.Store) *StateReader {
	return &StateReader{next: next, cache: cache}
}

func (r *StateReader) CurrentState(ctx context.Context) (league.State, error) {
	v, err := r.cache.GetOrLoad(ctx, stateKey, func(ctx context.Context) (any, error) {
		return r.next.CurrentState(ctx)
	})
	if err != nil {
		return league.State{}, err
	}

	state, _ := v.(league.State)
	return state, nil
}
