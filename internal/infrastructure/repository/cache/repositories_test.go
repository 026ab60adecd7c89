package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/player"
	basecache "github.com/riskibarqy/sleeper-league/internal/platform/cache"
)

type countingPlayerRepository struct {
	players   map[string]player.Player
	requested [][]string
	upserts   int
	err       error
}

func (r *countingPlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.requested = append(r.requested, append([]string(nil), playerIDs...))
	if r.err != nil {
		return nil, r.err
	}
	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := r.players[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *countingPlayerRepository) UpsertMany(_ context.Context, players []player.Player) error {
	r.upserts++
	for _, item := range players {
		r.players[item.ID] = item
	}
	return nil
}

func TestPlayerRepository_LoadsOnlyMisses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingPlayerRepository{players: map[string]player.Player{
		"4046": {ID: "4046", FirstName: "Patrick", LastName: "Mahomes", Position: "QB"},
		"6794": {ID: "6794", FirstName: "Justin", LastName: "Jefferson", Position: "WR"},
	}}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.GetByIDs(ctx, []string{"4046", "missing"})
	if err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if len(first) != 1 || first[0].ID != "4046" {
		t.Fatalf("unexpected first result: %+v", first)
	}

	second, err := repo.GetByIDs(ctx, []string{"6794", "4046", "missing"})
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if len(second) != 2 || second[0].ID != "6794" || second[1].ID != "4046" {
		t.Fatalf("unexpected second result: %+v", second)
	}
	if len(next.requested) != 2 || len(next.requested[1]) != 1 || next.requested[1][0] != "6794" {
		t.Fatalf("expected only the uncached id to be loaded, got %+v", next.requested)
	}
}

func TestPlayerRepository_UpsertInvalidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingPlayerRepository{players: map[string]player.Player{}}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	if got, _ := repo.GetByIDs(ctx, []string{"11565"}); len(got) != 0 {
		t.Fatalf("expected unknown player, got %+v", got)
	}
	if err := repo.UpsertMany(ctx, []player.Player{{ID: "11565", FirstName: "Malik", LastName: "Nabers", Position: "WR"}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetByIDs(ctx, []string{"11565"})
	if err != nil {
		t.Fatalf("lookup after upsert: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected synced player after invalidation, got %+v", got)
	}
}

func TestPlayerRepository_PropagatesErrors(t *testing.T) {
	t.Parallel()

	next := &countingPlayerRepository{players: map[string]player.Player{}, err: errors.New("db down")}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))
	if _, err := repo.GetByIDs(context.Background(), []string{"1"}); err == nil {
		t.Fatalf("expected error")
	}
}

type countingStateReader struct {
	calls int
}

func (r *countingStateReader) CurrentState(context.Context) (league.State, error) {
	r.calls++
	return league.State{Season: 2025, Week: 7}, nil
}

func TestStateReader_Caches(t *testing.T) {
	t.Parallel()

	next := &countingStateReader{}
	reader := NewStateReader(next, basecache.NewStore(time.Minute))
	for range 3 {
		state, err := reader.CurrentState(context.Background())
		if err != nil || state.Week != 7 {
			t.Fatalf("unexpected state=%+v err=%v", state, err)
		}
	}
	if next.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", next.calls)
	}
}
