package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/player"
	"github.com/riskibarqy/sleeper-league/internal/platform/id"
)

var errBatchRejected = errors.New("batch rejected")

type fixedIDGenerator struct{}

func (fixedIDGenerator) NewID() (string, error) { return "run-1", nil }

func syncPlayers(n int) []player.Player {
	out := make([]player.Player, 0, n)
	for i := range n {
		out = append(out, player.Player{
			ID:        fmt.Sprintf("%d", 1000+i),
			FirstName: "Player",
			LastName:  fmt.Sprintf("Number %d", i),
			Position:  "WR",
			Active:    true,
		})
	}
	return out
}

func TestPlayerSyncService_Sync_UpsertsInBatches(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{}
	svc := NewPlayerSyncService(stubPlayerSource{players: syncPlayers(25)}, repo, fixedIDGenerator{}, PlayerSyncConfig{Workers: 3, BatchSize: 10}, nil)

	got, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.RunID != "run-1" || got.Fetched != 25 || got.Upserted != 25 || got.Batches != 3 || got.FailedBatches != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.FinishedAt.Before(got.StartedAt) {
		t.Fatalf("finished before start: %+v", got)
	}
	if len(repo.index) != 25 || repo.calls != 3 {
		t.Fatalf("expected 25 players over 3 calls, got %d over %d", len(repo.index), repo.calls)
	}
}

func TestPlayerSyncService_Sync_PartialFailure(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{failIDs: map[string]bool{"1012": true}}
	svc := NewPlayerSyncService(stubPlayerSource{players: syncPlayers(25)}, repo, id.NewPrefixedGenerator("sync", nil), PlayerSyncConfig{Workers: 2, BatchSize: 10}, nil)

	got, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("expected partial success, got %v", err)
	}
	if got.FailedBatches != 1 || got.Upserted != 15 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(got.RunID) < len("sync_") || got.RunID[:5] != "sync_" {
		t.Fatalf("unexpected run id: %s", got.RunID)
	}
}

func TestPlayerSyncService_Sync_AllBatchesFail(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{err: errors.New("db down")}
	svc := NewPlayerSyncService(stubPlayerSource{players: syncPlayers(5)}, repo, fixedIDGenerator{}, PlayerSyncConfig{Workers: 1, BatchSize: 2}, nil)

	got, err := svc.Sync(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if got.FailedBatches != 3 || got.Upserted != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestPlayerSyncService_Sync_SourceFailure(t *testing.T) {
	t.Parallel()

	svc := NewPlayerSyncService(stubPlayerSource{err: errors.New("503")}, &stubPlayerRepository{}, fixedIDGenerator{}, PlayerSyncConfig{}, nil)
	if _, err := svc.Sync(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestPlayerSyncService_Sync_EmptySource(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{}
	svc := NewPlayerSyncService(stubPlayerSource{}, repo, fixedIDGenerator{}, PlayerSyncConfig{}, nil)
	got, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.Fetched != 0 || got.Batches != 0 || repo.calls != 0 {
		t.Fatalf("unexpected result: %+v calls=%d", got, repo.calls)
	}
}

func TestPlayerSyncService_Sync_RejectsConcurrentRun(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	svc := NewPlayerSyncService(stubPlayerSource{players: syncPlayers(1), block: block}, &stubPlayerRepository{}, fixedIDGenerator{}, PlayerSyncConfig{}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Sync(context.Background())
		done <- err
	}()

	deadline := time.After(2 * time.Second)
	for !svc.running.Load() {
		select {
		case <-deadline:
			t.Fatalf("first sync never started")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := svc.Sync(context.Background()); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if svc.running.Load() {
		t.Fatalf("expected running flag to be released")
	}
}
