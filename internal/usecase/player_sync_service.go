package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/sleeper-league/internal/domain/player"
	"github.com/riskibarqy/sleeper-league/internal/platform/id"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

type PlayerSyncConfig struct {
	Workers   int
	BatchSize int
}

// PlayerSyncService refreshes the local player directory from the upstream source.
type PlayerSyncService struct {
	source  player.Source
	repo    player.Repository
	idGen   id.Generator
	cfg     PlayerSyncConfig
	logger  *logging.Logger
	running atomic.Bool
	now     func() time.Time
}

type PlayerSyncResult struct {
	RunID         string
	Fetched       int
	Upserted      int
	Batches       int
	FailedBatches int
	StartedAt     time.Time
	FinishedAt    time.Time
}

func (r PlayerSyncResult) DurationMs() int64 {
	return r.FinishedAt.Sub(r.StartedAt).Milliseconds()
}

func NewPlayerSyncService(
	source player.Source,
	repo player.Repository,
	idGen id.Generator,
	cfg PlayerSyncConfig,
	logger *logging.Logger,
) *PlayerSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 4
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 500
	}
	return &PlayerSyncService{
		source: source,
		repo:   repo,
		idGen:  idGen,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Sync downloads every player and upserts them in batches. Only one run may be
// active at a time.
func (s *PlayerSyncService) Sync(ctx context.Context) (PlayerSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSyncService.Sync")
	defer span.End()

	if !s.running.CompareAndSwap(false, true) {
		return PlayerSyncResult{}, fmt.Errorf("%w: player sync already running", ErrConflict)
	}
	defer s.running.Store(false)

	runID, err := s.idGen.NewID()
	if err != nil {
		return PlayerSyncResult{}, fmt.Errorf("generate run id: %w", err)
	}
	result := PlayerSyncResult{RunID: runID, StartedAt: s.now().UTC()}
	logger := s.logger.With("run_id", runID)

	players, err := s.source.ListAll(ctx)
	if err != nil {
		return PlayerSyncResult{}, fmt.Errorf("%w: fetch players: %w", ErrDependencyUnavailable, err)
	}
	result.Fetched = len(players)
	if len(players) == 0 {
		result.FinishedAt = s.now().UTC()
		logger.WarnContext(ctx, "player sync fetched no players")
		return result, nil
	}

	batches := chunkPlayers(players, s.cfg.BatchSize)
	result.Batches = len(batches)

	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return PlayerSyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var upserted atomic.Int64
	var failed atomic.Int32
	var workers sync.WaitGroup
	for index, batch := range batches {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := s.repo.UpsertMany(ctx, batch); err != nil {
				failed.Add(1)
				logger.WarnContext(ctx, "upsert player batch failed", "batch", index, "size", len(batch), "error", err)
				return
			}
			upserted.Add(int64(len(batch)))
		}); err != nil {
			workers.Done()
			failed.Add(1)
			logger.WarnContext(ctx, "submit player batch failed", "batch", index, "error", err)
		}
	}
	workers.Wait()

	result.Upserted = int(upserted.Load())
	result.FailedBatches = int(failed.Load())
	result.FinishedAt = s.now().UTC()

	if result.FailedBatches == result.Batches {
		return result, fmt.Errorf("%w: all %d player batches failed", ErrDependencyUnavailable, result.Batches)
	}

	logger.InfoContext(ctx, "player sync finished",
		"fetched", result.Fetched,
		"upserted", result.Upserted,
		"batches", result.Batches,
		"failed_batches", result.FailedBatches,
		"duration_ms", result.DurationMs(),
	)
	return result, nil
}

func chunkPlayers(players []player.Player, size int) [][]player.Player {
	out := make([][]player.Player, 0, (len(players)+size-1)/size)
	for start := 0; start < len(players); start += size {
		end := min(start+size, len(players))
		out = append(out, players[start:end])
	}
	return out
}
