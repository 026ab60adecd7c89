package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sleeper-league/external/sleeper"
	"github.com/riskibarqy/sleeper-league/internal/config"
	"github.com/riskibarqy/sleeper-league/internal/domain/history"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/player"
	cacherepo "github.com/riskibarqy/sleeper-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/sleeper-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sleeper-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/sleeper-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/sleeper-league/internal/platform/cache"
	idgen "github.com/riskibarqy/sleeper-league/internal/platform/id"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/platform/resilience"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

// Server is the HTTP server plus the resources it owns.
type Server struct {
	HTTP  *http.Server
	close func() error
}

// Close releases resources opened for the server, such as the database pool.
func (s *Server) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	client := sleeper.NewClient(sleeper.ClientConfig{
		BaseURL:    cfg.SleeperBaseURL,
		Sport:      cfg.SleeperSport,
		Timeout:    cfg.SleeperTimeout,
		MaxRetries: cfg.SleeperMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SleeperCircuitEnabled,
			FailureThreshold: cfg.SleeperCircuitFailureCount,
			OpenTimeout:      cfg.SleeperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SleeperCircuitHalfOpenMaxReq,
		},
	})

	stores, err := newStores(cfg, logger)
	if err != nil {
		return nil, err
	}

	var (
		playerRepo  player.Repository  = stores.players
		stateReader league.StateReader = client
	)
	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, store)
		stateReader = cacherepo.NewStateReader(client, store)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	leagueSvc := usecase.NewLeagueService(
		client,
		stateReader,
		client,
		client,
		usecase.LeagueServiceConfig{DefaultSeason: cfg.DefaultSeason},
		logger.Named("league"),
	)
	rosterSvc := usecase.NewRosterService(
		client,
		client,
		client,
		playerRepo,
		usecase.DraftPickConfig{
			StartSeason:    cfg.DraftPickStartSeason,
			Seasons:        cfg.DraftPickSeasons,
			Rounds:         cfg.DraftPickRounds,
			FallbackSeason: cfg.DefaultSeason,
		},
		logger.Named("roster"),
	)
	historySvc := usecase.NewHistoryService(client, client, client, stores.archive, logger.Named("history"))
	playerSync := usecase.NewPlayerSyncService(
		client,
		playerRepo,
		idgen.NewPrefixedGenerator("sync", nil),
		usecase.PlayerSyncConfig{
			Workers:   cfg.PlayerSyncWorkers,
			BatchSize: cfg.PlayerSyncBatchSize,
		},
		logger.Named("player_sync"),
	)

	handler := httpapi.NewHandler(leagueSvc, rosterSvc, historySvc, playerSync, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		close: stores.close,
	}, nil
}

type stores struct {
	players player.Repository
	archive history.ArchiveRepository
	close   func() error
}

func newStores(cfg config.Config, logger *logging.Logger) (stores, error) {
	switch cfg.PlayerStore {
	case config.PlayerStorePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return stores{}, err
		}
		logger.Info("player store ready", "store", cfg.PlayerStore, "db_name", dbNameFromURL(cfg.DBURL))
		return stores{
			players: postgres.NewPlayerRepository(db),
			archive: postgres.NewArchiveRepository(db),
			close:   db.Close,
		}, nil
	default:
		seed := memory.SeedPlayers()
		logger.Info("player store ready", "store", config.PlayerStoreMemory, "players", len(seed))
		return stores{
			players: memory.NewPlayerRepository(seed),
			close:   func() error { return nil },
		}, nil
	}
}
