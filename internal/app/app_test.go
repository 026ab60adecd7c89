package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/config"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:              config.EnvDev,
		HTTPAddr:            ":0",
		ReadTimeout:         time.Second,
		WriteTimeout:        time.Second,
		SwaggerEnabled:      true,
		SleeperBaseURL:      "http://127.0.0.1:1",
		SleeperTimeout:      time.Second,
		DefaultSeason:       2024,
		PlayerStore:         config.PlayerStoreMemory,
		CacheEnabled:        true,
		CacheTTL:            time.Minute,
		DraftPickSeasons:    3,
		DraftPickRounds:     4,
		PlayerSyncWorkers:   2,
		PlayerSyncBatchSize: 100,
	}
}

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	t.Parallel()

	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	t.Cleanup(func() { _ = srv.Close() })

	if srv.HTTP.Addr != ":0" || srv.HTTP.ReadTimeout != time.Second {
		t.Fatalf("unexpected server settings: addr=%q read=%s", srv.HTTP.Addr, srv.HTTP.ReadTimeout)
	}

	rec := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewHTTPServer_PostgresRequiresDBURL(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.PlayerStore = config.PlayerStorePostgres
	_, err := NewHTTPServer(cfg, logging.NewNop())
	if err == nil || !strings.Contains(err.Error(), "DB_URL") {
		t.Fatalf("expected DB_URL error, got %v", err)
	}
}

func TestServerClose_NilSafe(t *testing.T) {
	t.Parallel()

	var srv *Server
	if err := srv.Close(); err != nil {
		t.Fatalf("close nil server: %v", err)
	}
}

func TestFormatDBQueryForTrace(t *testing.T) {
	t.Parallel()

	got := formatDBQueryForTrace("SELECT  player_id,\n\tfirst_name\nFROM players ")
	if got != "SELECT player_id, first_name FROM players" {
		t.Fatalf("unexpected formatted query: %q", got)
	}

	long := formatDBQueryForTrace(strings.Repeat("x", maxTracedQueryLength+10))
	if len(long) != maxTracedQueryLength+3 || !strings.HasSuffix(long, "...") {
		t.Fatalf("expected truncated query, got len=%d", len(long))
	}
}
