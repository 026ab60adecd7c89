package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

const (
	PlayerStoreMemory   = "memory"
	PlayerStorePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	CORSAllowedOrigins           []string
	SwaggerEnabled               bool
	LogLevel                     logging.Level
	SleeperBaseURL               string
	SleeperSport                 string
	SleeperTimeout               time.Duration
	SleeperMaxRetries            int
	SleeperCircuitEnabled        bool
	SleeperCircuitFailureCount   int
	SleeperCircuitOpenTimeout    time.Duration
	SleeperCircuitHalfOpenMaxReq int
	DefaultSeason                int
	PlayerStore                  string
	DBURL                        string
	DBDisablePreparedBinary      bool
	CacheEnabled                 bool
	CacheTTL                     time.Duration
	DraftPickStartSeason         int
	DraftPickSeasons             int
	DraftPickRounds              int
	PlayerSyncWorkers            int
	PlayerSyncBatchSize          int
	InternalJobToken             string
	UptraceEnabled               bool
	UptraceDSN                   string
	PprofEnabled                 bool
	PprofAddr                    string
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string
	PyroscopeAppName             string
	PyroscopeAuthToken           string
	PyroscopeBasicAuthUser       string
	PyroscopeBasicAuthPassword   string
	PyroscopeUploadRate          time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	sleeperBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1")), "/")
	if sleeperBaseURL == "" {
		return Config{}, fmt.Errorf("SLEEPER_BASE_URL cannot be empty")
	}
	sleeperSport := strings.ToLower(strings.TrimSpace(getEnv("SLEEPER_SPORT", "nfl")))
	sleeperTimeout, err := time.ParseDuration(getEnv("SLEEPER_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_TIMEOUT: %w", err)
	}
	if sleeperTimeout <= 0 {
		return Config{}, fmt.Errorf("SLEEPER_TIMEOUT must be > 0")
	}
	sleeperMaxRetries, err := getEnvAsInt("SLEEPER_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_MAX_RETRIES: %w", err)
	}
	if sleeperMaxRetries < 0 {
		return Config{}, fmt.Errorf("SLEEPER_MAX_RETRIES must be >= 0")
	}
	sleeperCircuitEnabled, err := strconv.ParseBool(getEnv("SLEEPER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_CIRCUIT_ENABLED: %w", err)
	}
	sleeperCircuitFailureCount, err := getEnvAsInt("SLEEPER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sleeperCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SLEEPER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sleeperCircuitOpenTimeout, err := time.ParseDuration(getEnv("SLEEPER_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if sleeperCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SLEEPER_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	sleeperCircuitHalfOpenMaxReq, err := getEnvAsInt("SLEEPER_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sleeperCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SLEEPER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	defaultSeason, err := getEnvAsInt("DEFAULT_SEASON", time.Now().Year())
	if err != nil {
		return Config{}, fmt.Errorf("parse DEFAULT_SEASON: %w", err)
	}
	if defaultSeason < 2000 || defaultSeason > 9999 {
		return Config{}, fmt.Errorf("DEFAULT_SEASON must be a four digit year")
	}

	playerStore, err := parsePlayerStore(getEnv("PLAYER_STORE", PlayerStoreMemory))
	if err != nil {
		return Config{}, err
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if playerStore == PlayerStorePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when PLAYER_STORE=%s", PlayerStorePostgres)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	draftPickStartSeason, err := getEnvAsInt("DRAFT_PICK_START_SEASON", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRAFT_PICK_START_SEASON: %w", err)
	}
	if draftPickStartSeason < 0 {
		return Config{}, fmt.Errorf("DRAFT_PICK_START_SEASON must be >= 0")
	}
	draftPickSeasons, err := getEnvAsInt("DRAFT_PICK_SEASONS", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRAFT_PICK_SEASONS: %w", err)
	}
	if draftPickSeasons < 1 {
		return Config{}, fmt.Errorf("DRAFT_PICK_SEASONS must be >= 1")
	}
	draftPickRounds, err := getEnvAsInt("DRAFT_PICK_ROUNDS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRAFT_PICK_ROUNDS: %w", err)
	}
	if draftPickRounds < 1 {
		return Config{}, fmt.Errorf("DRAFT_PICK_ROUNDS must be >= 1")
	}

	playerSyncWorkers, err := getEnvAsInt("PLAYER_SYNC_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse PLAYER_SYNC_WORKERS: %w", err)
	}
	if playerSyncWorkers < 1 {
		return Config{}, fmt.Errorf("PLAYER_SYNC_WORKERS must be >= 1")
	}
	playerSyncBatchSize, err := getEnvAsInt("PLAYER_SYNC_BATCH_SIZE", 500)
	if err != nil {
		return Config{}, fmt.Errorf("parse PLAYER_SYNC_BATCH_SIZE: %w", err)
	}
	if playerSyncBatchSize < 1 {
		return Config{}, fmt.Errorf("PLAYER_SYNC_BATCH_SIZE must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "sleeper-league-api"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:               swaggerEnabled,
		LogLevel:                     logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		SleeperBaseURL:               sleeperBaseURL,
		SleeperSport:                 sleeperSport,
		SleeperTimeout:               sleeperTimeout,
		SleeperMaxRetries:            sleeperMaxRetries,
		SleeperCircuitEnabled:        sleeperCircuitEnabled,
		SleeperCircuitFailureCount:   sleeperCircuitFailureCount,
		SleeperCircuitOpenTimeout:    sleeperCircuitOpenTimeout,
		SleeperCircuitHalfOpenMaxReq: sleeperCircuitHalfOpenMaxReq,
		DefaultSeason:                defaultSeason,
		PlayerStore:                  playerStore,
		DBURL:                        dbURL,
		DBDisablePreparedBinary:      dbDisablePreparedBinary,
		CacheEnabled:                 cacheEnabled,
		CacheTTL:                     cacheTTL,
		DraftPickStartSeason:         draftPickStartSeason,
		DraftPickSeasons:             draftPickSeasons,
		DraftPickRounds:              draftPickRounds,
		PlayerSyncWorkers:            playerSyncWorkers,
		PlayerSyncBatchSize:          playerSyncBatchSize,
		InternalJobToken:             strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    pprofAddr,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
	}
	if cfg.SleeperSport == "" {
		return Config{}, fmt.Errorf("SLEEPER_SPORT cannot be empty")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parsePlayerStore(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case PlayerStoreMemory, PlayerStorePostgres:
		return value, nil
	default:
		return "", fmt.Errorf("invalid PLAYER_STORE %q: valid values are %s, %s", v, PlayerStoreMemory, PlayerStorePostgres)
	}
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
