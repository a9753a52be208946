package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
	SwaggerEnabled     bool
	PprofEnabled       bool
	PprofAddr          string
	MetricsNamespace   string
	LogLevel           logging.Level

	FootballDataBaseURL             string
	FootballDataToken               string
	FootballDataTimeout             time.Duration
	FootballDataRequestsPerMinute   int
	FootballDataCircuitEnabled      bool
	FootballDataCircuitFailureCount int
	FootballDataCircuitOpenTimeout  time.Duration
	FootballDataCircuitHalfOpenReq  int

	NewsAPIBaseURL string
	NewsAPIKey     string
	NewsAPITimeout time.Duration

	Location            *time.Location
	OlderMatchesMaxDays int
	TeamUpcomingLimit   int
	RetryMaxRetries     int
	RetryBaseDelay      time.Duration

	CacheEnabled    bool
	CacheTTL        time.Duration
	ScorersCacheTTL time.Duration
	NewsCacheTTL    time.Duration

	WarmerEnabled  bool
	WarmerInterval time.Duration
	WarmerLeagues  []string
	WarmerWorkers  int

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	BetterStackEnabled         bool
	BetterStackEndpoint        string
	BetterStackToken           string
	BetterStackTimeout         time.Duration
	BetterStackMinLevel        logging.Level
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// Load reads the environment, after merging an optional dotenv file (ENV_FILE, default
// .env). Variables already set in the process win over the file.
func Load() (Config, error) {
	if err := loadDotEnv(getEnv("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

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

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "60s")
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	footballDataTimeout, err := getEnvAsDuration("FOOTBALL_DATA_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	// The free tier allows 10 calls per minute.
	footballDataRPM, err := getEnvAsInt("FOOTBALL_DATA_REQUESTS_PER_MINUTE", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_REQUESTS_PER_MINUTE: %w", err)
	}
	if footballDataRPM < 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_REQUESTS_PER_MINUTE must be >= 0")
	}
	circuitEnabled, err := strconv.ParseBool(getEnv("FOOTBALL_DATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := getEnvAsDuration("FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	circuitHalfOpenReq, err := getEnvAsInt("FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenReq < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	newsTimeout, err := getEnvAsDuration("NEWS_API_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	location, err := time.LoadLocation(strings.TrimSpace(getEnv("APP_TIMEZONE", "UTC")))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_TIMEZONE: %w", err)
	}

	olderDays, err := getEnvAsInt("OLDER_MATCHES_MAX_DAYS", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse OLDER_MATCHES_MAX_DAYS: %w", err)
	}
	if olderDays < 1 || olderDays > match.OlderCandidateDays {
		return Config{}, fmt.Errorf("OLDER_MATCHES_MAX_DAYS must be between 1 and %d", match.OlderCandidateDays)
	}
	teamUpcomingLimit, err := getEnvAsInt("TEAM_UPCOMING_LIMIT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAM_UPCOMING_LIMIT: %w", err)
	}
	if teamUpcomingLimit < 1 {
		return Config{}, fmt.Errorf("TEAM_UPCOMING_LIMIT must be >= 1")
	}
	retryMaxRetries, err := getEnvAsInt("RETRY_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse RETRY_MAX_RETRIES: %w", err)
	}
	if retryMaxRetries < 0 {
		return Config{}, fmt.Errorf("RETRY_MAX_RETRIES must be >= 0")
	}
	retryBaseDelay, err := getEnvAsDuration("RETRY_BASE_DELAY", "1s")
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := getEnvAsDuration("CACHE_TTL", "60s")
	if err != nil {
		return Config{}, err
	}
	scorersCacheTTL, err := getEnvAsDuration("SCORERS_CACHE_TTL", "1h")
	if err != nil {
		return Config{}, err
	}
	newsCacheTTL, err := getEnvAsDuration("NEWS_CACHE_TTL", "20s")
	if err != nil {
		return Config{}, err
	}

	warmerEnabled, err := strconv.ParseBool(getEnv("WARMER_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARMER_ENABLED: %w", err)
	}
	warmerInterval, err := getEnvAsDuration("WARMER_INTERVAL", "60s")
	if err != nil {
		return Config{}, err
	}
	warmerWorkers, err := getEnvAsInt("WARMER_WORKERS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse WARMER_WORKERS: %w", err)
	}
	if warmerWorkers < 1 {
		return Config{}, fmt.Errorf("WARMER_WORKERS must be >= 1")
	}
	if warmerEnabled && !cacheEnabled {
		return Config{}, fmt.Errorf("WARMER_ENABLED=true requires CACHE_ENABLED=true")
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
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackEndpoint := strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if betterStackEnabled && betterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := getEnvAsDuration("BETTERSTACK_TIMEOUT", "3s")
	if err != nil {
		return Config{}, err
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "football-hub-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		ShutdownTimeout:    shutdownTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:     swaggerEnabled,
		PprofEnabled:       pprofEnabled,
		PprofAddr:          pprofAddr,
		MetricsNamespace:   strings.TrimSpace(getEnv("METRICS_NAMESPACE", "football_hub")),
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		FootballDataBaseURL:             strings.TrimSpace(getEnv("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org/v4")),
		FootballDataToken:               strings.TrimSpace(getEnv("FOOTBALL_DATA_TOKEN", "")),
		FootballDataTimeout:             footballDataTimeout,
		FootballDataRequestsPerMinute:   footballDataRPM,
		FootballDataCircuitEnabled:      circuitEnabled,
		FootballDataCircuitFailureCount: circuitFailureCount,
		FootballDataCircuitOpenTimeout:  circuitOpenTimeout,
		FootballDataCircuitHalfOpenReq:  circuitHalfOpenReq,

		NewsAPIBaseURL: strings.TrimSpace(getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2")),
		NewsAPIKey:     strings.TrimSpace(getEnv("NEWS_API_KEY", "")),
		NewsAPITimeout: newsTimeout,

		Location:            location,
		OlderMatchesMaxDays: olderDays,
		TeamUpcomingLimit:   teamUpcomingLimit,
		RetryMaxRetries:     retryMaxRetries,
		RetryBaseDelay:      retryBaseDelay,

		CacheEnabled:    cacheEnabled,
		CacheTTL:        cacheTTL,
		ScorersCacheTTL: scorersCacheTTL,
		NewsCacheTTL:    newsCacheTTL,

		WarmerEnabled:  warmerEnabled,
		WarmerInterval: warmerInterval,
		WarmerLeagues:  splitCSV(getEnv("WARMER_LEAGUES", "PL,PD,BL1,SA,FL1")),
		WarmerWorkers:  warmerWorkers,

		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		BetterStackEnabled:         betterStackEnabled,
		BetterStackEndpoint:        betterStackEndpoint,
		BetterStackToken:           strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),
		BetterStackTimeout:         betterStackTimeout,
		BetterStackMinLevel:        parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error")),
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if appEnv == EnvProd && cfg.FootballDataToken == "" {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_TOKEN is required when APP_ENV=prod")
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
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

// getEnvAsDuration parses a strictly positive duration.
func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
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
