package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

const devJWTSecret = "football-hub-dev-secret"

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	HTTPAddr                      string
	DBURL                         string
	DBDisablePreparedBinary       bool
	JWTSecret                     string
	JWTTTL                        time.Duration
	AIEngineURL                   string
	AIEngineTimeout               time.Duration
	AIEngineCircuitEnabled        bool
	AIEngineCircuitFailureCount   int
	AIEngineCircuitOpenTimeout    time.Duration
	AIEngineCircuitHalfOpenMaxReq int
	NewsFetchTimeout              time.Duration
	NewsUserAgent                 string
	NewsCacheTTL                  time.Duration
	StatsCacheTTL                 time.Duration
	RedisURL                      string
	CacheEnabled                  bool
	CacheTTL                      time.Duration
	CORSAllowedOrigins            []string
	ReadTimeout                   time.Duration
	WriteTimeout                  time.Duration
	PprofEnabled                  bool
	PprofAddr                     string
	UptraceEnabled                bool
	UptraceDSN                    string
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeBasicAuthUser        string
	PyroscopeBasicAuthPassword    string
	PyroscopeUploadRate           time.Duration
	LogLevel                      logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	httpAddr := strings.TrimSpace(getEnv("HTTP_ADDR", ""))
	if httpAddr == "" {
		port, err := getEnvAsInt("PORT", 5001)
		if err != nil {
			return Config{}, fmt.Errorf("parse PORT: %w", err)
		}
		if port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("PORT must be between 1 and 65535")
		}
		httpAddr = ":" + strconv.Itoa(port)
	}

	dbURL := strings.TrimSpace(getEnv("DATABASE_URL", ""))
	if dbURL == "" && appEnv == EnvProd {
		return Config{}, fmt.Errorf("DATABASE_URL is required when APP_ENV=%s", EnvProd)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	jwtSecret := strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if jwtSecret == "" {
		if appEnv != EnvDev {
			return Config{}, fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", appEnv)
		}
		jwtSecret = devJWTSecret
	}
	jwtTTL, err := time.ParseDuration(getEnv("JWT_TTL", "168h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JWT_TTL: %w", err)
	}
	if jwtTTL <= 0 {
		return Config{}, fmt.Errorf("JWT_TTL must be > 0")
	}

	aiEngineTimeout, err := time.ParseDuration(getEnv("AI_ENGINE_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AI_ENGINE_TIMEOUT: %w", err)
	}
	if aiEngineTimeout <= 0 {
		return Config{}, fmt.Errorf("AI_ENGINE_TIMEOUT must be > 0")
	}
	aiEngineCircuitEnabled, err := strconv.ParseBool(getEnv("AI_ENGINE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AI_ENGINE_CIRCUIT_ENABLED: %w", err)
	}
	aiEngineCircuitFailureCount, err := getEnvAsInt("AI_ENGINE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse AI_ENGINE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if aiEngineCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("AI_ENGINE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	aiEngineCircuitOpenTimeout, err := time.ParseDuration(getEnv("AI_ENGINE_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AI_ENGINE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if aiEngineCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("AI_ENGINE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	aiEngineCircuitHalfOpenMaxReq, err := getEnvAsInt("AI_ENGINE_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse AI_ENGINE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if aiEngineCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("AI_ENGINE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	newsFetchTimeout, err := time.ParseDuration(getEnv("NEWS_FETCH_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NEWS_FETCH_TIMEOUT: %w", err)
	}
	if newsFetchTimeout <= 0 {
		return Config{}, fmt.Errorf("NEWS_FETCH_TIMEOUT must be > 0")
	}
	newsCacheTTL, err := time.ParseDuration(getEnv("NEWS_CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NEWS_CACHE_TTL: %w", err)
	}
	if newsCacheTTL < 0 {
		return Config{}, fmt.Errorf("NEWS_CACHE_TTL must be >= 0")
	}

	statsCacheTTL, err := time.ParseDuration(getEnv("STATS_CACHE_TTL", "6h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_CACHE_TTL: %w", err)
	}
	if statsCacheTTL <= 0 {
		return Config{}, fmt.Errorf("STATS_CACHE_TTL must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
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
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("SERVICE_NAME", "football-hub"),
		ServiceVersion:                getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:                      httpAddr,
		DBURL:                         dbURL,
		DBDisablePreparedBinary:       dbDisablePreparedBinary,
		JWTSecret:                     jwtSecret,
		JWTTTL:                        jwtTTL,
		AIEngineURL:                   strings.TrimRight(strings.TrimSpace(getEnv("AI_ENGINE_URL", "http://localhost:8000")), "/"),
		AIEngineTimeout:               aiEngineTimeout,
		AIEngineCircuitEnabled:        aiEngineCircuitEnabled,
		AIEngineCircuitFailureCount:   aiEngineCircuitFailureCount,
		AIEngineCircuitOpenTimeout:    aiEngineCircuitOpenTimeout,
		AIEngineCircuitHalfOpenMaxReq: aiEngineCircuitHalfOpenMaxReq,
		NewsFetchTimeout:              newsFetchTimeout,
		NewsUserAgent:                 strings.TrimSpace(getEnv("NEWS_USER_AGENT", "")),
		NewsCacheTTL:                  newsCacheTTL,
		StatsCacheTTL:                 statsCacheTTL,
		RedisURL:                      strings.TrimSpace(getEnv("REDIS_URL", "")),
		CacheEnabled:                  cacheEnabled,
		CacheTTL:                      cacheTTL,
		CORSAllowedOrigins:            splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                   readTimeout,
		WriteTimeout:                  writeTimeout,
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
		LogLevel:                      parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.AIEngineURL == "" {
		return Config{}, fmt.Errorf("AI_ENGINE_URL cannot be empty")
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
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
