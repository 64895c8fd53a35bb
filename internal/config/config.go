package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port           int
	Env            string
	RequestTimeout time.Duration

	// CORS
	AllowedOrigins []string

	// Database URLs. All optional: an empty URL disables that backend.
	PostgresURL   string
	ClickHouseURL string
	RedisURL      string

	// Data
	DataDir       string
	ParamsFile    string
	StaticDir     string
	NamesCacheTTL time.Duration
	MainDrawOnly  bool

	// Worker pool
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration

	// Auth
	IngestToken string
}

// Load loads configuration from environment variables.
// Invalid values fall back to their defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvInt("PORT", 8000),
		Env:            getEnv("ENV", "development"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),

		PostgresURL:   os.Getenv("POSTGRES_URL"),
		ClickHouseURL: os.Getenv("CLICKHOUSE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),

		DataDir:       getEnv("DATA_DIR", "data"),
		ParamsFile:    getEnv("PARAMS_FILE", "models/elo_best.txt"),
		StaticDir:     getEnv("STATIC_DIR", "frontend"),
		NamesCacheTTL: getEnvDuration("NAMES_CACHE_TTL", time.Hour),
		MainDrawOnly:  getEnvBool("MAIN_DRAW_ONLY", true),

		WorkerCount:   getEnvInt("WORKER_COUNT", 1),
		QueueSize:     getEnvInt("QUEUE_SIZE", 10000),
		BatchSize:     getEnvInt("BATCH_SIZE", 500),
		FlushInterval: getEnvDuration("FLUSH_INTERVAL", 1*time.Second),

		IngestToken: os.Getenv("INGEST_TOKEN"),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "*")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// IsProduction reports whether ENV selects production logging.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
