package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "ALLOWED_ORIGINS", "POSTGRES_URL", "CLICKHOUSE_URL", "REDIS_URL",
		"DATA_DIR", "PARAMS_FILE", "NAMES_CACHE_TTL", "MAIN_DRAW_ONLY", "WORKER_COUNT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
	if cfg.PostgresURL != "" || cfg.ClickHouseURL != "" || cfg.RedisURL != "" {
		t.Error("database URLs should be optional and empty by default")
	}
	if cfg.DataDir != "data" || cfg.ParamsFile != "models/elo_best.txt" {
		t.Errorf("DataDir/ParamsFile = %q/%q", cfg.DataDir, cfg.ParamsFile)
	}
	if cfg.NamesCacheTTL != time.Hour {
		t.Errorf("NamesCacheTTL = %v, want 1h", cfg.NamesCacheTTL)
	}
	if !cfg.MainDrawOnly {
		t.Error("MainDrawOnly should default to true")
	}
	if cfg.WorkerCount != 1 {
		t.Errorf("WorkerCount = %d, want 1", cfg.WorkerCount)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "Production")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("MAIN_DRAW_ONLY", "false")
	t.Setenv("NAMES_CACHE_TTL", "5m")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.MainDrawOnly {
		t.Error("MainDrawOnly = true, want false")
	}
	if cfg.NamesCacheTTL != 5*time.Minute {
		t.Errorf("NamesCacheTTL = %v, want 5m", cfg.NamesCacheTTL)
	}
	if cfg.RedisURL == "" {
		t.Error("RedisURL not read")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("FLUSH_INTERVAL", "soon")
	t.Setenv("MAIN_DRAW_ONLY", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want fallback 8000", cfg.Port)
	}
	if cfg.FlushInterval != time.Second {
		t.Errorf("FlushInterval = %v, want 1s", cfg.FlushInterval)
	}
	if !cfg.MainDrawOnly {
		t.Error("MainDrawOnly should fall back to true")
	}
}
