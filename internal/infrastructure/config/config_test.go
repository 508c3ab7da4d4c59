package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{"JWT_SECRET": "test-secret"}),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr = %q, want localhost:6379", cfg.Redis.Addr)
	}
	if cfg.Redis.Password != "" {
		t.Errorf("redis password should default to empty, got %q", cfg.Redis.Password)
	}
	if cfg.Redis.DB != 0 {
		t.Errorf("redis db = %d, want 0", cfg.Redis.DB)
	}
}

func TestLoadRedisCredentials(t *testing.T) {
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target: &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{
			"JWT_SECRET": "test-secret",
			"REDIS_ADDR":     "cache.internal:6380",
			"REDIS_PASSWORD": "s3cret",
			"REDIS_DB":       "2",
		}),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if cfg.Redis.Addr != "cache.internal:6380" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
	if cfg.Redis.Password != "s3cret" {
		t.Errorf("redis password = %q", cfg.Redis.Password)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("redis db = %d", cfg.Redis.DB)
	}
}
