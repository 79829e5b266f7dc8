package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  port: "9090"
redis:
  addr: localhost:6379
  ttl: 5m
postgres:
  url: postgres://quiz@localhost/quizdb
quiz:
  default_set: go-basics
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Redis.Addr != "localhost:6379" || cfg.Quiz.DefaultSet != "go-basics" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if d := TTLDuration(cfg.Redis.TTL, time.Minute); d != 5*time.Minute {
		t.Fatalf("expected 5m ttl, got %v", d)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Postgres.URL != "" {
		t.Fatalf("expected zero config")
	}
}

func TestTTLDurationFallback(t *testing.T) {
	if d := TTLDuration("", time.Second); d != time.Second {
		t.Fatalf("empty should fall back, got %v", d)
	}
	if d := TTLDuration("soon", time.Second); d != time.Second {
		t.Fatalf("invalid should fall back, got %v", d)
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("QUIZGAME_TEST_PORT=7070\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("QUIZGAME_TEST_PORT") })

	if err := LoadEnv(path); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := os.Getenv("QUIZGAME_TEST_PORT"); got != "7070" {
		t.Fatalf("expected env from file, got %q", got)
	}
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}
