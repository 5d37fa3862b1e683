package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" || cfg.RateLimit.Capacity != 5 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.Cache.TTL.Duration != 24*time.Hour {
		t.Errorf("expected 24h ttl, got %v", cfg.Cache.TTL)
	}
}

func TestLoad_File(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
addr = ":9090"
read_timeout = "5s"

[rate_limit]
capacity = 20
window = "30s"

[display]
locale = "en-US"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":9090" || cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.RateLimit.Capacity != 20 || cfg.RateLimit.Window.Duration != 30*time.Second {
		t.Errorf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
	if cfg.Display.Locale != "en-US" {
		t.Errorf("expected en-US, got %q", cfg.Display.Locale)
	}
	if cfg.Server.WriteTimeout.Duration != 15*time.Second {
		t.Errorf("unset keys should keep defaults, got %v", cfg.Server.WriteTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[cache]\nttl = \"1h\"\n"), 0o600)

	t.Setenv("PERSONAL_SITE_CACHE_TTL", "90m")
	t.Setenv("PERSONAL_SITE_CACHE_REDIS_ADDR", "localhost:6379")
	t.Setenv("PERSONAL_SITE_RATE_LIMIT_CAPACITY", "50")
	t.Setenv("PERSONAL_SITE_LOG_FORMAT", "json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("expected env ttl, got %v", cfg.Cache.TTL)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("expected redis addr from env, got %q", cfg.Cache.RedisAddr)
	}
	if cfg.RateLimit.Capacity != 50 || cfg.Log.Format != "json" {
		t.Errorf("unexpected overrides: %+v %+v", cfg.RateLimit, cfg.Log)
	}
}

func TestLoad_Invalid(t *testing.T) {

	dir := t.TempDir()
	cases := map[string]string{
		"bad toml":     "[server\naddr = 1",
		"bad duration": "[rate_limit]\nwindow = \"soon\"\n",
		"zero window":  "[rate_limit]\nwindow = \"0s\"\n",
		"bad format":   "[log]\nformat = \"xml\"\n",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			os.WriteFile(path, []byte(data), 0o600)
			if _, err := Load(path); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Site.BaseURL = "https://api.example.com"
	cfg.Cache.TTL = Duration{2 * time.Hour}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Exists(path) {
		t.Fatalf("expected config file to exist")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded != cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}
