package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const appName = "personal-site"

// EnvPrefix prefixes every environment override, e.g. PERSONAL_SITE_SERVER_ADDR.
const EnvPrefix = "PERSONAL_SITE_"

// Config holds all personal-site configuration.
type Config struct {
	Server    ServerConfig    `toml:"server" envPrefix:"SERVER_"`
	RateLimit RateLimitConfig `toml:"rate_limit" envPrefix:"RATE_LIMIT_"`
	Cache     CacheConfig     `toml:"cache" envPrefix:"CACHE_"`
	History   HistoryConfig   `toml:"history" envPrefix:"HISTORY_"`
	Site      SiteConfig      `toml:"site" envPrefix:"SITE_"`
	Display   DisplayConfig   `toml:"display" envPrefix:"DISPLAY_"`
	Log       LogConfig       `toml:"log" envPrefix:"LOG_"`
}

type ServerConfig struct {
	Addr            string   `toml:"addr" env:"ADDR"`
	ReadTimeout     Duration `toml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    Duration `toml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     Duration `toml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// RateLimitConfig sets the per-client request budget of the HTTP API.
type RateLimitConfig struct {
	Capacity int      `toml:"capacity" env:"CAPACITY"`
	Window   Duration `toml:"window" env:"WINDOW"`
}

// CacheConfig selects Redis when RedisAddr is set, memory otherwise.
type CacheConfig struct {
	RedisAddr     string   `toml:"redis_addr,omitempty" env:"REDIS_ADDR"`
	RedisPassword string   `toml:"redis_password,omitempty" env:"REDIS_PASSWORD"`
	RedisDB       int      `toml:"redis_db" env:"REDIS_DB"`
	TTL           Duration `toml:"ttl" env:"TTL"`
}

// HistoryConfig points at the SQLite history file. An empty Path keeps
// history in memory.
type HistoryConfig struct {
	Path string `toml:"path,omitempty" env:"PATH"`
}

// SiteConfig is the REST backend holding tasks, videos, quotes and blogs.
type SiteConfig struct {
	BaseURL string   `toml:"base_url" env:"BASE_URL"`
	Timeout Duration `toml:"timeout" env:"TIMEOUT"`
}

type DisplayConfig struct {
	Locale string `toml:"locale" env:"LOCALE"`
}

type LogConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
}

// Duration reads and writes as a Go duration string ("15s", "24h").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		RateLimit: RateLimitConfig{
			Capacity: 5,
			Window:   Duration{time.Minute},
		},
		Cache: CacheConfig{
			TTL: Duration{24 * time.Hour},
		},
		History: HistoryConfig{
			Path: filepath.Join(DataDir(), "history.db"),
		},
		Site: SiteConfig{
			BaseURL: "http://localhost:3000",
			Timeout: Duration{10 * time.Second},
		},
		Display: DisplayConfig{
			Locale: "en-IN",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path (Path() when empty), returning defaults
// if it doesn't exist, then applies environment overrides.
func Load(path string) (Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overlays PERSONAL_SITE_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.RateLimit.Capacity < 1 {
		return fmt.Errorf("rate_limit.capacity must be at least 1, got %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Window.Duration <= 0 {
		return errors.New("rate_limit.window must be positive")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New("cache.ttl cannot be negative")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Save writes the config to path (Path() when empty).
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	if path == "" {
		path = Path()
	}
	_, err := os.Stat(path)
	return err == nil
}
