package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Cache backends understood by ServerConfig.Cache.Backend.
const (
	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// ServerConfig represents the complete HTTP service configuration
type ServerConfig struct {
	HTTP      HTTPConfig      `json:"http" yaml:"http" toml:"http"`
	RateLimit RateLimitConfig `json:"rate_limit" yaml:"rate_limit" toml:"rate_limit"`
	Cache     CacheConfig     `json:"cache" yaml:"cache" toml:"cache"`
	Log       LogConfig       `json:"log" yaml:"log" toml:"log"`
}

// HTTPConfig contains listener parameters. Durations use time.ParseDuration syntax.
type HTTPConfig struct {
	Addr            string `json:"addr" yaml:"addr" toml:"addr"`
	ReadTimeout     string `json:"read_timeout" yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout    string `json:"write_timeout" yaml:"write_timeout" toml:"write_timeout"`
	IdleTimeout     string `json:"idle_timeout" yaml:"idle_timeout" toml:"idle_timeout"`
	ShutdownTimeout string `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// RateLimitConfig configures the per-client token bucket. Capacity 0 disables it.
type RateLimitConfig struct {
	Capacity int    `json:"capacity" yaml:"capacity" toml:"capacity"`
	Window   string `json:"window" yaml:"window" toml:"window"`
}

// CacheConfig selects where computed simulations are memoised.
type CacheConfig struct {
	Backend       string `json:"backend" yaml:"backend" toml:"backend"`
	TTL           string `json:"ttl" yaml:"ttl" toml:"ttl"`
	RedisAddr     string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty" toml:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty" yaml:"redis_password,omitempty" toml:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty" yaml:"redis_db,omitempty" toml:"redis_db,omitempty"`
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format" toml:"format"` // text or json
}

// DefaultServerConfig returns the configuration used when no file is given.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			IdleTimeout:     "60s",
			ShutdownTimeout: "10s",
		},
		RateLimit: RateLimitConfig{
			Capacity: 60,
			Window:   "1m",
		},
		Cache: CacheConfig{
			Backend: CacheBackendMemory,
			TTL:     "10m",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadServerConfig reads a server configuration (YAML, TOML or JSON by
// extension) on top of DefaultServerConfig and validates it.
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultServerConfig()
	if err := decodeByExtension(path, data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration in the format implied by the extension.
func (c *ServerConfig) SaveToFile(path string) error {
	data, err := encodeByExtension(path, c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for consistency
func (c *ServerConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	for _, field := range []struct{ name, value string }{
		{"http.read_timeout", c.HTTP.ReadTimeout},
		{"http.write_timeout", c.HTTP.WriteTimeout},
		{"http.idle_timeout", c.HTTP.IdleTimeout},
		{"http.shutdown_timeout", c.HTTP.ShutdownTimeout},
		{"rate_limit.window", c.RateLimit.Window},
		{"cache.ttl", c.Cache.TTL},
	} {
		if _, err := parsePositiveDuration(field.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field.name, err))
		}
	}

	if c.RateLimit.Capacity < 0 {
		errs = append(errs, errors.New("rate_limit.capacity cannot be negative"))
	}

	switch c.Cache.Backend {
	case CacheBackendNone, CacheBackendMemory:
	case CacheBackendRedis:
		if c.Cache.RedisAddr == "" {
			errs = append(errs, errors.New("cache.redis_addr is required for the redis backend"))
		}
		if c.Cache.RedisDB < 0 {
			errs = append(errs, errors.New("cache.redis_db cannot be negative"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend must be 'none', 'memory' or 'redis', got %q", c.Cache.Backend))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Durations returns the parsed HTTP timeouts, rate-limit window and cache TTL.
// Call Validate first; unparsable values come back as zero.
func (c *ServerConfig) Durations() Durations {
	d := func(s string) time.Duration {
		v, _ := parsePositiveDuration(s)
		return v
	}
	return Durations{
		Read:     d(c.HTTP.ReadTimeout),
		Write:    d(c.HTTP.WriteTimeout),
		Idle:     d(c.HTTP.IdleTimeout),
		Shutdown: d(c.HTTP.ShutdownTimeout),
		Window:   d(c.RateLimit.Window),
		CacheTTL: d(c.Cache.TTL),
	}
}

// Durations holds the parsed duration fields of a ServerConfig.
type Durations struct {
	Read, Write, Idle, Shutdown time.Duration
	Window                      time.Duration
	CacheTTL                    time.Duration
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", s)
	}
	return d, nil
}

// SlogLevel maps Level onto slog; unknown values mean info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
