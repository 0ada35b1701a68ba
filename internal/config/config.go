package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr string

	// Data store (Supabase / PostgREST REST interface)
	SupabaseURL string
	SupabaseKey string

	// Security
	BcryptCost int

	// Transport limits
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	BodyLimitBytes   int64
	RateLimitPerMin  int
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// The store credentials are required outside dev. In dev the service
	// falls back to the in-memory store so it can run standalone.
	cfg.SupabaseURL = os.Getenv("SUPABASE_URL")
	cfg.SupabaseKey = os.Getenv("SUPABASE_KEY")
	if cfg.Env != "dev" {
		if cfg.SupabaseURL == "" {
			return nil, fmt.Errorf("missing required env var: SUPABASE_URL")
		}
		if cfg.SupabaseKey == "" {
			return nil, fmt.Errorf("missing required env var: SUPABASE_KEY")
		}
	}

	cost, err := getInt("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}
	if cost < 4 || cost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST out of range: %d", cost)
	}
	cfg.BcryptCost = cost

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	limit, err := getInt("BODY_LIMIT_BYTES", 1<<20)
	if err != nil {
		return nil, err
	}
	cfg.BodyLimitBytes = int64(limit)

	rpm, err := getInt("RATE_LIMIT_PER_MIN", 60)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitPerMin = rpm

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}
