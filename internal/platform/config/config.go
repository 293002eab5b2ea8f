package config

import (
	"os"
	"strconv"
	"time"
)

// The permanent CVR distribution index.
const defaultUpstreamURL = "http://distribution.virk.dk/cvr-permanent/virksomhed/_search"

// Config captures everything the server reads from the environment.
type Config struct {
	Addr string

	// Upstream ERST search index.
	UpstreamURL     string
	UpstreamUser    string
	UpstreamPass    string
	UpstreamTimeout time.Duration

	// RecordTTL is the ttl value emitted inside every resolved record,
	// advising consumers how long they may reuse it.
	RecordTTL int

	// RedisURL selects the Redis cache store when set; empty means the
	// in-process cache.
	RedisURL string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:            getenv("DK_PROVIDER_ADDR", ":8080"),
		UpstreamURL:     getenv("ERST_CVR_URL", defaultUpstreamURL),
		UpstreamUser:    os.Getenv("ERST_CVR_USER"),
		UpstreamPass:    os.Getenv("ERST_CVR_PASS"),
		UpstreamTimeout: 5 * time.Second,
		RecordTTL:       3600,
		RedisURL:        os.Getenv("REDIS_URL"),
	}

	if v := os.Getenv("ERST_CVR_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.UpstreamTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("DK_TTL"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil && ttl > 0 {
			cfg.RecordTTL = ttl
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
