package config // package config loads application configuration from environment variables

import (
	"log"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The service is deliberately runnable with
// no environment at all: every value has a default so a bare `go run`
// serves against the public provider with the tier-2 cache only.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	JWTSecret       string        // secret used to sign access tokens
	AccessTTLMin    int           // access token time-to-live in minutes
	CacheTTL        time.Duration // freshness window of the ticket cache
	UpstreamBaseURL string        // base URL of the third-party ticketing provider
	UpstreamTimeout time.Duration // per-request timeout for upstream calls
}

// defaultJWTSecret is the fallback signing secret. It exists so the
// service starts without configuration, but it is public knowledge:
// any deployment beyond a laptop must set JWT_SECRET.
const defaultJWTSecret = "tajna123"

// Load reads configuration values from environment variables and returns
// a Config. Missing variables fall back to defaults; a warning is logged
// when the signing secret is the insecure built-in one.
func Load() Config {
	cfg := Config{
		Env:             envStr("APP_ENV", "dev"),
		Port:            envStr("APP_PORT", "8000"),
		JWTSecret:       envStr("JWT_SECRET", defaultJWTSecret),
		AccessTTLMin:    envInt("ACCESS_TOKEN_TTL_MIN", 30),
		CacheTTL:        envDur("CACHE_TTL", 60*time.Second),
		UpstreamBaseURL: envStr("UPSTREAM_BASE_URL", "https://dummyjson.com"),
		UpstreamTimeout: envDur("UPSTREAM_TIMEOUT", 5*time.Second),
	}
	if cfg.JWTSecret == defaultJWTSecret {
		log.Printf("config: JWT_SECRET not set, using insecure default")
	}
	return cfg
}
