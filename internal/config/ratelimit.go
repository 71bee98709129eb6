package config

import (
	"os"
	"strconv"
	"time"
)

// RateLimitConfig describes one token bucket scope. The boundary enforces
// two scopes: a general per-client budget across the API and a stricter
// one for the login endpoint.
type RateLimitConfig struct {
	Enabled        bool
	Scope          string // key namespace segment, e.g. "general" or "login"
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

// LoadRateLimitConfig reads the general request budget (default 10
// requests per second per client address).
func LoadRateLimitConfig() RateLimitConfig {
	return loadScope("general", "RATE_LIMIT", 10)
}

// LoadLoginRateLimitConfig reads the login budget (default 5 requests per
// second per client address).
func LoadLoginRateLimitConfig() RateLimitConfig {
	return loadScope("login", "LOGIN_RATE_LIMIT", 5)
}

func loadScope(scope, prefix string, perSecond int) RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        envBool(prefix+"_ENABLED", true),
		Scope:          scope,
		Capacity:       envInt(prefix+"_CAPACITY", perSecond),
		RefillTokens:   envInt(prefix+"_REFILL_TOKENS", perSecond),
		RefillInterval: envDur(prefix+"_REFILL_INTERVAL", time.Second),
		TTL:            envDur(prefix+"_TTL", 10*time.Minute),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	// Keep bucket state alive well past the refill horizon.
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
