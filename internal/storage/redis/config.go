package redis

import (
	"errors"
	"time"
)

// Config holds Redis connection and expiry settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	PoolSize     int
	MinIdleConns int

	// GameTTL is how long a game lives after its last move. Games are
	// never archived, so it must be positive.
	GameTTL time.Duration
}

// DefaultConfig returns a local Redis with a one-day game TTL
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		GameTTL:      24 * time.Hour,
	}
}

// Validate rejects settings that would keep games forever or leave the
// pool empty
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("redis url is required")
	}
	if c.GameTTL <= 0 {
		return errors.New("game ttl must be positive")
	}
	if c.PoolSize <= 0 {
		return errors.New("pool size must be positive")
	}
	return nil
}
