package store

import (
	"siteforge/internal/types"

	"github.com/sirupsen/logrus"
)

// NewStore builds the cache store from configuration.
// A configured REDIS_DSN selects Redis; otherwise the process-local
// memory store is used. A failed Redis connection falls back to memory
// so a cache outage never prevents startup.
func NewStore(configManager types.ConfigManager) Store {
	dsn := configManager.GetRedisDSN()
	if dsn == "" {
		logrus.Info("Using in-memory cache store")
		return NewMemoryStore()
	}

	redisStore, err := NewRedisStore(dsn)
	if err != nil {
		logrus.WithError(err).Warn("Failed to connect to Redis, falling back to in-memory cache store")
		return NewMemoryStore()
	}
	logrus.Info("Using Redis cache store")
	return redisStore
}
