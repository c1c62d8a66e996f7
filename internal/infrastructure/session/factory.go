package session

import (
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/infrastructure/config"
)

// NewStore creates a session store based on configuration. When Redis
// is enabled but unreachable, it falls back to the in-memory store so
// a missing cache never blocks startup in development.
func NewStore(cfg config.RedisConfig, log *zap.Logger) Store {
	if !cfg.Enabled {
		log.Info("Using in-memory session store")
		return NewMemoryStore()
	}

	store, err := NewRedisStore(cfg)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory session store",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewMemoryStore()
	}

	log.Info("Using Redis session store", zap.String("addr", cfg.Addr()))
	return store
}
