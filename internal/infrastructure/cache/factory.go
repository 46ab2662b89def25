package cache

import (
	appinv "github.com/agrostock/backend/internal/application/inventory"
	"github.com/agrostock/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewAlertCooldown creates the alert cooldown appropriate for the deployment.
// Falls back to the in-memory implementation when Redis is disabled or
// unreachable, so alerting keeps working on a single instance.
func NewAlertCooldown(cfg *config.Config, logger *zap.Logger) appinv.AlertCooldown {
	if !cfg.Redis.Enabled {
		logger.Info("using in-memory alert cooldown")
		return NewInMemoryAlertCooldown()
	}

	cooldown, err := NewRedisAlertCooldown(RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-memory alert cooldown", zap.Error(err))
		return NewInMemoryAlertCooldown()
	}

	logger.Info("using redis alert cooldown", zap.String("addr", cfg.Redis.Addr()))
	return cooldown
}
