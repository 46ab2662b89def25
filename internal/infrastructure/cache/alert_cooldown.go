package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	appinv "github.com/agrostock/backend/internal/application/inventory"
	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisAlertCooldown implements the alert cooldown using Redis SETNX with a
// TTL, so the suppression window is shared across instances.
type RedisAlertCooldown struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisAlertCooldown creates a new Redis-backed alert cooldown
func NewRedisAlertCooldown(cfg RedisConfig) (*RedisAlertCooldown, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisAlertCooldown{
		client:    client,
		keyPrefix: "alert:cooldown:",
	}, nil
}

// NewRedisAlertCooldownWithClient creates a cooldown with an existing Redis client
func NewRedisAlertCooldownWithClient(client *redis.Client, keyPrefix string) *RedisAlertCooldown {
	if keyPrefix == "" {
		keyPrefix = "alert:cooldown:"
	}
	return &RedisAlertCooldown{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// TryAcquire marks the (product, alert type) pair as fired for the window.
// Returns true if no alert of this type fired inside the window.
// Uses SETNX so concurrent callers cannot both acquire the slot.
func (c *RedisAlertCooldown) TryAcquire(ctx context.Context, tenantID, productID uuid.UUID, alertType inventory.AlertType, window time.Duration) (bool, error) {
	key := c.key(tenantID, productID, alertType)

	acquired, err := c.client.SetNX(ctx, key, "1", window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire alert cooldown: %w", err)
	}
	return acquired, nil
}

// Release frees the slot so the next alert of this type fires immediately.
// Used when the operation that acquired the slot rolled back.
func (c *RedisAlertCooldown) Release(ctx context.Context, tenantID, productID uuid.UUID, alertType inventory.AlertType) error {
	key := c.key(tenantID, productID, alertType)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release alert cooldown: %w", err)
	}
	return nil
}

func (c *RedisAlertCooldown) key(tenantID, productID uuid.UUID, alertType inventory.AlertType) string {
	return fmt.Sprintf("%s%s:%s:%s", c.keyPrefix, tenantID, productID, alertType)
}

// Close closes the Redis client
func (c *RedisAlertCooldown) Close() error {
	return c.client.Close()
}

// cooldownEntry records when a slot expires
type cooldownEntry struct {
	expiresAt time.Time
}

// InMemoryAlertCooldown implements the alert cooldown with an in-memory map.
// Suitable for single-instance deployments and testing.
type InMemoryAlertCooldown struct {
	mu      sync.Mutex
	entries map[string]cooldownEntry
}

// NewInMemoryAlertCooldown creates a new in-memory alert cooldown
func NewInMemoryAlertCooldown() *InMemoryAlertCooldown {
	return &InMemoryAlertCooldown{
		entries: make(map[string]cooldownEntry),
	}
}

// TryAcquire marks the (product, alert type) pair as fired for the window.
// Returns true if no alert of this type fired inside the window.
func (c *InMemoryAlertCooldown) TryAcquire(_ context.Context, tenantID, productID uuid.UUID, alertType inventory.AlertType, window time.Duration) (bool, error) {
	key := fmt.Sprintf("%s:%s:%s", tenantID, productID, alertType)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists := c.entries[key]; exists && now.Before(e.expiresAt) {
		return false, nil
	}

	c.entries[key] = cooldownEntry{expiresAt: now.Add(window)}

	// Drop stale slots opportunistically to bound the map
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	return true, nil
}

// Release frees the slot so the next alert of this type fires immediately
func (c *InMemoryAlertCooldown) Release(_ context.Context, tenantID, productID uuid.UUID, alertType inventory.AlertType) error {
	key := fmt.Sprintf("%s:%s:%s", tenantID, productID, alertType)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Ensure both implementations satisfy the application port
var _ appinv.AlertCooldown = (*RedisAlertCooldown)(nil)
var _ appinv.AlertCooldown = (*InMemoryAlertCooldown)(nil)
