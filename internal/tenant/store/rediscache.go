package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"medgate/internal/tenant/models"
)

// Lookup is the read side of a tenant store.
type Lookup interface {
	GetByMnemonic(ctx context.Context, mnemonic string) (*models.Tenant, error)
}

// RedisCache is a read-through cache over a tenant store. Tenant config is
// read on every gateway operation but changes rarely, so a short TTL keeps
// the hot path off PostgreSQL without a separate invalidation channel.
type RedisCache struct {
	inner  Lookup
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache wraps a tenant store with a read-through Redis cache.
func NewRedisCache(inner Lookup, client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{inner: inner, client: client, ttl: ttl, logger: logger}
}

func cacheKey(mnemonic string) string {
	return "medgate:tenant:" + mnemonic
}

// GetByMnemonic serves from cache when possible. Cache errors degrade to the
// inner store; they never fail the lookup.
func (c *RedisCache) GetByMnemonic(ctx context.Context, mnemonic string) (*models.Tenant, error) {
	raw, err := c.client.Get(ctx, cacheKey(mnemonic)).Bytes()
	if err == nil {
		var t models.Tenant
		if unmarshalErr := json.Unmarshal(raw, &t); unmarshalErr == nil {
			return &t, nil
		}
		// Corrupt entry: fall through to the inner store and overwrite.
	} else if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "tenant cache read failed", "mnemonic", mnemonic, "error", err)
	}

	t, err := c.inner.GetByMnemonic(ctx, mnemonic)
	if err != nil {
		return nil, err
	}

	if encoded, marshalErr := json.Marshal(t); marshalErr == nil {
		if setErr := c.client.Set(ctx, cacheKey(mnemonic), encoded, c.ttl).Err(); setErr != nil {
			c.logger.WarnContext(ctx, "tenant cache write failed", "mnemonic", mnemonic, "error", setErr)
		}
	}
	return t, nil
}

// Invalidate drops a cached tenant, for use after configuration changes.
func (c *RedisCache) Invalidate(ctx context.Context, mnemonic string) error {
	if err := c.client.Del(ctx, cacheKey(mnemonic)).Err(); err != nil {
		return err
	}
	return nil
}

var _ Lookup = (*RedisCache)(nil)
