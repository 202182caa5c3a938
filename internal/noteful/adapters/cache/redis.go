// Package cache содержит реализации кэша сущностей.
package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"noteful/internal/noteful/config"
	"noteful/internal/noteful/ports/cache"
	"noteful/pkg/db/redis"
	"noteful/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet    = "get"
	LogMethodSet    = "set"
	LogMethodSetNX  = "setnx"
	LogMethodDelete = "delete"

	ErrorFailedToGet    = "failed to get value from redis"
	ErrorFailedToSet    = "failed to set value in redis"
	ErrorFailedToDelete = "failed to delete value from redis"
	ErrorFailedToClose  = "failed to close redis connection"
)

// KeyPrefix отделяет ключи сервиса от прочих данных в Redis.
const KeyPrefix = "noteful:"

// RedisCache реализует интерфейс Cache с использованием Redis.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedisCache создает новый экземпляр RedisCache и проверяет соединение.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (cache.Cache, error) {
	client, err := redis.NewClient(ctx, cfg.ClientConfig())
	if err != nil {
		return nil, err
	}

	return &RedisCache{
		client:     client,
		defaultTTL: cfg.TTL,
	}, nil
}

// Get получает значение по ключу.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, found, err := c.client.Get(ctx, KeyPrefix+key)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToGet,
			zap.String("method", LogMethodGet), zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}
	return value, found, nil
}

// Set устанавливает значение. Нулевой ttl заменяется значением из конфигурации.
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, KeyPrefix+key, value, ttl); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToSet,
			zap.String("method", LogMethodSet), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}
	return nil
}

// SetNX устанавливает значение, если ключа еще нет. Нулевой ttl заменяется
// значением из конфигурации.
func (c *RedisCache) SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	stored, err := c.client.SetNX(ctx, KeyPrefix+key, value, ttl)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToSet,
			zap.String("method", LogMethodSetNX), zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}
	return stored, nil
}

// Delete удаляет значения по ключам.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = KeyPrefix + key
	}

	if err := c.client.Delete(ctx, prefixed...); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToDelete,
			zap.String("method", LogMethodDelete), zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
