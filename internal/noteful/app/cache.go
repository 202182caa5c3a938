package app

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"noteful/internal/noteful/ports/cache"
	"noteful/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogCacheReadFailed  = "entity cache read failed"
	LogCacheWriteFailed = "entity cache write failed"
	LogCacheDropFailed  = "entity cache invalidation failed"
)

// CacheTombstone - значение, которым помечается инвалидированный ключ.
// Пока метка жива, чтение идет мимо кэша и не может заполнить ключ
// данными, прочитанными до инвалидации.
const CacheTombstone = "-"

// tombstoneTTL ограничивает время жизни метки инвалидации.
const tombstoneTTL = 10 * time.Second

// entityCache - сквозной кэш отдельных сущностей. Ошибки кэша только
// логируются и не влияют на результат запроса.
type entityCache struct {
	cache cache.Cache
	ttl   time.Duration
}

func newEntityCache(c cache.Cache, ttl time.Duration) *entityCache {
	return &entityCache{cache: c, ttl: ttl}
}

func cacheKey(kind, id string) string {
	return kind + ":" + id
}

// loadCached возвращает сущность из кэша или nil.
func loadCached[T any](ctx context.Context, ec *entityCache, kind, id string) *T {
	key := cacheKey(kind, id)

	raw, found, err := ec.cache.Get(ctx, key)
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheReadFailed, zap.String("key", key), zap.Error(err))
		return nil
	}
	if !found || raw == CacheTombstone {
		return nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheReadFailed, zap.String("key", key), zap.Error(err))
		return nil
	}
	return &v
}

// fill кладет прочитанную из хранилища сущность в пустой ключ. Если ключ
// занят, в том числе меткой инвалидации, значение не записывается.
func (ec *entityCache) fill(ctx context.Context, kind, id string, v any) {
	key := cacheKey(kind, id)

	raw, err := json.Marshal(v)
	if err == nil {
		_, err = ec.cache.SetNX(ctx, key, string(raw), ec.ttl)
	}
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheWriteFailed, zap.String("key", key), zap.Error(err))
	}
}

// drop заменяет значения ключей меткой инвалидации.
func (ec *entityCache) drop(ctx context.Context, kind string, ids ...string) {
	for _, id := range ids {
		key := cacheKey(kind, id)
		if err := ec.cache.Set(ctx, key, CacheTombstone, tombstoneTTL); err != nil {
			logger.Log(ctx).Warn(ctx, LogCacheDropFailed, zap.String("key", key), zap.Error(err))
		}
	}
}
