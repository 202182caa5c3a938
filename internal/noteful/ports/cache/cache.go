// Package cache определяет интерфейс кэша сущностей.
package cache

import (
	"context"
	"time"
)

// Cache - строковое хранилище ключ-значение с TTL.
type Cache interface {
	// Get возвращает found=false, если ключа нет.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// SetNX записывает значение, только если ключа нет, и сообщает, было ли оно записано.
	SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
