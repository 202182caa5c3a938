package cache

import (
	"context"
	"time"

	"noteful/internal/noteful/ports/cache"
)

// Nop - кэш, который ничего не хранит. Используется, когда Redis выключен.
type Nop struct{}

// NewNop создает пустой кэш.
func NewNop() cache.Cache {
	return Nop{}
}

func (Nop) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (Nop) Set(context.Context, string, string, time.Duration) error { return nil }

func (Nop) SetNX(context.Context, string, string, time.Duration) (bool, error) { return false, nil }

func (Nop) Delete(context.Context, ...string) error { return nil }

func (Nop) Close() error { return nil }
