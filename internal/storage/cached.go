package storage

import (
	"context"
	"log/slog"

	"github.com/nikaa770/noire-backend/internal/lib/sl"
)

// Invalidator — кэш, умеющий сбрасывать ключ. Реализуется redis-кэшем.
type Invalidator interface {
	Adapter
	Invalidate(ctx context.Context, key string) error
}

// Cached композиция: сквозное чтение через кэш поверх основного
// хранилища. Запись идёт в основное хранилище, затем кэш сбрасывается —
// следующая выборка перечитает свежее значение. Ошибки кэша не фатальны,
// основной адаптер всегда остаётся источником истины.
type Cached struct {
	primary Adapter
	cache   Invalidator
	log     *slog.Logger
}

// NewCached оборачивает основной адаптер кэшем.
func NewCached(primary Adapter, cache Invalidator, log *slog.Logger) *Cached {
	return &Cached{primary: primary, cache: cache, log: log}
}

// Get сначала спрашивает кэш, при промахе читает основное хранилище
// и подогревает кэш найденным значением.
func (c *Cached) Get(ctx context.Context, key string, result any) (bool, error) {
	found, err := c.cache.Get(ctx, key, result)
	if err != nil {
		c.log.Warn("cache read failed, falling back to storage", slog.String("key", key), sl.Err(err))
	}
	if found && err == nil {
		return true, nil
	}

	found, err = c.primary.Get(ctx, key, result)
	if err != nil || !found {
		return found, err
	}
	if err := c.cache.Set(ctx, key, result); err != nil {
		c.log.Warn("failed to warm cache", slog.String("key", key), sl.Err(err))
	}
	return true, nil
}

// Set пишет в основное хранилище и сбрасывает ключ в кэше.
func (c *Cached) Set(ctx context.Context, key string, value any) error {
	if err := c.primary.Set(ctx, key, value); err != nil {
		return err
	}
	if err := c.cache.Invalidate(ctx, key); err != nil {
		c.log.Warn("failed to invalidate cache", slog.String("key", key), sl.Err(err))
	}
	return nil
}
