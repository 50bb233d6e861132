package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/rpckit/core/binding"
)

// Store is the subset of the go-redis client used by Finder.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Finder loads JSON encoded entities stored under prefix+id.
// With a fallback finder it acts as a read-through cache: misses are loaded
// from the fallback and written back with the configured TTL.
type Finder[T any] struct {
	store    Store
	prefix   string
	fallback binding.Finder[T]
	ttl      time.Duration
}

// FinderOption configures a Finder.
type FinderOption[T any] func(*Finder[T])

// WithFallback loads cache misses from next and caches them for ttl.
// A zero ttl stores entries without expiration.
func WithFallback[T any](next binding.Finder[T], ttl time.Duration) FinderOption[T] {
	return func(f *Finder[T]) {
		f.fallback = next
		f.ttl = ttl
	}
}

// NewFinder creates a finder reading keys of the form prefix+id.
func NewFinder[T any](store Store, prefix string, opts ...FinderOption[T]) *Finder[T] {
	f := &Finder[T]{store: store, prefix: prefix}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find returns the entity cached under id. redis.Nil is reported as
// binding.ErrModelNotFound unless a fallback finder is configured.
func (f *Finder[T]) Find(ctx context.Context, id any) (T, error) {
	var zero T
	key := f.key(id)

	data, err := f.store.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		if f.fallback == nil {
			return zero, fmt.Errorf("%w: %s", binding.ErrModelNotFound, key)
		}
		return f.load(ctx, key, id)
	case err != nil:
		return zero, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return entity, nil
}

func (f *Finder[T]) load(ctx context.Context, key string, id any) (T, error) {
	entity, err := f.fallback.Find(ctx, id)
	if err != nil || binding.IsEmpty(entity) {
		return entity, err
	}

	// Cache writes are best effort; the loaded entity is still returned.
	if data, err := json.Marshal(entity); err == nil {
		_ = f.store.Set(ctx, key, data, f.ttl).Err()
	}
	return entity, nil
}

func (f *Finder[T]) key(id any) string {
	return f.prefix + fmt.Sprint(id)
}
