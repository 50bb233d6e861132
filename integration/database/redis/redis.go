package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/rpckit/core/logger"
)

// Connect creates a Redis client and waits until it answers a ping.
// Attempts back off exponentially from cfg.RetryInterval and are bounded by
// cfg.ConnectTimeout when it is set. Each failed attempt is logged at Warn level.
func Connect(ctx context.Context, cfg Config, opts ...ConnectOption) (*redis.Client, error) {
	o := newConnectOptions(opts)

	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	clientOpts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseRedisConnString, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(clientOpts)
	attempts := max(cfg.RetryAttempts, 1)
	for attempt := range attempts {
		if err = client.Ping(ctx).Err(); err == nil {
			return client, nil
		}

		last := attempt == attempts-1
		var wait time.Duration
		if !last {
			wait = cfg.RetryInterval << attempt
		}
		o.logger.WarnContext(ctx, "redis connection attempt failed",
			logger.Component("redis"),
			logger.RetryCount(attempt+1),
			logger.Duration(wait),
			logger.Error(err),
		)
		if last {
			break
		}
		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, fmt.Errorf("%w: %w", ErrRedisNotReady, ctx.Err())
		case <-time.After(wait):
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("%w: %w", ErrRedisNotReady, err)
}

// Healthcheck returns a function that pings Redis.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrHealthcheckFailed, err)
		}
		return nil
	}
}
