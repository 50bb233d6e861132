package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrymomot/rpckit/core/logger"
)

// New connects to MongoDB and waits for the primary to answer a ping.
// Attempts back off exponentially from cfg.RetryInterval to ride out cold starts.
// Each failed attempt is logged at Warn level.
func New(ctx context.Context, cfg Config, opts ...ConnectOption) (*mongo.Client, error) {
	o := newConnectOptions(opts)

	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	clientOpts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)
	if cfg.ConnectTimeout > 0 {
		clientOpts = clientOpts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		clientOpts = clientOpts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		clientOpts = clientOpts.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.MaxConnIdleTime > 0 {
		clientOpts = clientOpts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}

	var err error
	attempts := max(cfg.RetryAttempts, 1)
	for attempt := range attempts {
		var client *mongo.Client
		client, err = mongo.Connect(clientOpts)
		if err == nil {
			if err = client.Ping(ctx, readpref.Primary()); err == nil {
				return client, nil
			}
			_ = client.Disconnect(context.Background())
		}

		last := attempt == attempts-1
		var wait time.Duration
		if !last {
			wait = cfg.RetryInterval << attempt
		}
		o.logger.WarnContext(ctx, "mongodb connection attempt failed",
			logger.Component("mongo"),
			logger.RetryCount(attempt+1),
			logger.Duration(wait),
			logger.Error(err),
		)
		if last {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(wait):
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrFailedToConnectToMongo, err)
}

// NewWithDatabase connects and returns the named database handle.
func NewWithDatabase(ctx context.Context, cfg Config, database string, opts ...ConnectOption) (*mongo.Database, error) {
	client, err := New(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return client.Database(database), nil
}

// Healthcheck returns a function that pings the primary.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("%w: %w", ErrHealthcheckFailed, err)
		}
		return nil
	}
}
