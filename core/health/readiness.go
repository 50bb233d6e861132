package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/rpckit/core/logger"
)

// ErrNotReady is returned when any readiness check fails.
var ErrNotReady = errors.New("service not ready")

// Check reports whether one dependency is available.
type Check func(context.Context) error

// Readiness combines dependency checks into one. Checks run in order and the
// first failure is logged and returned wrapped with ErrNotReady.
//
// Example:
//
//	ready := health.Readiness(log,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	)
//	if err := ready(ctx); err != nil {
//		return err
//	}
func Readiness(log *slog.Logger, checks ...Check) Check {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context) error {
		for i, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					logger.Count("check", i),
					logger.Error(err),
				)
				return fmt.Errorf("%w: %w", ErrNotReady, err)
			}
		}
		return nil
	}
}
