// Package health aggregates dependency checks for service readiness.
//
// Store adapters expose checks with the func(context.Context) error signature
// (pg.Healthcheck, redis.Healthcheck, mongo.Healthcheck). Readiness runs them in
// order and stops at the first failure:
//
//	ready := health.Readiness(logger,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//		mongo.Healthcheck(mongoClient),
//	)
//
// Expose the combined check through whatever probe the host transport offers.
package health
