// Package redis provides Redis client initialization, health checking and a cache-backed model finder.
//
// This package wraps the go-redis client with URL validation, retry logic and connection
// verification. Its Finder type implements binding.Finder: entities stored as JSON under a key
// prefix can be bound to RPC parameters directly, or Redis can sit in front of another finder
// as a read-through cache.
//
// # Key Features
//
//   - Connect: Creates a Redis client with exponential retry logic and connection verification;
//     WithLogger receives a Warn line per failed attempt
//   - Healthcheck: Returns a health check function for monitoring Redis connectivity
//   - NewFinder: Loads JSON entities by key, mapping redis.Nil to binding.ErrModelNotFound
//   - WithFallback: Loads cache misses from another finder and writes them back with a TTL
//
// # Configuration
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are accepted.
//
// # Usage Example
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal("Failed to connect to Redis:", err)
//	}
//	defer client.Close()
//
//	// PostgreSQL is the source of truth, Redis caches entities for ten minutes.
//	users := redis.NewFinder(client, "user:",
//		redis.WithFallback[*User](pgUsers, 10*time.Minute))
//
//	binding.RegisterModelBinder(reg, "user", users, nil)
//
// # Health Checking
//
//	healthCheck := redis.Healthcheck(client)
//	if err := healthCheck(ctx); err != nil {
//		log.Println("Redis unhealthy:", err)
//	}
//
// # Error Handling
//
//   - ErrFailedToParseRedisConnString: Returned when the Redis connection URL is malformed
//   - ErrRedisNotReady: Returned when Redis doesn't answer within the retry budget
//   - ErrEmptyConnectionURL: Returned when no connection URL is provided
//   - ErrHealthcheckFailed: Returned when health check ping fails
//   - ErrLookupFailed: Returned when a finder GET fails for reasons other than a missing key
//   - ErrDecodeFailed: Returned when a cached payload is not valid JSON for the model
//
// Cache write failures in read-through mode are ignored; the loaded entity is still returned.
package redis
