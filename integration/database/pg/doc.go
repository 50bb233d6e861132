// Package pg provides PostgreSQL connection management and a pgx-backed model finder for binding registries.
//
// This package wraps the pgx PostgreSQL driver with retry logic, pool tuning and health checking.
// Its Finder type implements binding.Finder, so a model binder can load entities straight from
// PostgreSQL while resolving RPC parameters.
//
// # Key Features
//
//   - Connect: Creates a connection pool with retry logic and connection verification;
//     WithLogger receives a Warn line per failed attempt
//   - Healthcheck: Returns a health check function for monitoring connectivity
//   - NewFinder: Loads one entity by identifier, mapping pgx.ErrNoRows to binding.ErrModelNotFound
//   - WithTx / TxFromContext: Propagate a transaction so finders read through it
//
// # Configuration
//
// All configuration is handled through the Config struct with environment variable mapping:
//
//	type Config struct {
//		ConnectionString  string        `env:"PG_CONN_URL,required"`
//		MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//		MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
//		HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
//		MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
//		MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
//		RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
//	}
//
// Load it with config.Load from the core/config package.
//
// # Usage Example
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal("Failed to connect to PostgreSQL:", err)
//	}
//	defer pool.Close()
//
//	users := pg.NewFinder(pool, "SELECT id, email FROM users WHERE id = $1",
//		func(row pgx.Row) (*User, error) {
//			var u User
//			if err := row.Scan(&u.ID, &u.Email); err != nil {
//				return nil, err
//			}
//			return &u, nil
//		})
//
//	binding.RegisterModelBinder(reg, "user", users, nil)
//
// # Transactions
//
// When a request handler already opened a transaction, store it in the context before
// resolving bindings. Finders prefer the stored transaction over the pool:
//
//	tx, err := pool.Begin(ctx)
//	if err != nil {
//		return err
//	}
//	defer tx.Rollback(ctx)
//
//	bound, err := reg.ResolveBindings(pg.WithTx(ctx, tx), procedure, params)
//
// # Error Handling
//
//	var (
//		ErrEmptyConnectionString    = errors.New("empty postgres connection string")
//		ErrFailedToParseDBConfig    = errors.New("failed to parse postgres config")
//		ErrFailedToOpenDBConnection = errors.New("failed to open postgres connection")
//		ErrHealthcheckFailed        = errors.New("postgres healthcheck failed")
//		ErrQueryFailed              = errors.New("postgres model query failed")
//	)
//
// A missing row surfaces as binding.ErrModelNotFound, which the model resolver turns into
// a *binding.ModelNotFoundError or hands to the missing callback.
package pg
