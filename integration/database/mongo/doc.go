// Package mongo provides MongoDB client initialization, health checking and a document-backed model finder.
//
// This package wraps the official MongoDB Go driver with retry logic for cold starts and brief
// network interruptions. Its Finder type implements binding.Finder so a model binder can load
// documents by identifier.
//
// Basic usage:
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal("Failed to parse config:", err)
//	}
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "myapp")
//	if err != nil {
//		log.Fatal("Failed to connect to MongoDB:", err)
//	}
//
//	users := mongo.NewFinder[*User](db.Collection("users"), mongo.WithIDParser(mongo.ObjectIDParser))
//	binding.RegisterModelBinder(reg, "user", users, nil)
//
// Pass mongo.WithLogger to New or NewWithDatabase to receive a Warn line per failed
// connection attempt.
//
// # Configuration
//
//	MONGODB_URL                 (required)
//	MONGODB_CONNECT_TIMEOUT     (default: 10s)
//	MONGODB_MAX_POOL_SIZE       (default: 100)
//	MONGODB_MIN_POOL_SIZE       (default: 1)
//	MONGODB_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGODB_RETRY_WRITES        (default: true)
//	MONGODB_RETRY_READS         (default: true)
//	MONGODB_RETRY_ATTEMPTS      (default: 3)
//	MONGODB_RETRY_INTERVAL      (default: 5s)
//
// # Finder
//
// Documents are matched on _id by default. WithIDField selects another field and
// WithIDParser converts the raw RPC value first; ObjectIDParser turns hex strings into
// bson.ObjectID. Parser failures wrap binding.ErrInvalidParam and no query is sent.
// mongo.ErrNoDocuments is reported as binding.ErrModelNotFound.
//
// # Health Checking
//
//	healthCheck := mongo.Healthcheck(client)
//	if err := healthCheck(ctx); err != nil {
//		log.Println("MongoDB unhealthy:", err)
//	}
package mongo
