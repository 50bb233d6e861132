package pg

import "errors"

// Domain-specific PostgreSQL errors. Use errors.Is() to check error types.
var (
	ErrEmptyConnectionString    = errors.New("empty postgres connection string")
	ErrFailedToParseDBConfig    = errors.New("failed to parse postgres config")
	ErrFailedToOpenDBConnection = errors.New("failed to open postgres connection")
	ErrHealthcheckFailed        = errors.New("postgres healthcheck failed")
	ErrQueryFailed              = errors.New("postgres model query failed")
)
