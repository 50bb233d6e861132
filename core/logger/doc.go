// Package logger provides structured logging attribute helpers built on Go's
// standard slog package.
//
// Every helper returns a slog.Attr. Helpers that take optional values (errors,
// identifiers) return the empty Attr for nil or empty input, which slog drops,
// so call sites never need nil checks:
//
//	import "github.com/dmitrymomot/rpckit/core/logger"
//
//	log.Debug("binder registered",
//		logger.Component("binding"),
//		logger.Param("id"),
//		logger.Type("model"),
//	)
//
//	log.Warn("connection attempt failed",
//		logger.Component("pg"),
//		logger.RetryCount(2),
//		logger.Duration(backoff),
//		logger.Error(err),
//	)
//
// # Attribute Helpers
//
//   - Errors: Error
//   - Timing: Duration
//   - Binding: Param
//   - Metadata: Component, Type, Count, Key, RetryCount
package logger
