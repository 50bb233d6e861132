// Package rpckit provides parameter binding and error translation for RPC handlers.
//
// A transport decodes a request and decides which handler method to call. rpckit then turns the
// supplied parameters into handler arguments (resolving entities through named binders) and maps
// errors raised by the handler to protocol errors. Wire formats, routing and handler construction
// stay with the host application.
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/rpckit/core/binding
//	go doc -all github.com/dmitrymomot/rpckit/integration/database/pg
//
// # Core Packages
//
//	github.com/dmitrymomot/rpckit/core/binding  - Binder registry, signature providers and exception resolver chain
//	github.com/dmitrymomot/rpckit/core/rpcerror - JSON-RPC 2.0 protocol error value and predefined errors
//	github.com/dmitrymomot/rpckit/core/config   - Type-safe environment variable loading
//	github.com/dmitrymomot/rpckit/core/logger   - slog attribute helpers
//	github.com/dmitrymomot/rpckit/core/health   - Readiness aggregation over dependency checks
//
// # Integration Packages
//
// Store adapters implement binding.Finder so model binders can load entities directly:
//
//	github.com/dmitrymomot/rpckit/integration/database/pg    - PostgreSQL via pgx
//	github.com/dmitrymomot/rpckit/integration/database/redis - Redis via go-redis, read-through caching
//	github.com/dmitrymomot/rpckit/integration/database/mongo - MongoDB via the official driver
//
// # Quick Start
//
//	sigs := binding.NewSignatures()
//	sigs.RegisterOwner("UserController", UserController{})
//
//	reg := binding.New(binding.WithSignatureProvider(sigs))
//	binding.RegisterModelBinder(reg, "user", pg.NewFinder(pool, findUserSQL, scanUser), nil)
//	binding.HandleError(reg, func(err *binding.ModelNotFoundError) rpcerror.Error {
//		return rpcerror.ErrInvalidParams.WithMessage(err.Error())
//	})
//
//	args, err := reg.ResolveBindings(ctx, "UserController@show", params)
//	if err != nil {
//		if rpcErr, ok := reg.Resolve(err); ok {
//			return rpcErr
//		}
//		return rpcerror.ErrInternal
//	}
//
// For complete examples refer to the individual package documentation.
package rpckit
