package binding

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/rpckit/core/logger"
)

// Registry resolves handler arguments and translates handler failures into
// protocol errors. Configure it at startup; ResolveBindings and Resolve are
// safe for concurrent use, including with late registrations.
//
// Example:
//
//	sigs := binding.NewSignatures()
//	sigs.RegisterOwner("UserController", &UserController{})
//
//	reg := binding.New(
//	    binding.WithSignatureProvider(sigs),
//	    binding.WithLogger(log),
//	)
//	binding.RegisterModelBinder(reg, "id", userFinder, nil)
//
//	args, err := reg.ResolveBindings(ctx, "UserController@show", params)
type Registry struct {
	mu         sync.RWMutex
	binders    map[string]Resolver
	exceptions []exceptionEntry

	signatures    SignatureProvider
	isEmpty       func(any) bool
	snakeFallback bool
	logger        *slog.Logger
}

// New creates a registry with the given options.
// Without WithSignatureProvider every procedure lookup fails with ErrOwnerNotFound.
func New(opts ...Option) *Registry {
	r := &Registry{
		binders:       make(map[string]Resolver),
		signatures:    NewSignatures(),
		isEmpty:       IsEmpty,
		snakeFallback: true,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger.Debug("binding registry initialized",
		logger.Component("binding"),
		logger.Count("binders", len(r.binders)),
		logger.Count("exception_resolvers", len(r.exceptions)),
	)

	return r
}

// RegisterBinder stores resolver under key, replacing any previous binder.
// Binders only run for parameters the procedure signature declares.
func (r *Registry) RegisterBinder(key string, resolver Resolver) {
	r.mu.Lock()
	_, replaced := r.binders[key]
	r.binders[key] = resolver
	r.mu.Unlock()

	r.logger.Debug("binder registered",
		logger.Component("binding"),
		logger.Param(key),
		logger.Type(resolverKind(resolver)),
		logger.Key("replaced", replaced),
	)
}

// Bind registers a plain function binder under key.
//
// Example:
//
//	reg.Bind("amount", func(ctx context.Context, raw any) (any, error) {
//	    n, _ := raw.(float64)
//	    return n * 100, nil
//	})
func (r *Registry) Bind(key string, fn func(ctx context.Context, raw any) (any, error)) {
	r.RegisterBinder(key, ResolverFunc(fn))
}

// RegisterModelBinder registers a binder that looks up an entity of type T
// using the raw parameter value as identifier. When the entity is missing,
// missing is invoked if non-nil; otherwise a *ModelNotFoundError is returned.
//
// Example:
//
//	binding.RegisterModelBinder(reg, "user", userFinder, nil)
func RegisterModelBinder[T any](r *Registry, key string, finder Finder[T], missing MissingHandler) {
	r.RegisterBinder(key, NewModelResolver(finder, missing))
}

// HasBinder reports whether a binder is registered under key.
func (r *Registry) HasBinder(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.binders[key]
	return ok
}

// ResolveBindings computes the argument map for procedure from the supplied params.
//
// For each parameter the signature declares, the raw value is params[name],
// falling back to params[snake_case(name)] when the first is missing or nil.
// A registered binder then converts the raw value. Parameters whose final
// value is empty are omitted from the result rather than set to nil.
//
// Signature lookup failures wrap ErrSignatureNotFound. A binder error aborts
// the pass and is returned unchanged, with no partial result.
func (r *Registry) ResolveBindings(ctx context.Context, procedure string, params map[string]any) (map[string]any, error) {
	proc, err := ParseProcedure(procedure)
	if err != nil {
		return nil, err
	}

	names, err := r.signatures.ParametersOf(proc)
	if err != nil {
		return nil, err
	}

	bound := make(map[string]any, len(names))
	for _, name := range names {
		value := r.rawValue(params, name)

		if binder, ok := r.binder(name); ok {
			value, err = binder.Resolve(ctx, value)
			if err != nil {
				return nil, err
			}
		}

		if !r.isEmpty(value) {
			bound[name] = value
		}
	}

	return bound, nil
}

// rawValue looks up the plain name first, then its snake_case spelling.
// The snake_case spelling is a single flat key ("user_id"); dotted names are
// not treated as nested paths.
func (r *Registry) rawValue(params map[string]any, name string) any {
	if v, ok := params[name]; ok && v != nil {
		return v
	}
	if !r.snakeFallback {
		return nil
	}
	if alt := snakeCase(name); alt != name {
		return params[alt]
	}
	return nil
}

func (r *Registry) binder(key string) (Resolver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.binders[key]
	return b, ok
}

func resolverKind(resolver Resolver) string {
	if _, ok := resolver.(interface{ Model() string }); ok {
		return "model"
	}
	return "plain"
}
