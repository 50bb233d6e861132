package binding

import "log/slog"

// Option configures a Registry.
type Option func(*Registry)

// WithSignatureProvider sets the source of procedure signatures.
// A nil provider is ignored.
func WithSignatureProvider(p SignatureProvider) Option {
	return func(r *Registry) {
		if p != nil {
			r.signatures = p
		}
	}
}

// WithLogger sets the logger used for registration events.
// If not set, slog.Default() is used. Resolution never logs.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithBinder registers a binder at construction time.
//
// Example:
//
//	reg := binding.New(
//	    binding.WithBinder("id", binding.Int64()),
//	    binding.WithBinder("token", binding.UUID()),
//	)
func WithBinder(key string, resolver Resolver) Option {
	return func(r *Registry) {
		r.binders[key] = resolver
	}
}

// WithExceptionResolver registers an exception resolver at construction time.
// Options are applied in order, so the order of WithExceptionResolver options
// is the match priority.
func WithExceptionResolver(m ErrorMatcher, t Translator) Option {
	return func(r *Registry) {
		r.putException(m, t)
	}
}

// WithEmptyFunc replaces IsEmpty as the rule deciding which bound values are omitted.
func WithEmptyFunc(fn func(any) bool) Option {
	return func(r *Registry) {
		if fn != nil {
			r.isEmpty = fn
		}
	}
}

// WithoutSnakeCaseFallback disables the snake_case lookup of camelCase parameters.
func WithoutSnakeCaseFallback() Option {
	return func(r *Registry) {
		r.snakeFallback = false
	}
}
