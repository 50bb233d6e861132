package binding

// Config holds environment-driven registry settings.
// Load it with config.Load from the core/config package.
type Config struct {
	// SnakeCaseFallback enables the params[snake_case(name)] lookup.
	SnakeCaseFallback bool `env:"RPC_SNAKE_CASE_FALLBACK" envDefault:"true"`

	// SignatureCacheSize wraps the signature provider in an LRU cache of
	// this many entries. Zero disables caching.
	SignatureCacheSize int `env:"RPC_SIGNATURE_CACHE_SIZE" envDefault:"0"`
}

// NewFromConfig creates a registry from cfg and provider.
// Options are applied after the config-derived settings, so they take precedence.
func NewFromConfig(cfg Config, provider SignatureProvider, opts ...Option) (*Registry, error) {
	base := make([]Option, 0, len(opts)+2)

	if provider != nil && cfg.SignatureCacheSize > 0 {
		cached, err := CachedSignatures(provider, cfg.SignatureCacheSize)
		if err != nil {
			return nil, err
		}
		provider = cached
	}
	base = append(base, WithSignatureProvider(provider))

	if !cfg.SnakeCaseFallback {
		base = append(base, WithoutSnakeCaseFallback())
	}

	return New(append(base, opts...)...), nil
}
