package binding

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cachedSignatures memoizes successful lookups of the wrapped provider.
type cachedSignatures struct {
	next  SignatureProvider
	cache *lru.Cache[Procedure, []string]
}

// CachedSignatures wraps p with an LRU cache holding up to size signatures.
// Failed lookups are never cached, so a procedure registered later becomes
// visible on the next call.
func CachedSignatures(p SignatureProvider, size int) (SignatureProvider, error) {
	cache, err := lru.New[Procedure, []string](size)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrInvalidCacheSize, size, err)
	}
	return &cachedSignatures{next: p, cache: cache}, nil
}

// ParametersOf returns the cached signature or delegates to the wrapped provider.
func (c *cachedSignatures) ParametersOf(p Procedure) ([]string, error) {
	if params, ok := c.cache.Get(p); ok {
		return slices.Clone(params), nil
	}

	params, err := c.next.ParametersOf(p)
	if err != nil {
		return nil, err
	}

	c.cache.Add(p, slices.Clone(params))
	return params, nil
}
