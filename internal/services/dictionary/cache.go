package dictionary

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingOracle remembers verdicts from a slower oracle. Failures are not
// cached.
type CachingOracle struct {
	next  Oracle
	cache *lru.Cache[string, bool]
}

// NewCachingOracle wraps next with an LRU of the given size
func NewCachingOracle(next Oracle, size int) (*CachingOracle, error) {
	cache, err := lru.New[string, bool](size)
	if err != nil {
		return nil, err
	}
	return &CachingOracle{next: next, cache: cache}, nil
}

// Lookup returns a cached verdict or asks the wrapped oracle
func (c *CachingOracle) Lookup(ctx context.Context, word string) (bool, error) {
	word = Normalize(word)
	if valid, ok := c.cache.Get(word); ok {
		return valid, nil
	}

	valid, err := c.next.Lookup(ctx, word)
	if err != nil {
		return false, err
	}
	c.cache.Add(word, valid)
	return valid, nil
}

// Len returns the number of cached verdicts
func (c *CachingOracle) Len() int {
	return c.cache.Len()
}

var _ Oracle = (*CachingOracle)(nil)
