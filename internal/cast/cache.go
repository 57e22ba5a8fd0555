package cast

import (
	"sync"

	"github.com/enumeral/enumeral/internal/enumtype"
)

// Cache memoizes scalar→enum casts per (scalar, target type) pair.
//
// ToEnum is a pure function, so both outcomes — the matched value and
// the UnknownValueError — are cacheable. The engine issues the same
// literal cast once per row in tight loops; re-issuing through the
// cache is a single map read under RLock.
type Cache struct {
	mu      sync.RWMutex
	results map[cacheKey]cacheResult
}

type cacheKey struct {
	def *enumtype.Definition
	raw enumtype.Raw
}

type cacheResult struct {
	val enumtype.Value
	err error
}

// NewCache creates an empty cast cache.
func NewCache() *Cache {
	return &Cache{results: make(map[cacheKey]cacheResult)}
}

// ToEnum is the caching equivalent of the package-level ToEnum.
// Repeated calls with the same scalar and target are idempotent and
// return the identical outcome.
func (c *Cache) ToEnum(raw enumtype.Raw, def *enumtype.Definition) (enumtype.Value, error) {
	key := cacheKey{def: def, raw: raw}

	c.mu.RLock()
	res, hit := c.results[key]
	c.mu.RUnlock()
	if hit {
		return res.val, res.err
	}

	val, err := ToEnum(raw, def)

	c.mu.Lock()
	c.results[key] = cacheResult{val: val, err: err}
	c.mu.Unlock()
	return val, err
}

// Len reports the number of memoized casts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
