package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/msto63/ngc/foundation/ngc/token"
)

// ParseFunc parses a program source
type ParseFunc func(src string) (*token.Program, error)

type parsed struct {
	prog *token.Program
	err  error
}

// ProgramCache remembers parse outcomes by source content, failures
// included, so an unchanged file is not parsed twice. Cached programs are
// shared and must not be modified.
type ProgramCache struct {
	cache *Cache[parsed]
}

// NewProgramCache creates a program cache
func NewProgramCache(cfg Config) *ProgramCache {
	return &ProgramCache{cache: New[parsed](cfg)}
}

// SourceKey returns the cache key of a program source
func SourceKey(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

// Parse returns the cached outcome for src, or calls parse and caches its
// outcome. hit reports whether parse was skipped.
func (c *ProgramCache) Parse(src string, parse ParseFunc) (prog *token.Program, hit bool, err error) {
	key := SourceKey(src)
	if p, ok := c.cache.Get(key); ok {
		return p.prog, true, p.err
	}

	prog, err = parse(src)
	c.cache.Set(key, parsed{prog: prog, err: err})
	return prog, false, err
}

// Stats returns hit and miss counts
func (c *ProgramCache) Stats() (hits, misses int64) {
	hits, misses, _ = c.cache.Stats()
	return hits, misses
}

// Close releases the cache
func (c *ProgramCache) Close() {
	c.cache.Close()
}
