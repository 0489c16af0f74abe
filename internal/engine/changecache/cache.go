// Package changecache skips generation work whose source content has not changed.
package changecache

import (
	"context"
	"fmt"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
)

// Cache remembers the digest of the last content processed successfully per key.
// Entries live for the lifetime of the process and are never evicted.
type Cache struct {
	mu      sync.RWMutex
	digests map[unique.Handle[string]]string
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		digests: make(map[unique.Handle[string]]string),
	}
}

// Digest returns the fixed-length digest of content.
func Digest(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// WhenChanged runs task unless content has the same digest as the last
// successful run under key. The digest is stored only when task succeeds, so a
// failed run is retried the next time the same content is seen.
//
// It reports whether task ran.
func (c *Cache) WhenChanged(
	ctx context.Context,
	key, content string,
	task func(context.Context) error,
) (bool, error) {
	handle := unique.Make(key)
	digest := Digest(content)

	c.mu.RLock()
	previous, ok := c.digests[handle]
	c.mu.RUnlock()

	if ok && previous == digest {
		return false, nil
	}

	if err := task(ctx); err != nil {
		return true, err
	}

	c.mu.Lock()
	c.digests[handle] = digest
	c.mu.Unlock()

	return true, nil
}

// Lookup returns the stored digest for key.
func (c *Cache) Lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	digest, ok := c.digests[unique.Make(key)]
	return digest, ok
}

// Len returns the number of keys with a stored digest.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.digests)
}
