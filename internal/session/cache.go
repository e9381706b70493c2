package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Cache remembers the last resolved identity per client so that a
// caller whose cookie and bearer token both went missing mid-session
// still resolves to the same user instead of a fresh guest. Entries
// are stored as JSON to mirror how browsers persist them.
type Cache struct {
	mu  sync.Mutex
	ttl time.Duration

	entries map[string]cacheEntry
}

type cacheEntry struct {
	raw     []byte
	expires time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Put stores an identity under key. Guests are not cached, a guest is
// cheaper to synthesize again than to store.
func (c *Cache) Put(key string, id *Identity) {
	if id == nil || id.Guest {
		return
	}

	raw, err := json.Marshal(id)
	if err != nil {
		return
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{raw: raw, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// PutRaw stores an arbitrary payload under key. Exists so tests can
// exercise the corrupt-entry path.
func (c *Cache) PutRaw(key string, raw []byte) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{raw: raw, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *Cache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if time.Now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}

	return e.raw, true
}

// Source returns a session Source reading the cached identity stored
// under key. A corrupt entry is dropped and reported as an error so
// the resolver falls through to the next source.
func (c *Cache) Source(key string) Source {
	return SourceFunc{
		SourceName: "cache",
		Fn: func(ctx context.Context) (*Identity, error) {
			raw, ok := c.get(key)
			if !ok {
				return nil, nil
			}

			var id Identity
			if err := json.Unmarshal(raw, &id); err != nil {
				c.mu.Lock()
				delete(c.entries, key)
				c.mu.Unlock()
				return nil, err
			}

			return &id, nil
		},
	}
}
