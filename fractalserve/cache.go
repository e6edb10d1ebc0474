package fractalserve

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// syncCache is a lru.Cache safe for concurrent use.
type syncCache struct {
	cache *lru.Cache
	lock  sync.Mutex
}

func newSyncCache(numEntries int) *syncCache {
	return &syncCache{cache: lru.New(numEntries)}
}

func (c *syncCache) Add(key lru.Key, value []byte) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.cache.Add(key, value)
}

func (c *syncCache) Get(key lru.Key) ([]byte, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

func (c *syncCache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Len()
}
