package useragent

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	ua     string
	result Result
}

// resultCache is a thread-safe LRU of parse results keyed by user agent.
// Results are stored and returned by value, so callers never share state.
type resultCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		panic("useragent: cache capacity must be positive")
	}
	return &resultCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		eviction: list.New(),
	}
}

func (c *resultCache) get(ua string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[ua]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).result, true
	}
	return Result{}, false
}

func (c *resultCache) put(ua string, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[ua]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).result = r
		return
	}

	c.items[ua] = c.eviction.PushFront(&cacheEntry{ua: ua, result: r})
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).ua)
	}
}

func (c *resultCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}
