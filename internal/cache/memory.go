package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"loanlens/internal/port"
)

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

type memoryCache struct {
	mu       sync.Mutex
	maxItems int
	items    map[string]*list.Element
	order    *list.List
}

// NewMemoryCache creates an in-process LRU cache. Single-instance
// deployments use this instead of Redis.
func NewMemoryCache(maxItems int) port.Cache {
	if maxItems <= 0 {
		maxItems = 1024
	}
	return &memoryCache{
		maxItems: maxItems,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}
	entry := elem.Value.(*memoryEntry)
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.removeLocked(elem)
		return nil, false, nil
	}
	c.order.MoveToFront(elem)
	return entry.value, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.order.MoveToFront(elem)
		return nil
	}

	elem := c.order.PushFront(&memoryEntry{key: key, value: value, expiresAt: expiresAt})
	c.items[key] = elem

	for c.order.Len() > c.maxItems {
		c.removeLocked(c.order.Back())
	}
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeLocked(elem)
	}
	return nil
}

func (c *memoryCache) removeLocked(elem *list.Element) {
	if elem == nil {
		return
	}
	entry := elem.Value.(*memoryEntry)
	delete(c.items, entry.key)
	c.order.Remove(elem)
}
