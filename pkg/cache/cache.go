// Package cache provides a generic, thread-safe LRU cache with metrics.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 128

// Cache is a generic thread-safe LRU cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]*list.Element
	order    *list.List
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
	evicts atomic.Uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a Cache holding at most capacity items.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get returns the value for key and marks it as most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(key)
}

func (c *Cache[K, V]) get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Set adds or replaces the value for key, evicting the least recently used
// item when the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

func (c *Cache[K, V]) set(key K, value V) {
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	if len(c.items) >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.items, oldest.Value.(*entry[K, V]).key)
			c.order.Remove(oldest)
			c.evicts.Add(1)
		}
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// GetOrLoad returns the cached value for key, calling load on a miss.
// Errors from load are returned and nothing is cached.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.set(key, v)
	return v, nil
}

// Delete removes key from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		delete(c.items, key)
		c.order.Remove(el)
	}
}

// Len returns the number of cached items.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all items.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

// Stats holds cache statistics.
type Stats struct {
	Size     int
	Capacity int
	Hits     uint64
	Misses   uint64
	Evicts   uint64
	HitRate  float64
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	size := c.Len()
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Size:     size,
		Capacity: c.capacity,
		Hits:     hits,
		Misses:   misses,
		Evicts:   c.evicts.Load(),
		HitRate:  hitRate,
	}
}
