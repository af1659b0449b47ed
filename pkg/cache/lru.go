package cache

import (
	"container/list"
	"sync"
	"time"
)

type lruEntry[K comparable, V any] struct {
	key     K
	value   V
	expires time.Time
}

// LRU is a goroutine-safe least-recently-used cache with optional expiry.
// When the cache reaches its capacity the least recently used entry is evicted.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	items    map[K]*list.Element
	order    *list.List
}

// Option configures an LRU.
type Option func(*lruOptions)

type lruOptions struct {
	ttl time.Duration
	now func() time.Time
}

// WithTTL expires entries d after they were stored. Zero disables expiry.
func WithTTL(d time.Duration) Option {
	return func(o *lruOptions) { o.ttl = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *lruOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// NewLRU creates a cache holding at most capacity entries. Panics when
// capacity is not positive.
func NewLRU[K comparable, V any](capacity int, opts ...Option) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	o := lruOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &LRU[K, V]{
		capacity: capacity,
		ttl:      o.ttl,
		now:      o.now,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.lookup(key); ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key, replacing any previous value and resetting its expiry.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*lruEntry[K, V])
		entry.value = value
		entry.expires = c.expiry()
		c.order.MoveToFront(elem)
		return
	}
	c.insert(key, value)
}

// PutIfAbsent stores value only when key holds no live entry and reports
// whether it did.
func (c *LRU[K, V]) PutIfAbsent(key K, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lookup(key); ok {
		return false
	}
	c.insert(key, value)
	return true
}

// Remove deletes key and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.lookup(key)
	if ok {
		c.remove(elem)
	}
	return ok
}

// Len returns the number of stored entries, including expired ones not yet reclaimed.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// lookup returns the live element for key, dropping it when expired.
// Must be called with lock held.
func (c *LRU[K, V]) lookup(key K) (*list.Element, bool) {
	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*lruEntry[K, V])
	if !entry.expires.IsZero() && !c.now().Before(entry.expires) {
		c.remove(elem)
		return nil, false
	}
	return elem, true
}

// Must be called with lock held.
func (c *LRU[K, V]) insert(key K, value V) {
	if elem, ok := c.items[key]; ok {
		c.remove(elem)
	}
	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value, expires: c.expiry()})
	if c.order.Len() > c.capacity {
		c.remove(c.order.Back())
	}
}

// Must be called with lock held.
func (c *LRU[K, V]) remove(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.items, elem.Value.(*lruEntry[K, V]).key)
}

func (c *LRU[K, V]) expiry() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(c.ttl)
}
