package cache

import (
	"container/list"
	"context"
	"hash/maphash"
	"sync"
	"time"
)

const (
	defaultJanitorInterval = 2 * time.Minute

	versionStripes = 64
)

type entry[K comparable, V any] struct {
	key        K
	value      V
	expiration time.Time
}

// LRU is a fixed-capacity cache with per-entry TTL. Expired entries are
// dropped lazily on Get and periodically by the janitor.
//
// Keys hash into version stripes bumped by Delete. A reader that takes
// Version before loading from the source and fills with SetIfVersion never
// stores a value older than the last Delete of its key.
type LRU[K comparable, V any] struct {
	capacity int
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	seed     maphash.Seed

	mu       sync.Mutex
	ll       *list.List
	items    map[K]*list.Element
	versions [versionStripes]uint64
}

type Option func(*options)

type options struct {
	interval time.Duration
	now      func() time.Time
}

func WithJanitorInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func NewLRU[K comparable, V any](capacity int, ttl time.Duration, opts ...Option) *LRU[K, V] {
	o := options{interval: defaultJanitorInterval, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if capacity <= 0 {
		capacity = 1
	}

	return &LRU[K, V]{
		capacity: capacity,
		ttl:      ttl,
		interval: o.interval,
		now:      o.now,
		seed:     maphash.MakeSeed(),
		ll:       list.New(),
		items:    make(map[K]*list.Element),
	}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	ele, ok := c.items[key]
	if !ok {
		return zero, false
	}

	ent := ele.Value.(*entry[K, V])
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		return zero, false
	}
	c.ll.MoveToFront(ele)
	return ent.value, true
}

func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// Version returns the invalidation version of key's stripe.
func (c *LRU[K, V]) Version(key K) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[c.stripe(key)]
}

// SetIfVersion stores value only if key was not deleted since version was
// read.
func (c *LRU[K, V]) SetIfVersion(key K, value V, version uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.versions[c.stripe(key)] != version {
		return false
	}
	c.set(key, value)
	return true
}

func (c *LRU[K, V]) stripe(key K) uint64 {
	return maphash.Comparable(c.seed, key) % versionStripes
}

func (c *LRU[K, V]) set(key K, value V) {
	expiration := c.now().Add(c.ttl)
	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[K, V])
		ent.value = value
		ent.expiration = expiration
		return
	}

	ele := c.ll.PushFront(&entry[K, V]{key: key, value: value, expiration: expiration})
	c.items[key] = ele

	if c.ll.Len() > c.capacity {
		if oldest := c.ll.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Delete drops key and invalidates fills that read it before now.
func (c *LRU[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.versions[c.stripe(key)]++
	if ele, ok := c.items[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Start launches the janitor and returns immediately; it stops with ctx.
func (c *LRU[K, V]) Start(ctx context.Context) error {
	go c.runJanitor(ctx)
	return nil
}

func (c *LRU[K, V]) runJanitor(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-ctx.Done():
			return
		}
	}
}

func (c *LRU[K, V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry[K, V]).expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}

func (c *LRU[K, V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry[K, V]).key)
}
