package cache

import (
	"encoding/json"
	"sync"

	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/observability"
	"github.com/couchcryptid/relief-calc/internal/study"
)

// CachedEvaluator wraps a study Evaluator with an in-memory LRU cache keyed by
// the canonical JSON of the study. A cached result keeps its original
// CalculatedAt. Callers receive copies and may modify them freely.
type CachedEvaluator struct {
	inner   study.Evaluator
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedEvaluator creates a cache decorator around an evaluator.
func NewCachedEvaluator(inner study.Evaluator, maxEntries int, metrics *observability.Metrics) *CachedEvaluator {
	return &CachedEvaluator{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedEvaluator) Evaluate(s study.Study) study.Result {
	body, err := json.Marshal(s)
	if err != nil {
		return c.inner.Evaluate(s)
	}
	key := domain.RequestKey("study", body)

	if result, ok := c.cache.get(key); ok {
		c.observe("hit")
		return result.Clone()
	}
	c.observe("miss")

	result := c.inner.Evaluate(s)
	c.cache.put(key, result.Clone())
	return result
}

func (c *CachedEvaluator) observe(result string) {
	if c.metrics != nil {
		c.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}

// lruCache is a simple thread-safe LRU cache of study results.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value study.Result
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (study.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return study.Result{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value study.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
