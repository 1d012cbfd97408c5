// Package resultcache memoizes match results per (snapshot, benchmark set).
// Evaluation is deterministic over an immutable snapshot, so replaying the
// same benchmark set can be served from memory without recomputation.
package resultcache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/okian/talentmatch/internal/domain/model"
)

// Cache stores computed match results up to a bounded size.
type Cache interface {
	// Get returns the cached result for a key, if present.
	Get(ctx context.Context, key string) (*model.MatchResult, bool)

	// Put stores a result, evicting the most recently added entry when full.
	Put(ctx context.Context, key string, result *model.MatchResult)

	Size() int64
}

// Key derives the cache key for a benchmark set against one snapshot
// version. Benchmark order does not affect the result, so ids are sorted
// before keying.
func Key(snapshotVersion string, benchmarkIDs []string) string {
	ids := make([]string, len(benchmarkIDs))
	copy(ids, benchmarkIDs)
	sort.Strings(ids)
	return snapshotVersion + "|" + strings.Join(ids, ",")
}

// node is a single entry in the eviction list.
type node struct {
	key    string
	result *model.MatchResult
	next   *node
}

func (n *node) reset() {
	n.key = ""
	n.result = nil
	n.next = nil
}

// inMemoryCache implements Cache with a map plus an intrusive list evicted
// LIFO, the newest entries being the cheapest to recompute. maxSize <= 0
// means unbounded (no eviction).
type inMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*node
	head    *node
	maxSize int
	size    atomic.Int64
	pool    sync.Pool
}

// Option applies a configuration option to the cache.
type Option func(*inMemoryCache)

// WithMaxSize bounds the number of cached results.
func WithMaxSize(size int) Option {
	return func(c *inMemoryCache) {
		c.maxSize = size
	}
}

// New creates an in-memory result cache.
func New(opts ...Option) Cache {
	c := &inMemoryCache{maxSize: 128}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = make(map[string]*node)
	c.pool = sync.Pool{
		New: func() interface{} {
			return &node{}
		},
	}
	return c
}

func (c *inMemoryCache) Get(_ context.Context, key string) (*model.MatchResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return n.result, true
}

func (c *inMemoryCache) Put(_ context.Context, key string, result *model.MatchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return
	}

	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evict()
	}

	n := c.pool.Get().(*node)
	n.key = key
	n.result = result
	n.next = c.head
	c.head = n
	c.entries[key] = n
	c.size.Add(1)
}

// evict drops the head entry (newest-in, LIFO).
func (c *inMemoryCache) evict() {
	if c.head == nil {
		return
	}
	n := c.head
	c.head = n.next
	delete(c.entries, n.key)
	n.reset()
	c.pool.Put(n)
	c.size.Add(-1)
}

func (c *inMemoryCache) Size() int64 {
	return c.size.Load()
}
