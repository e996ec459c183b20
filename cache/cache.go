package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// lruEntryHint bounds the entry count of the underlying LRU; the real
// limit is the byte budget enforced on top of it.
const lruEntryHint = 1 << 16

// SegmentCache is a byte-bounded LRU of decompressed segments shared
// between SegmentReaders. Keys are computed with hash.SegmentKey over the
// block name and the segment's raw-stream offset.
//
// All methods are safe for concurrent use.
type SegmentCache struct {
	mu       sync.Mutex
	lru      *lru.Cache[uint64, []byte]
	maxBytes int64
	curBytes int64
}

// NewSegmentCache creates a cache holding at most maxBytes of decompressed
// segment data.
func NewSegmentCache(maxBytes int64) *SegmentCache {
	c := &SegmentCache{maxBytes: maxBytes}
	c.lru, _ = lru.NewWithEvict(lruEntryHint, func(_ uint64, data []byte) {
		c.curBytes -= int64(len(data))
	})

	return c
}

// Get returns the cached segment for key, marking it recently used.
//
// The returned slice is shared; callers must not mutate it.
func (c *SegmentCache) Get(key uint64) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Get(key)
}

// Put inserts a decompressed segment, evicting least-recently-used
// entries until the byte budget holds. Segments larger than the budget
// are not cached.
func (c *SegmentCache) Put(key uint64, data []byte) {
	size := int64(len(data))
	if size > c.maxBytes {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.lru.Peek(key); ok {
		c.curBytes -= int64(len(prev))
	}
	c.lru.Add(key, data)
	c.curBytes += size

	for c.curBytes > c.maxBytes {
		if _, _, ok := c.lru.RemoveOldest(); !ok {
			break
		}
	}
}

// Len returns the number of cached segments.
func (c *SegmentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}

// Bytes returns the current decompressed byte footprint.
func (c *SegmentCache) Bytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.curBytes
}
