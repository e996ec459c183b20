package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numcodec/internal/hash"
)

func TestSegmentCache_PutGet(t *testing.T) {
	require := require.New(t)

	c := NewSegmentCache(1024)
	key := hash.SegmentKey("block-a", 0)

	_, ok := c.Get(key)
	require.False(ok)

	data := []byte("decompressed segment")
	c.Put(key, data)

	got, ok := c.Get(key)
	require.True(ok)
	require.Equal(data, got)
	require.Equal(1, c.Len())
	require.Equal(int64(len(data)), c.Bytes())
}

func TestSegmentCache_ByteBudgetEviction(t *testing.T) {
	require := require.New(t)

	c := NewSegmentCache(100)
	for i := range uint64(5) {
		c.Put(hash.SegmentKey("blk", i*40), make([]byte, 40))
	}

	// At most two 40-byte segments fit the 100-byte budget.
	require.LessOrEqual(c.Bytes(), int64(100))
	require.LessOrEqual(c.Len(), 2)

	// The most recently inserted segment survives.
	_, ok := c.Get(hash.SegmentKey("blk", 4*40))
	require.True(ok)
}

func TestSegmentCache_LRUOrder(t *testing.T) {
	require := require.New(t)

	c := NewSegmentCache(100)
	k1 := hash.SegmentKey("blk", 0)
	k2 := hash.SegmentKey("blk", 50)
	c.Put(k1, make([]byte, 50))
	c.Put(k2, make([]byte, 50))

	// Touch k1 so k2 becomes the eviction candidate.
	_, ok := c.Get(k1)
	require.True(ok)

	c.Put(hash.SegmentKey("blk", 100), make([]byte, 50))

	_, ok = c.Get(k1)
	require.True(ok)
	_, ok = c.Get(k2)
	require.False(ok)
}

func TestSegmentCache_ReplaceSameKey(t *testing.T) {
	require := require.New(t)

	c := NewSegmentCache(1024)
	key := hash.SegmentKey("blk", 0)

	c.Put(key, make([]byte, 100))
	c.Put(key, make([]byte, 30))

	require.Equal(1, c.Len())
	require.Equal(int64(30), c.Bytes())

	got, _ := c.Get(key)
	require.Len(got, 30)
}

func TestSegmentCache_OversizedSegmentNotCached(t *testing.T) {
	require := require.New(t)

	c := NewSegmentCache(10)
	key := hash.SegmentKey("blk", 0)
	c.Put(key, make([]byte, 100))

	_, ok := c.Get(key)
	require.False(ok)
	require.Equal(int64(0), c.Bytes())
}
