package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 checksum of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SegmentKey computes the cache key for one segment of a named block:
// xxHash64 over the block name followed by the segment's byte offset.
func SegmentKey(name string, offset uint64) uint64 {
	var d xxhash.Digest
	d.Reset()
	_, _ = d.WriteString(name)

	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], offset)
	_, _ = d.Write(b[:])

	return d.Sum64()
}
