// Package cache provides the segment-framed block format and the
// decompressed-segment cache behind the bulk decoder's zero-copy path.
//
// A BlockWriter splits a flat byte stream into fixed-size segments, each
// compressed independently and framed with a small header carrying the
// compression type, lengths and an xxHash64 checksum. A SegmentReader
// reads the raw stream back out of a framed block, decompressing segments
// on demand and keeping them in an optional SegmentCache. When a cache is
// attached the reader also satisfies the bulk decoder's cache-backed
// source contract: TryZeroCopyRead serves cached segments straight into
// the destination buffer and stops at the first miss.
package cache
