package cache

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/numcodec/compress"
	"github.com/arloliu/numcodec/encoding"
	"github.com/arloliu/numcodec/format"
	"github.com/arloliu/numcodec/internal/hash"
)

var _ encoding.CacheBackedSource = (*SegmentReader)(nil)

var (
	// ErrCorruptBlock indicates a framed block whose segment headers or
	// lengths are inconsistent.
	ErrCorruptBlock = errors.New("corrupt segment block")

	// ErrChecksumMismatch indicates a segment payload that fails its
	// xxHash64 verification.
	ErrChecksumMismatch = errors.New("segment checksum mismatch")
)

type segmentInfo struct {
	rawOff      uint64
	rawLen      int
	payloadOff  int
	payloadLen  int
	compression format.CompressionType
	checksum    uint64
}

// SegmentReader reads the raw byte stream back out of a framed block,
// decompressing segments on demand. With a SegmentCache attached it also
// implements the bulk decoder's cache-backed source contract.
//
// A SegmentReader is a single-use forward cursor; it is not safe for
// concurrent use and is not reentrant.
type SegmentReader struct {
	name     string
	block    []byte
	cache    *SegmentCache
	segments []segmentInfo
	rawSize  uint64

	pos uint64
	seg int
}

// NewSegmentReader indexes a framed block and returns a reader positioned
// at the start of the raw stream. The name scopes cache keys; readers of
// distinct blocks must use distinct names. A nil cache disables caching
// and the zero-copy capability.
func NewSegmentReader(name string, block []byte, cache *SegmentCache) (*SegmentReader, error) {
	r := &SegmentReader{name: name, block: block, cache: cache}

	off := 0
	for off < len(block) {
		if len(block)-off < segmentHeaderSize {
			return nil, fmt.Errorf("%w: truncated segment header at offset %d", ErrCorruptBlock, off)
		}
		hdr := block[off : off+segmentHeaderSize]
		compression := format.CompressionType(hdr[0])
		payloadLen := int(frameOrder.Uint32(hdr[1:5]))
		rawLen := int(frameOrder.Uint32(hdr[5:9]))
		checksum := frameOrder.Uint64(hdr[9:17])

		if _, err := compress.GetCodec(compression); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCorruptBlock, err)
		}
		if rawLen == 0 || len(block)-off-segmentHeaderSize < payloadLen {
			return nil, fmt.Errorf("%w: truncated segment payload at offset %d", ErrCorruptBlock, off)
		}

		r.segments = append(r.segments, segmentInfo{
			rawOff:      r.rawSize,
			rawLen:      rawLen,
			payloadOff:  off + segmentHeaderSize,
			payloadLen:  payloadLen,
			compression: compression,
			checksum:    checksum,
		})
		r.rawSize += uint64(rawLen)
		off += segmentHeaderSize + payloadLen
	}

	return r, nil
}

// Size returns the total raw stream length in bytes.
func (r *SegmentReader) Size() uint64 { return r.rawSize }

// IsCacheBacked reports whether a segment cache is attached.
func (r *SegmentReader) IsCacheBacked() bool { return r.cache != nil }

// Read copies raw stream bytes into p, decompressing segments as needed
// and populating the cache.
func (r *SegmentReader) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		if r.pos >= r.rawSize {
			if total == 0 {
				return 0, io.EOF
			}

			return total, nil
		}

		si := r.current()
		data, err := r.segmentData(si)
		if err != nil {
			return total, err
		}

		n := copy(p[total:], data[r.pos-si.rawOff:])
		total += n
		r.pos += uint64(n)
	}

	return total, nil
}

// TryZeroCopyRead fills dst from cached segments only, advancing the
// cursor past the bytes served. It stops at the first cache miss or at
// the end of the raw stream and reports incomplete; the caller fetches
// the remainder through Read.
func (r *SegmentReader) TryZeroCopyRead(dst []byte) (int, bool, error) {
	if r.cache == nil {
		return 0, true, nil
	}

	total := 0
	for total < len(dst) {
		if r.pos >= r.rawSize {
			return total, true, nil
		}

		si := r.current()
		data, ok := r.cache.Get(hash.SegmentKey(r.name, si.rawOff))
		if !ok {
			return total, true, nil
		}

		n := copy(dst[total:], data[r.pos-si.rawOff:])
		total += n
		r.pos += uint64(n)
	}

	return total, false, nil
}

// current returns the segment containing the cursor. The cursor only
// moves forward, so the lookup advances a persistent index.
func (r *SegmentReader) current() *segmentInfo {
	for r.seg < len(r.segments) {
		si := &r.segments[r.seg]
		if r.pos < si.rawOff+uint64(si.rawLen) {
			return si
		}
		r.seg++
	}

	panic("cache: cursor past end of indexed segments")
}

// segmentData returns the decompressed bytes of one segment, serving from
// the cache when possible and verifying the payload checksum otherwise.
func (r *SegmentReader) segmentData(si *segmentInfo) ([]byte, error) {
	var key uint64
	if r.cache != nil {
		key = hash.SegmentKey(r.name, si.rawOff)
		if data, ok := r.cache.Get(key); ok {
			return data, nil
		}
	}

	payload := r.block[si.payloadOff : si.payloadOff+si.payloadLen]
	if hash.Sum(payload) != si.checksum {
		return nil, fmt.Errorf("%w: segment at raw offset %d", ErrChecksumMismatch, si.rawOff)
	}

	codec, err := compress.GetCodec(si.compression)
	if err != nil {
		return nil, err
	}
	data, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress segment at raw offset %d: %w", si.rawOff, err)
	}
	if len(data) != si.rawLen {
		return nil, fmt.Errorf("%w: segment at raw offset %d decompressed to %d bytes, header says %d",
			ErrCorruptBlock, si.rawOff, len(data), si.rawLen)
	}

	if r.cache != nil {
		r.cache.Put(key, data)
	}

	return data, nil
}
