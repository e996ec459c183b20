package encoding

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/arloliu/numcodec/column"
	"github.com/arloliu/numcodec/endian"
	"github.com/arloliu/numcodec/errs"
	"github.com/arloliu/numcodec/internal/pool"
)

// ByteSource is the input of bulk binary decode: a plain stream of
// engine-order values.
type ByteSource interface {
	io.Reader
}

// CacheBackedSource is a ByteSource that can serve reads directly out of
// cached decompressed segments, enabling the zero-copy decode path.
type CacheBackedSource interface {
	ByteSource

	// TryZeroCopyRead fills dst from cached segments only. It returns the
	// number of bytes written and incomplete=true when it stopped before
	// filling dst (first cache miss or end of cached data); the caller
	// fetches the remainder through Read.
	TryZeroCopyRead(dst []byte) (n int, incomplete bool, err error)

	// IsCacheBacked reports whether a segment cache is attached.
	IsCacheBacked() bool
}

// zeroCopyEligible reports whether bulk decode may fill the column's
// storage directly from the source.
func (c *Codec[T, O]) zeroCopyEligible(col *column.Vector[T], filter *column.RowFilter) bool {
	return filter == nil &&
		col.HasZeroCopyBuffer() &&
		c.ops.plain() &&
		endian.CompareNativeEndian(c.engine)
}

// SerializeBinaryBulk writes a contiguous run of column values to w as a
// flat engine-order block.
//
// The run starts at offset and spans limit values; a zero limit, or one
// that overruns the column, is clamped to the remaining length. When the
// engine matches host byte order and the kind's memory layout equals its
// wire layout, the run is written with a single reinterpreting Write.
func (c *Codec[T, O]) SerializeBinaryBulk(w io.Writer, col *column.Vector[T], offset, limit int) error {
	size := col.Len()
	if offset < 0 || offset > size {
		return fmt.Errorf("serialize bulk: offset %d out of range [0, %d]", offset, size)
	}
	if limit == 0 || offset+limit > size {
		limit = size - offset
	}
	if limit == 0 {
		return nil
	}

	data := col.Data()[offset : offset+limit]

	if c.ops.plain() && endian.CompareNativeEndian(c.engine) {
		sz := c.ops.size()
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), limit*sz)
		_, err := w.Write(raw)

		return err
	}

	buf := pool.GetColumnBuffer()
	defer pool.PutColumnBuffer(buf)

	for _, v := range data {
		buf.B = c.AppendBinary(buf.B, v)
	}
	_, err := w.Write(buf.B)

	return err
}

// DeserializeBinaryBulk reads up to limit values from src and appends them
// to col, subject to the optional row filter.
//
// The source may end early at a value boundary; a trailing partial value
// is malformed input. When the destination carries a zero-copy buffer, no
// filter is given, the kind is layout-plain under the engine and the
// source is cache-backed, cached bytes are placed directly into the
// column's storage and only the remainder goes through the classic read
// path. Both paths produce identical column contents.
//
// Returns the number of values appended.
func (c *Codec[T, O]) DeserializeBinaryBulk(col *column.Vector[T], src ByteSource, limit int, filter *column.RowFilter) (int, error) {
	if limit <= 0 {
		return 0, nil
	}

	if c.zeroCopyEligible(col, filter) {
		if cbs, ok := src.(CacheBackedSource); ok && cbs.IsCacheBacked() {
			return c.zeroCopyDeserializeBulk(col, cbs, limit)
		}
	}

	return c.classicDeserializeBulk(col, src, limit, filter)
}

// classicDeserializeBulk decodes through a staging batch: read the flat
// block, decode every value, then append the batch through the filter.
func (c *Codec[T, O]) classicDeserializeBulk(col *column.Vector[T], src ByteSource, limit int, filter *column.RowFilter) (int, error) {
	sz := c.ops.size()

	vals, release := c.scratch.Get(limit)
	defer release()

	var count int
	if c.ops.plain() && endian.CompareNativeEndian(c.engine) {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), limit*sz)
		read, err := readAvailable(src, raw)
		if err != nil {
			return 0, err
		}
		if read%sz != 0 {
			return 0, fmt.Errorf("%w: %d trailing bytes of a split value", errs.ErrMalformedInput, read%sz)
		}
		count = read / sz
	} else {
		buf := pool.GetColumnBuffer()
		defer pool.PutColumnBuffer(buf)

		buf.ExtendOrGrow(limit * sz)
		read, err := readAvailable(src, buf.B)
		if err != nil {
			return 0, err
		}
		if read%sz != 0 {
			return 0, fmt.Errorf("%w: %d trailing bytes of a split value", errs.ErrMalformedInput, read%sz)
		}
		count = read / sz
		for i := 0; i < count; i++ {
			vals[i] = c.ops.get(c.engine, buf.B[i*sz:(i+1)*sz])
		}
	}

	return col.AppendWithFilter(vals[:count], filter), nil
}

// zeroCopyDeserializeBulk grows the column and lets the cache-backed
// source fill the new tail directly. A partial delivery is truncated back
// to whole values; a value split across the zero-copy boundary is
// completed from the classic read path, and the rest of the run follows
// through classicDeserializeBulk against the same source.
func (c *Codec[T, O]) zeroCopyDeserializeBulk(col *column.Vector[T], src CacheBackedSource, limit int) (int, error) {
	sz := c.ops.size()
	start := col.Len()

	dst := col.GrowZeroCopy(limit)
	n, incomplete, err := src.TryZeroCopyRead(dst)
	if err != nil {
		col.Truncate(start)
		return 0, err
	}

	delivered := n / sz
	rem := n % sz
	col.Truncate(start + delivered)

	if !incomplete {
		if rem != 0 {
			col.Truncate(start)
			return 0, fmt.Errorf("%w: %d trailing bytes of a split value", errs.ErrMalformedInput, rem)
		}

		return delivered, nil
	}

	if rem > 0 {
		// The last delivered value was split at the cache boundary; rescue
		// its prefix before appends reuse the truncated tail, then complete
		// it from the stream.
		var split [32]byte
		copy(split[:rem], dst[delivered*sz:delivered*sz+rem])
		if _, err := io.ReadFull(src, split[rem:sz]); err != nil {
			return delivered, fmt.Errorf("%w: value split at cache boundary", errs.ErrUnexpectedEnd)
		}
		col.Append(c.ops.get(c.engine, split[:sz]))
		delivered++
	}

	if delivered == limit {
		return delivered, nil
	}

	appended, err := c.classicDeserializeBulk(col, src, limit-delivered, nil)

	return delivered + appended, err
}

// readAvailable fills buf from r until full or the stream ends cleanly.
// Unlike io.ReadFull, ending before buf is full is not an error; the
// caller decides whether the byte count is acceptable.
func readAvailable(r io.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				return total, nil
			}

			return total, err
		}
	}

	return total, nil
}
