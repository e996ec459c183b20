package encoding

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/numcodec/column"
	"github.com/arloliu/numcodec/errs"
)

// The order-preserving encoding maps a value to fixed-width bytes whose
// unsigned lexicographic order equals the numeric order: reinterpret as
// the same-width unsigned value, flip the sign bit for signed kinds, emit
// big-endian. It is defined only for integer kinds narrower than 128 bits.

func putOrderPreserving[T Integer](b []byte, v T) {
	var z T
	size := uint(unsafe.Sizeof(z))

	// uint64 conversion sign-extends signed values; only the low size
	// bytes are emitted.
	u := uint64(v)
	if isSigned[T]() {
		u ^= 1 << (size*8 - 1)
	}
	for i := uint(0); i < size; i++ {
		b[i] = byte(u >> ((size - 1 - i) * 8))
	}
}

func getOrderPreserving[T Integer](b []byte) T {
	var z T
	size := uint(unsafe.Sizeof(z))

	var u uint64
	for i := uint(0); i < size; i++ {
		u = u<<8 | uint64(b[i])
	}
	if isSigned[T]() {
		u ^= 1 << (size*8 - 1)
	}

	return T(u)
}

// SupportsOrderPreserving reports whether this codec's kind has an
// order-preserving binary encoding.
func (c *Codec[T, O]) SupportsOrderPreserving() bool {
	return c.ops.orderable()
}

// AppendOrdered appends the order-preserving encoding of one column value
// to dst. Fails with errs.ErrUnsupportedOperation for kinds without an
// order-preserving encoding (floats, 128-bit and 256-bit integers).
func (c *Codec[T, O]) AppendOrdered(dst []byte, col *column.Vector[T], row int) ([]byte, error) {
	if !c.ops.orderable() {
		return dst, fmt.Errorf("%s: order-preserving encode: %w", c.kind, errs.ErrUnsupportedOperation)
	}

	var buf [8]byte
	sz := c.ops.size()
	c.ops.putOrdered(buf[:sz], col.At(row))

	return append(dst, buf[:sz]...), nil
}

// DeserializeOrdered reads one order-preserving value from r and appends
// it to col. Fails with errs.ErrUnsupportedOperation for kinds without an
// order-preserving encoding.
func (c *Codec[T, O]) DeserializeOrdered(col *column.Vector[T], r *Reader) error {
	if !c.ops.orderable() {
		return fmt.Errorf("%s: order-preserving decode: %w", c.kind, errs.ErrUnsupportedOperation)
	}

	b, err := r.ReadFull(c.ops.size())
	if err != nil {
		return err
	}
	col.Append(c.ops.getOrdered(b))

	return nil
}
