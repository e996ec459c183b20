// Package column provides the in-memory columnar container the codecs
// operate on.
//
// A Vector is an ordered, append-friendly sequence of fixed-width numeric
// values of one kind. It is exclusively owned by the caller for the
// duration of a transcoding call: serialize treats it as read-only,
// deserialize only appends.
package column

import (
	"unsafe"
)

type config struct {
	capacity int
	zeroCopy bool
}

// Option configures a Vector at construction time.
type Option func(*config)

// WithCapacity pre-allocates room for n values.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithZeroCopyBuffer marks the vector as exposing a writable zero-copy
// buffer, allowing bulk binary decode to read directly into the vector's
// storage from a cache-backed byte source.
func WithZeroCopyBuffer() Option {
	return func(c *config) {
		c.zeroCopy = true
	}
}

// Vector is a columnar container of values of a single numeric kind.
//
// The element type T must be a fixed-width value type; the codecs in the
// encoding package pair each Vector instantiation with the matching kind.
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data     []T
	zeroCopy bool
}

// NewVector creates an empty vector.
func NewVector[T any](opts ...Option) *Vector[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &Vector[T]{zeroCopy: cfg.zeroCopy}
	if cfg.capacity > 0 {
		v.data = make([]T, 0, cfg.capacity)
	}

	return v
}

// Len returns the number of values in the vector.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// At returns the value at row. Panics if row is out of bounds.
func (v *Vector[T]) At(row int) T {
	return v.data[row]
}

// Data returns the underlying value slice.
//
// The slice is valid until the next append; callers must not grow it.
func (v *Vector[T]) Data() []T {
	return v.data
}

// Append appends a single value to the tail of the vector.
func (v *Vector[T]) Append(val T) {
	v.data = append(v.data, val)
}

// AppendSlice appends all values to the tail of the vector.
func (v *Vector[T]) AppendSlice(vals []T) {
	v.data = append(v.data, vals...)
}

// AppendWithFilter appends the values of one decoded batch, retaining only
// rows selected by the filter. Filter indices are relative to the start of
// vals. A nil filter retains every row.
//
// Returns the number of values appended.
func (v *Vector[T]) AppendWithFilter(vals []T, filter *RowFilter) int {
	if filter == nil {
		v.data = append(v.data, vals...)
		return len(vals)
	}

	appended := 0
	for i, val := range vals {
		if filter.Contains(uint32(i)) {
			v.data = append(v.data, val)
			appended++
		}
	}

	return appended
}

// Reserve ensures capacity for n additional values without reallocating.
func (v *Vector[T]) Reserve(n int) {
	if n <= 0 || cap(v.data)-len(v.data) >= n {
		return
	}

	grown := make([]T, len(v.data), len(v.data)+n)
	copy(grown, v.data)
	v.data = grown
}

// Truncate shrinks the vector to n values. Panics if n exceeds Len.
func (v *Vector[T]) Truncate(n int) {
	if n < 0 || n > len(v.data) {
		panic("Truncate: invalid length")
	}
	v.data = v.data[:n]
}

// HasZeroCopyBuffer reports whether the vector was built with
// WithZeroCopyBuffer and therefore allows GrowZeroCopy.
func (v *Vector[T]) HasZeroCopyBuffer() bool {
	return v.zeroCopy
}

// GrowZeroCopy extends the vector by n values and returns the raw byte view
// of the newly appended tail, for a byte source to fill directly.
//
// The view is only meaningful for kinds whose in-memory layout equals their
// wire layout; the codec gates the zero-copy path accordingly. If the
// source delivers fewer values than requested the caller shrinks the vector
// back with Truncate.
func (v *Vector[T]) GrowZeroCopy(n int) []byte {
	if !v.zeroCopy {
		panic("GrowZeroCopy: vector has no zero-copy buffer")
	}
	if n <= 0 {
		return nil
	}

	start := len(v.data)
	v.Reserve(n)
	v.data = v.data[:start+n]

	var zero T
	size := int(unsafe.Sizeof(zero))

	return unsafe.Slice((*byte)(unsafe.Pointer(&v.data[start])), n*size)
}
