package pool

import "sync"

// SlicePool is a typed pool of slices used as per-call decode scratch when
// transforming flat binary blocks into columnar values.
//
// Get returns a slice with the exact requested length together with a
// cleanup function; the caller must invoke the cleanup (typically with
// defer) to return the slice to the pool.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty slice pool for element type T.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get retrieves and resizes a slice from the pool.
//
// The returned slice has length equal to size. If the pooled slice has
// insufficient capacity, a new slice is allocated.
func (sp *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := sp.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { sp.pool.Put(ptr) }
}
