package column

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// RowFilter is an optional bitmask over row indices, consumed only by bulk
// binary decode. Row indices are relative to the batch passed to a single
// deserialize call.
//
// It wraps a 32-bit Roaring bitmap. A RowFilter is not safe for concurrent
// mutation.
type RowFilter struct {
	rb *roaring.Bitmap
}

// NewRowFilter creates an empty row filter.
func NewRowFilter() *RowFilter {
	return &RowFilter{rb: roaring.New()}
}

// NewRowFilterOf creates a filter selecting exactly the given rows.
func NewRowFilterOf(rows ...uint32) *RowFilter {
	return &RowFilter{rb: roaring.BitmapOf(rows...)}
}

// Add selects the given row.
func (f *RowFilter) Add(row uint32) {
	f.rb.Add(row)
}

// AddRange selects all rows in [start, end).
func (f *RowFilter) AddRange(start, end uint32) {
	f.rb.AddRange(uint64(start), uint64(end))
}

// Contains reports whether the given row is selected.
func (f *RowFilter) Contains(row uint32) bool {
	return f.rb.Contains(row)
}

// Cardinality returns the number of selected rows.
func (f *RowFilter) Cardinality() uint64 {
	return f.rb.GetCardinality()
}
