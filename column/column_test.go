package column

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector_AppendAndAccess(t *testing.T) {
	require := require.New(t)

	v := NewVector[int32]()
	require.Equal(0, v.Len())

	v.Append(10)
	v.AppendSlice([]int32{20, 30})
	require.Equal(3, v.Len())
	require.Equal(int32(10), v.At(0))
	require.Equal(int32(30), v.At(2))
	require.Equal([]int32{10, 20, 30}, v.Data())
}

func TestVector_WithCapacity(t *testing.T) {
	v := NewVector[uint64](WithCapacity(128))
	require.Equal(t, 0, v.Len())

	for i := range uint64(128) {
		v.Append(i)
	}
	require.Equal(t, 128, v.Len())
}

func TestVector_Reserve(t *testing.T) {
	v := NewVector[int16]()
	v.Append(1)
	v.Reserve(100)

	data := v.Data()
	for i := int16(0); i < 100; i++ {
		v.Append(i)
	}

	// Reserve must have pre-allocated enough for the appends above.
	require.Equal(t, int16(1), data[0])
	require.Equal(t, 101, v.Len())
}

func TestVector_Truncate(t *testing.T) {
	require := require.New(t)

	v := NewVector[int8]()
	v.AppendSlice([]int8{1, 2, 3, 4})

	v.Truncate(2)
	require.Equal(2, v.Len())
	require.Equal([]int8{1, 2}, v.Data())

	v.Truncate(0)
	require.Equal(0, v.Len())

	require.Panics(func() { v.Truncate(1) })
	require.Panics(func() { v.Truncate(-1) })
}

func TestVector_AppendWithFilter(t *testing.T) {
	require := require.New(t)

	v := NewVector[int64]()
	vals := []int64{100, 200, 300, 400, 500}

	n := v.AppendWithFilter(vals, nil)
	require.Equal(5, n)
	require.Equal(vals, v.Data())

	filtered := NewVector[int64]()
	filter := NewRowFilterOf(0, 2, 4)
	n = filtered.AppendWithFilter(vals, filter)
	require.Equal(3, n)
	require.Equal([]int64{100, 300, 500}, filtered.Data())
}

func TestVector_AppendWithFilterBatchRelative(t *testing.T) {
	require := require.New(t)

	v := NewVector[int32]()
	filter := NewRowFilterOf(1)

	// The same filter selects index 1 of each batch independently of how
	// many values the vector already holds.
	v.AppendWithFilter([]int32{10, 11}, filter)
	v.AppendWithFilter([]int32{20, 21}, filter)

	require.Equal([]int32{11, 21}, v.Data())
}

func TestVector_GrowZeroCopy(t *testing.T) {
	require := require.New(t)

	v := NewVector[uint32](WithZeroCopyBuffer())
	require.True(v.HasZeroCopyBuffer())

	v.Append(7)
	raw := v.GrowZeroCopy(2)
	require.Len(raw, 8)
	require.Equal(3, v.Len())

	// Bytes written through the view must be visible as values.
	binary.NativeEndian.PutUint32(raw[0:4], 0xAABBCCDD)
	binary.NativeEndian.PutUint32(raw[4:8], 0x11223344)
	require.Equal(uint32(7), v.At(0))
	require.Equal(uint32(0xAABBCCDD), v.At(1))
	require.Equal(uint32(0x11223344), v.At(2))
}

func TestVector_GrowZeroCopyRequiresBuffer(t *testing.T) {
	v := NewVector[uint32]()
	require.False(t, v.HasZeroCopyBuffer())
	require.Panics(t, func() { v.GrowZeroCopy(1) })
}

func TestRowFilter_Basics(t *testing.T) {
	require := require.New(t)

	f := NewRowFilter()
	require.Equal(uint64(0), f.Cardinality())

	f.Add(3)
	f.AddRange(10, 13)
	require.True(f.Contains(3))
	require.True(f.Contains(10))
	require.True(f.Contains(12))
	require.False(f.Contains(13))
	require.False(f.Contains(0))
	require.Equal(uint64(4), f.Cardinality())
}
