package encoding

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numcodec/column"
	"github.com/arloliu/numcodec/endian"
	"github.com/arloliu/numcodec/errs"
)

func orderedBytes[T any, O Ops[T]](t *testing.T, codec *Codec[T, O], v T) []byte {
	t.Helper()

	col := column.NewVector[T]()
	col.Append(v)
	b, err := codec.AppendOrdered(nil, col, 0)
	require.NoError(t, err)

	return b
}

func TestCodec_OrderedInt32(t *testing.T) {
	require := require.New(t)

	codec, err := NewInt32Codec()
	require.NoError(err)
	require.True(codec.SupportsOrderPreserving())

	// Byte order must match numeric order across the sign boundary.
	values := []int32{math.MinInt32, -1000, -1, 0, 1, 1000, math.MaxInt32}
	var prev []byte
	for i, v := range values {
		b := orderedBytes(t, codec, v)
		require.Len(b, 4)
		if i > 0 {
			require.Negative(bytes.Compare(prev, b), "%d must sort before %d", values[i-1], v)
		}
		prev = b
	}

	// Known encodings: the sign bit is flipped, bytes are big-endian.
	require.Equal([]byte{0x80, 0x00, 0x00, 0x00}, orderedBytes(t, codec, int32(0)))
	require.Equal([]byte{0x7F, 0xFF, 0xFF, 0xFF}, orderedBytes(t, codec, int32(-1)))
	require.Equal([]byte{0x00, 0x00, 0x00, 0x00}, orderedBytes(t, codec, int32(math.MinInt32)))
	require.Equal([]byte{0xFF, 0xFF, 0xFF, 0xFF}, orderedBytes(t, codec, int32(math.MaxInt32)))
}

func TestCodec_OrderedUint64(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint64Codec()
	require.NoError(err)

	// Unsigned kinds encode as plain big-endian.
	require.Equal([]byte{0, 0, 0, 0, 0, 0, 0, 0}, orderedBytes(t, codec, uint64(0)))
	require.Equal([]byte{0, 0, 0, 0, 0, 0, 0x30, 0x39}, orderedBytes(t, codec, uint64(12345)))

	var prev []byte
	for i, v := range []uint64{0, 1, 255, 256, 1 << 32, math.MaxUint64} {
		b := orderedBytes(t, codec, v)
		if i > 0 {
			require.Negative(bytes.Compare(prev, b), "ordering broken at %d", v)
		}
		prev = b
	}
}

func TestCodec_OrderedRoundTrip(t *testing.T) {
	require := require.New(t)

	i16, err := NewInt16Codec()
	require.NoError(err)

	values := []int16{math.MinInt16, -257, -1, 0, 1, 257, math.MaxInt16}
	var buf []byte
	col := column.NewVector[int16]()
	col.AppendSlice(values)
	for row := range col.Len() {
		buf, err = i16.AppendOrdered(buf, col, row)
		require.NoError(err)
	}

	out := column.NewVector[int16]()
	r := NewReader(buf)
	for range values {
		require.NoError(i16.DeserializeOrdered(out, r))
	}
	require.Equal(values, out.Data())
	require.True(r.EOF())
}

func TestCodec_OrderedRoundTripAllWidths(t *testing.T) {
	require := require.New(t)

	check := func(encode func() ([]byte, error), size int) {
		b, err := encode()
		require.NoError(err)
		require.Len(b, size)
	}

	i8, _ := NewInt8Codec()
	col8 := column.NewVector[int8]()
	col8.Append(-100)
	check(func() ([]byte, error) { return i8.AppendOrdered(nil, col8, 0) }, 1)

	u8, _ := NewUint8Codec()
	colU8 := column.NewVector[uint8]()
	colU8.Append(200)
	check(func() ([]byte, error) { return u8.AppendOrdered(nil, colU8, 0) }, 1)

	u32, _ := NewUint32Codec()
	colU32 := column.NewVector[uint32]()
	colU32.Append(0xDEADBEEF)
	check(func() ([]byte, error) { return u32.AppendOrdered(nil, colU32, 0) }, 4)

	i64, _ := NewInt64Codec()
	col64 := column.NewVector[int64]()
	col64.Append(math.MinInt64)
	check(func() ([]byte, error) { return i64.AppendOrdered(nil, col64, 0) }, 8)
}

func TestCodec_OrderedUnsupportedKinds(t *testing.T) {
	require := require.New(t)

	f64, err := NewFloat64Codec()
	require.NoError(err)
	require.False(f64.SupportsOrderPreserving())

	colF := column.NewVector[float64]()
	colF.Append(1.0)
	_, err = f64.AppendOrdered(nil, colF, 0)
	require.ErrorIs(err, errs.ErrUnsupportedOperation)
	require.ErrorIs(f64.DeserializeOrdered(colF, NewReader([]byte{0})), errs.ErrUnsupportedOperation)

	i128, err := NewInt128Codec()
	require.NoError(err)
	require.False(i128.SupportsOrderPreserving())

	u256, err := NewUint256Codec()
	require.NoError(err)
	require.False(u256.SupportsOrderPreserving())
}

func TestCodec_OrderedEngineIndependent(t *testing.T) {
	require := require.New(t)

	// The ordered encoding is defined as big-endian regardless of the
	// codec's binary engine.
	le, err := NewInt32Codec()
	require.NoError(err)
	be, err := NewInt32Codec(WithEngine(endian.GetBigEndianEngine()))
	require.NoError(err)

	col := column.NewVector[int32]()
	col.Append(-123456)

	a, err := le.AppendOrdered(nil, col, 0)
	require.NoError(err)
	b, err := be.AppendOrdered(nil, col, 0)
	require.NoError(err)
	require.Equal(a, b)
}
