package encoding

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/numcodec/column"
	"github.com/arloliu/numcodec/endian"
	"github.com/arloliu/numcodec/errs"
)

// fakeCachedSource drives the zero-copy decode path in isolation: it
// serves a fixed number of bytes through TryZeroCopyRead and the rest
// through Read.
type fakeCachedSource struct {
	data     []byte
	pos      int
	zcBudget int
	backed   bool
}

func (s *fakeCachedSource) Read(p []byte) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.pos:])
	s.pos += n

	return n, nil
}

func (s *fakeCachedSource) TryZeroCopyRead(dst []byte) (int, bool, error) {
	avail := s.zcBudget
	if avail > len(s.data)-s.pos {
		avail = len(s.data) - s.pos
	}
	if avail > len(dst) {
		avail = len(dst)
	}
	n := copy(dst[:avail], s.data[s.pos:])
	s.pos += n
	s.zcBudget -= n

	return n, n < len(dst), nil
}

func (s *fakeCachedSource) IsCacheBacked() bool { return s.backed }

func TestCodec_SerializeBinaryBulk(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint16Codec()
	require.NoError(err)

	col := column.NewVector[uint16]()
	col.AppendSlice([]uint16{0x0101, 0x0202, 0x0303, 0x0404})

	// Full column.
	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, col, 0, 0))
	require.Equal([]byte{0x01, 0x01, 0x02, 0x02, 0x03, 0x03, 0x04, 0x04}, buf.Bytes())

	// Offset run.
	buf.Reset()
	require.NoError(codec.SerializeBinaryBulk(&buf, col, 2, 1))
	require.Equal([]byte{0x03, 0x03}, buf.Bytes())

	// Limit overrunning the column is clamped.
	buf.Reset()
	require.NoError(codec.SerializeBinaryBulk(&buf, col, 3, 100))
	require.Equal([]byte{0x04, 0x04}, buf.Bytes())

	// Offset at the end writes nothing.
	buf.Reset()
	require.NoError(codec.SerializeBinaryBulk(&buf, col, 4, 0))
	require.Equal(0, buf.Len())

	require.Error(codec.SerializeBinaryBulk(&buf, col, 5, 0))
	require.Error(codec.SerializeBinaryBulk(&buf, col, -1, 0))
}

func TestCodec_SerializeBinaryBulkBigEndian(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint32Codec(WithEngine(endian.GetBigEndianEngine()))
	require.NoError(err)

	col := column.NewVector[uint32]()
	col.Append(0x11223344)

	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, col, 0, 0))
	require.Equal([]byte{0x11, 0x22, 0x33, 0x44}, buf.Bytes())
}

func TestCodec_BulkRoundTrip(t *testing.T) {
	require := require.New(t)

	codec, err := NewInt64Codec()
	require.NoError(err)

	col := column.NewVector[int64]()
	for i := range int64(1000) {
		col.Append(i*i - 500)
	}

	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, col, 0, 0))

	out := column.NewVector[int64]()
	n, err := codec.DeserializeBinaryBulk(out, &buf, 1000, nil)
	require.NoError(err)
	require.Equal(1000, n)
	require.Equal(col.Data(), out.Data())
}

func TestCodec_BulkRoundTripNonNativeOrder(t *testing.T) {
	require := require.New(t)

	engine := endian.GetBigEndianEngine()
	if !endian.IsNativeLittleEndian() {
		engine = endian.GetLittleEndianEngine()
	}

	codec, err := NewFloat64Codec(WithEngine(engine))
	require.NoError(err)

	col := column.NewVector[float64]()
	col.AppendSlice([]float64{1.5, -2.25, math.MaxFloat64, 0})

	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, col, 0, 0))

	out := column.NewVector[float64]()
	n, err := codec.DeserializeBinaryBulk(out, &buf, 4, nil)
	require.NoError(err)
	require.Equal(4, n)
	require.Equal(col.Data(), out.Data())
}

func TestCodec_BulkRoundTripWide(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint256Codec()
	require.NoError(err)

	col := column.NewVector[uint256.Int]()
	for i := range uint64(50) {
		v := uint256.NewInt(i)
		v.Lsh(v, uint(i%200))
		col.Append(*v)
	}

	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, col, 0, 0))
	require.Equal(50*32, buf.Len())

	out := column.NewVector[uint256.Int]()
	n, err := codec.DeserializeBinaryBulk(out, &buf, 50, nil)
	require.NoError(err)
	require.Equal(50, n)
	require.Equal(col.Data(), out.Data())
}

func TestCodec_BulkDeserializeShortSource(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint32Codec()
	require.NoError(err)

	src := column.NewVector[uint32]()
	src.AppendSlice([]uint32{1, 2, 3})

	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, src, 0, 0))

	// Asking for more values than the stream holds appends what is there.
	out := column.NewVector[uint32]()
	n, err := codec.DeserializeBinaryBulk(out, &buf, 10, nil)
	require.NoError(err)
	require.Equal(3, n)
	require.Equal(src.Data(), out.Data())
}

func TestCodec_BulkDeserializeTrailingPartialValue(t *testing.T) {
	codec, err := NewUint32Codec()
	require.NoError(t, err)

	out := column.NewVector[uint32]()
	_, err = codec.DeserializeBinaryBulk(out, bytes.NewReader([]byte{1, 2, 3, 4, 5}), 2, nil)
	require.ErrorIs(t, err, errs.ErrMalformedInput)
}

func TestCodec_BulkDeserializeWithFilter(t *testing.T) {
	require := require.New(t)

	codec, err := NewInt16Codec()
	require.NoError(err)

	src := column.NewVector[int16]()
	src.AppendSlice([]int16{10, 20, 30, 40, 50})

	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, src, 0, 0))

	out := column.NewVector[int16]()
	filter := column.NewRowFilterOf(1, 3)
	n, err := codec.DeserializeBinaryBulk(out, &buf, 5, filter)
	require.NoError(err)
	require.Equal(2, n)
	require.Equal([]int16{20, 40}, out.Data())
}

func TestCodec_BulkDeserializeZeroLimit(t *testing.T) {
	codec, err := NewInt8Codec()
	require.NoError(t, err)

	out := column.NewVector[int8]()
	n, err := codec.DeserializeBinaryBulk(out, bytes.NewReader([]byte{1, 2}), 0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestCodec_ZeroCopyFullDelivery(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint64Codec()
	require.NoError(err)

	src := column.NewVector[uint64]()
	for i := range uint64(100) {
		src.Append(i * 7)
	}
	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, src, 0, 0))

	out := column.NewVector[uint64](column.WithZeroCopyBuffer())
	fake := &fakeCachedSource{data: buf.Bytes(), zcBudget: buf.Len(), backed: true}
	n, err := codec.DeserializeBinaryBulk(out, fake, 100, nil)
	require.NoError(err)
	require.Equal(100, n)
	require.Equal(src.Data(), out.Data())
}

func TestCodec_ZeroCopyPartialDelivery(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint64Codec()
	require.NoError(err)

	src := column.NewVector[uint64]()
	for i := range uint64(100) {
		src.Append(i * 13)
	}
	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, src, 0, 0))

	// 40 whole values through the zero-copy path, the rest classic.
	out := column.NewVector[uint64](column.WithZeroCopyBuffer())
	fake := &fakeCachedSource{data: buf.Bytes(), zcBudget: 40 * 8, backed: true}
	n, err := codec.DeserializeBinaryBulk(out, fake, 100, nil)
	require.NoError(err)
	require.Equal(100, n)
	require.Equal(src.Data(), out.Data())
}

func TestCodec_ZeroCopyMidValueSplit(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint64Codec()
	require.NoError(err)

	src := column.NewVector[uint64]()
	for i := range uint64(10) {
		src.Append(0x0101010101010101 * i)
	}
	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, src, 0, 0))

	// The zero-copy budget ends 3 bytes into the fourth value; the split
	// value must be completed from the classic path.
	out := column.NewVector[uint64](column.WithZeroCopyBuffer())
	fake := &fakeCachedSource{data: buf.Bytes(), zcBudget: 3*8 + 3, backed: true}
	n, err := codec.DeserializeBinaryBulk(out, fake, 10, nil)
	require.NoError(err)
	require.Equal(10, n)
	require.Equal(src.Data(), out.Data())
}

func TestCodec_ZeroCopySkippedWithoutCacheBacking(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint64Codec()
	require.NoError(err)

	src := column.NewVector[uint64]()
	src.AppendSlice([]uint64{5, 6, 7})
	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, src, 0, 0))

	// IsCacheBacked false forces the classic path even though the vector
	// has a zero-copy buffer.
	out := column.NewVector[uint64](column.WithZeroCopyBuffer())
	fake := &fakeCachedSource{data: buf.Bytes(), zcBudget: 0, backed: false}
	n, err := codec.DeserializeBinaryBulk(out, fake, 3, nil)
	require.NoError(err)
	require.Equal(3, n)
	require.Equal(src.Data(), out.Data())
}

func TestCodec_ZeroCopySkippedWithFilter(t *testing.T) {
	require := require.New(t)

	codec, err := NewUint64Codec()
	require.NoError(err)

	src := column.NewVector[uint64]()
	src.AppendSlice([]uint64{5, 6, 7, 8})
	var buf bytes.Buffer
	require.NoError(codec.SerializeBinaryBulk(&buf, src, 0, 0))

	out := column.NewVector[uint64](column.WithZeroCopyBuffer())
	fake := &fakeCachedSource{data: buf.Bytes(), zcBudget: len(buf.Bytes()), backed: true}
	filter := column.NewRowFilterOf(0, 3)
	n, err := codec.DeserializeBinaryBulk(out, fake, 4, filter)
	require.NoError(err)
	require.Equal(2, n)
	require.Equal([]uint64{5, 8}, out.Data())
}
