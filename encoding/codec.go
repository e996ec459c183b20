package encoding

import (
	"errors"
	"fmt"
	"math"

	"github.com/holiman/uint256"
	num "github.com/shabbyrobe/go-num"

	"github.com/arloliu/numcodec/endian"
	"github.com/arloliu/numcodec/errs"
	"github.com/arloliu/numcodec/format"
	"github.com/arloliu/numcodec/internal/options"
	"github.com/arloliu/numcodec/internal/pool"
	"github.com/arloliu/numcodec/overflow"
)

// CodecConfig holds the codec construction parameters.
type CodecConfig struct {
	engine   endian.EndianEngine
	nullable bool
}

// CodecOption is a functional option for configuring a Codec.
type CodecOption = options.Option[*CodecConfig]

// WithEngine sets the byte-order engine used by the binary formats.
//
// The default engine is little-endian.
func WithEngine(engine endian.EndianEngine) CodecOption {
	return options.New(func(cfg *CodecConfig) error {
		if engine == nil {
			return errors.New("endian engine cannot be nil")
		}
		cfg.engine = engine

		return nil
	})
}

// WithNullable marks the codec as wrapped by a nullable serialization
// layer. It only changes the float overflow policy: a non-finite parsed
// float raises the overflow.Float flag for the wrapper to consume instead
// of clearing it.
func WithNullable() CodecOption {
	return options.NoError(func(cfg *CodecConfig) {
		cfg.nullable = true
	})
}

// Codec transcodes values of one numeric kind between the in-memory column
// representation and the external formats. T is the element type and O the
// kind's trait bundle; use the exported aliases and constructors rather
// than instantiating Codec directly.
//
// A Codec is immutable after construction and safe for concurrent use.
type Codec[T any, O Ops[T]] struct {
	ops      O
	engine   endian.EndianEngine
	kind     format.Kind
	nullable bool
	scratch  *pool.SlicePool[T]
}

func newCodec[T any, O Ops[T]](kind format.Kind, opts []CodecOption) (*Codec[T, O], error) {
	cfg := &CodecConfig{engine: endian.GetLittleEndianEngine()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Codec[T, O]{
		engine:   cfg.engine,
		kind:     kind,
		nullable: cfg.nullable,
		scratch:  pool.NewSlicePool[T](),
	}, nil
}

// Kind returns the numeric kind this codec handles.
func (c *Codec[T, O]) Kind() format.Kind { return c.kind }

// Engine returns the byte-order engine used by the binary formats.
func (c *Codec[T, O]) Engine() endian.EndianEngine { return c.engine }

// checkOverflow applies the post-parse overflow policy to one value.
//
// When overflow checking is disabled the policy is a no-op and both
// flags stay as the parser left them. Otherwise integer kinds consume
// the Integer flag exactly once, turning a raised flag into
// ErrValueOutOfRange, and float kinds never fail: a non-finite value
// raises the Float flag when the codec is nullable-wrapped and clears
// it otherwise.
func (c *Codec[T, O]) checkOverflow(v T, settings *format.Settings, st *overflow.State) error {
	if settings != nil && !settings.CheckDataOverflow {
		return nil
	}

	if c.ops.integer() {
		if st.Get(overflow.Integer) {
			st.Unset(overflow.Integer)

			return fmt.Errorf("%s: %w", c.kind, errs.ErrValueOutOfRange)
		}

		return nil
	}

	f := c.ops.floatValue(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if c.nullable {
			st.Set(overflow.Float)
		} else {
			st.Unset(overflow.Float)
		}
	}

	return nil
}

// Int8Codec transcodes Int8 column values.
type Int8Codec = Codec[int8, IntOps[int8]]

// Int16Codec transcodes Int16 column values.
type Int16Codec = Codec[int16, IntOps[int16]]

// Int32Codec transcodes Int32 column values.
type Int32Codec = Codec[int32, IntOps[int32]]

// Int64Codec transcodes Int64 column values.
type Int64Codec = Codec[int64, IntOps[int64]]

// Uint8Codec transcodes UInt8 column values.
type Uint8Codec = Codec[uint8, IntOps[uint8]]

// Uint16Codec transcodes UInt16 column values.
type Uint16Codec = Codec[uint16, IntOps[uint16]]

// Uint32Codec transcodes UInt32 column values.
type Uint32Codec = Codec[uint32, IntOps[uint32]]

// Uint64Codec transcodes UInt64 column values.
type Uint64Codec = Codec[uint64, IntOps[uint64]]

// Int128Codec transcodes Int128 column values.
type Int128Codec = Codec[num.I128, Int128Ops]

// Uint128Codec transcodes UInt128 column values.
type Uint128Codec = Codec[num.U128, Uint128Ops]

// Int256Codec transcodes Int256 column values stored as two's-complement
// uint256.Int.
type Int256Codec = Codec[uint256.Int, Int256Ops]

// Uint256Codec transcodes UInt256 column values.
type Uint256Codec = Codec[uint256.Int, Uint256Ops]

// Float32Codec transcodes Float32 column values.
type Float32Codec = Codec[float32, FloatOps[float32]]

// Float64Codec transcodes Float64 column values.
type Float64Codec = Codec[float64, FloatOps[float64]]

// NewInt8Codec creates a codec for the Int8 kind.
func NewInt8Codec(opts ...CodecOption) (*Int8Codec, error) {
	return newCodec[int8, IntOps[int8]](format.KindInt8, opts)
}

// NewInt16Codec creates a codec for the Int16 kind.
func NewInt16Codec(opts ...CodecOption) (*Int16Codec, error) {
	return newCodec[int16, IntOps[int16]](format.KindInt16, opts)
}

// NewInt32Codec creates a codec for the Int32 kind.
func NewInt32Codec(opts ...CodecOption) (*Int32Codec, error) {
	return newCodec[int32, IntOps[int32]](format.KindInt32, opts)
}

// NewInt64Codec creates a codec for the Int64 kind.
func NewInt64Codec(opts ...CodecOption) (*Int64Codec, error) {
	return newCodec[int64, IntOps[int64]](format.KindInt64, opts)
}

// NewUint8Codec creates a codec for the UInt8 kind.
func NewUint8Codec(opts ...CodecOption) (*Uint8Codec, error) {
	return newCodec[uint8, IntOps[uint8]](format.KindUint8, opts)
}

// NewUint16Codec creates a codec for the UInt16 kind.
func NewUint16Codec(opts ...CodecOption) (*Uint16Codec, error) {
	return newCodec[uint16, IntOps[uint16]](format.KindUint16, opts)
}

// NewUint32Codec creates a codec for the UInt32 kind.
func NewUint32Codec(opts ...CodecOption) (*Uint32Codec, error) {
	return newCodec[uint32, IntOps[uint32]](format.KindUint32, opts)
}

// NewUint64Codec creates a codec for the UInt64 kind.
func NewUint64Codec(opts ...CodecOption) (*Uint64Codec, error) {
	return newCodec[uint64, IntOps[uint64]](format.KindUint64, opts)
}

// NewInt128Codec creates a codec for the Int128 kind.
func NewInt128Codec(opts ...CodecOption) (*Int128Codec, error) {
	return newCodec[num.I128, Int128Ops](format.KindInt128, opts)
}

// NewUint128Codec creates a codec for the UInt128 kind.
func NewUint128Codec(opts ...CodecOption) (*Uint128Codec, error) {
	return newCodec[num.U128, Uint128Ops](format.KindUint128, opts)
}

// NewInt256Codec creates a codec for the Int256 kind.
func NewInt256Codec(opts ...CodecOption) (*Int256Codec, error) {
	return newCodec[uint256.Int, Int256Ops](format.KindInt256, opts)
}

// NewUint256Codec creates a codec for the UInt256 kind.
func NewUint256Codec(opts ...CodecOption) (*Uint256Codec, error) {
	return newCodec[uint256.Int, Uint256Ops](format.KindUint256, opts)
}

// NewFloat32Codec creates a codec for the Float32 kind.
func NewFloat32Codec(opts ...CodecOption) (*Float32Codec, error) {
	return newCodec[float32, FloatOps[float32]](format.KindFloat32, opts)
}

// NewFloat64Codec creates a codec for the Float64 kind.
func NewFloat64Codec(opts ...CodecOption) (*Float64Codec, error) {
	return newCodec[float64, FloatOps[float64]](format.KindFloat64, opts)
}
