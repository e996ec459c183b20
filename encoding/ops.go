package encoding

import (
	"math"
	"strconv"
	"unsafe"

	"github.com/holiman/uint256"
	num "github.com/shabbyrobe/go-num"

	"github.com/arloliu/numcodec/endian"
	"github.com/arloliu/numcodec/overflow"
)

// Ops is the numeric trait bundle a Codec is parameterized with. It
// resolves the per-kind properties and primitive conversions at compile
// time: byte width, signedness, integer-vs-float, boolean-literal support
// (8-bit kinds), layout plainness and order-preserving capability, plus
// the text and binary primitives for one value.
//
// All implementations are zero-size value types; the generic instantiation
// removes the dispatch cost.
type Ops[T any] interface {
	size() int
	integer() bool
	bits8() bool
	orderable() bool
	// plain reports whether the in-memory layout of T equals the bulk wire
	// layout when the engine matches host byte order, enabling the
	// reinterpret fast paths.
	plain() bool
	nanOrZero() T
	fromBool(b bool) T
	floatValue(v T) float64
	appendText(dst []byte, v T) []byte
	parseText(r *Reader, checked bool, st *overflow.State) (T, error)
	put(engine endian.EndianEngine, b []byte, v T)
	get(engine endian.EndianEngine, b []byte) T
	putOrdered(b []byte, v T)
	getOrdered(b []byte) T
}

func isBigEndianEngine(engine endian.EndianEngine) bool {
	return engine == endian.GetBigEndianEngine()
}

// IntOps is the trait bundle for the eight native integer kinds.
type IntOps[T Integer] struct{}

func (IntOps[T]) size() int {
	var z T
	return int(unsafe.Sizeof(z))
}

func (IntOps[T]) integer() bool { return true }

func (o IntOps[T]) bits8() bool { return o.size() == 1 }

func (IntOps[T]) orderable() bool { return true }

func (IntOps[T]) plain() bool { return true }

func (IntOps[T]) nanOrZero() T { return 0 }

func (IntOps[T]) fromBool(b bool) T {
	if b {
		return 1
	}

	return 0
}

func (IntOps[T]) floatValue(T) float64 { return 0 }

func (IntOps[T]) appendText(dst []byte, v T) []byte {
	if isSigned[T]() {
		return strconv.AppendInt(dst, int64(v), 10)
	}

	return strconv.AppendUint(dst, uint64(v), 10)
}

func (IntOps[T]) parseText(r *Reader, checked bool, st *overflow.State) (T, error) {
	return parseIntText[T](r, checked, st)
}

func (o IntOps[T]) put(engine endian.EndianEngine, b []byte, v T) {
	switch o.size() {
	case 1:
		b[0] = byte(v)
	case 2:
		engine.PutUint16(b, uint16(v))
	case 4:
		engine.PutUint32(b, uint32(v))
	default:
		engine.PutUint64(b, uint64(v))
	}
}

func (o IntOps[T]) get(engine endian.EndianEngine, b []byte) T {
	switch o.size() {
	case 1:
		return T(b[0])
	case 2:
		return T(engine.Uint16(b))
	case 4:
		return T(engine.Uint32(b))
	default:
		return T(engine.Uint64(b))
	}
}

func (IntOps[T]) putOrdered(b []byte, v T) { putOrderPreserving(b, v) }

func (IntOps[T]) getOrdered(b []byte) T { return getOrderPreserving[T](b) }

// FloatOps is the trait bundle for the two floating-point kinds.
type FloatOps[T Float] struct{}

func (FloatOps[T]) size() int {
	var z T
	return int(unsafe.Sizeof(z))
}

func (FloatOps[T]) integer() bool { return false }

func (FloatOps[T]) bits8() bool { return false }

func (FloatOps[T]) orderable() bool { return false }

func (FloatOps[T]) plain() bool { return true }

func (FloatOps[T]) nanOrZero() T { return T(math.NaN()) }

func (FloatOps[T]) fromBool(b bool) T {
	if b {
		return 1
	}

	return 0
}

func (FloatOps[T]) floatValue(v T) float64 { return float64(v) }

func (o FloatOps[T]) appendText(dst []byte, v T) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, o.size()*8)
}

func (FloatOps[T]) parseText(r *Reader, _ bool, _ *overflow.State) (T, error) {
	return parseFloatText[T](r)
}

func (o FloatOps[T]) put(engine endian.EndianEngine, b []byte, v T) {
	if o.size() == 4 {
		engine.PutUint32(b, math.Float32bits(float32(v)))
	} else {
		engine.PutUint64(b, math.Float64bits(float64(v)))
	}
}

func (o FloatOps[T]) get(engine endian.EndianEngine, b []byte) T {
	if o.size() == 4 {
		return T(math.Float32frombits(engine.Uint32(b)))
	}

	return T(math.Float64frombits(engine.Uint64(b)))
}

func (FloatOps[T]) putOrdered([]byte, T) {
	panic("putOrdered: float kinds have no order-preserving encoding")
}

func (FloatOps[T]) getOrdered([]byte) T {
	panic("getOrdered: float kinds have no order-preserving encoding")
}

// Uint128Ops is the trait bundle for the UInt128 kind.
type Uint128Ops struct{}

func (Uint128Ops) size() int { return 16 }

func (Uint128Ops) integer() bool { return true }

func (Uint128Ops) bits8() bool { return false }

func (Uint128Ops) orderable() bool { return false }

func (Uint128Ops) plain() bool { return false }

func (Uint128Ops) nanOrZero() num.U128 { return num.U128{} }

func (Uint128Ops) fromBool(b bool) num.U128 {
	if b {
		return num.U128From64(1)
	}

	return num.U128{}
}

func (Uint128Ops) floatValue(num.U128) float64 { return 0 }

func (Uint128Ops) appendText(dst []byte, v num.U128) []byte {
	return append(dst, v.String()...)
}

func (Uint128Ops) parseText(r *Reader, checked bool, st *overflow.State) (num.U128, error) {
	return parseU128Text(r, checked, st)
}

func (Uint128Ops) put(engine endian.EndianEngine, b []byte, v num.U128) {
	hi, lo := v.Raw()
	if isBigEndianEngine(engine) {
		engine.PutUint64(b[0:8], hi)
		engine.PutUint64(b[8:16], lo)
	} else {
		engine.PutUint64(b[0:8], lo)
		engine.PutUint64(b[8:16], hi)
	}
}

func (Uint128Ops) get(engine endian.EndianEngine, b []byte) num.U128 {
	if isBigEndianEngine(engine) {
		return num.U128FromRaw(engine.Uint64(b[0:8]), engine.Uint64(b[8:16]))
	}

	return num.U128FromRaw(engine.Uint64(b[8:16]), engine.Uint64(b[0:8]))
}

func (Uint128Ops) putOrdered([]byte, num.U128) {
	panic("putOrdered: 128-bit kinds have no order-preserving encoding")
}

func (Uint128Ops) getOrdered([]byte) num.U128 {
	panic("getOrdered: 128-bit kinds have no order-preserving encoding")
}

// Int128Ops is the trait bundle for the Int128 kind.
type Int128Ops struct{}

func (Int128Ops) size() int { return 16 }

func (Int128Ops) integer() bool { return true }

func (Int128Ops) bits8() bool { return false }

func (Int128Ops) orderable() bool { return false }

func (Int128Ops) plain() bool { return false }

func (Int128Ops) nanOrZero() num.I128 { return num.I128{} }

func (Int128Ops) fromBool(b bool) num.I128 {
	if b {
		return num.I128From64(1)
	}

	return num.I128{}
}

func (Int128Ops) floatValue(num.I128) float64 { return 0 }

func (Int128Ops) appendText(dst []byte, v num.I128) []byte {
	return append(dst, v.String()...)
}

func (Int128Ops) parseText(r *Reader, checked bool, st *overflow.State) (num.I128, error) {
	return parseI128Text(r, checked, st)
}

func (Int128Ops) put(engine endian.EndianEngine, b []byte, v num.I128) {
	Uint128Ops{}.put(engine, b, v.AsU128())
}

func (Int128Ops) get(engine endian.EndianEngine, b []byte) num.I128 {
	return Uint128Ops{}.get(engine, b).AsI128()
}

func (Int128Ops) putOrdered([]byte, num.I128) {
	panic("putOrdered: 128-bit kinds have no order-preserving encoding")
}

func (Int128Ops) getOrdered([]byte) num.I128 {
	panic("getOrdered: 128-bit kinds have no order-preserving encoding")
}

// Uint256Ops is the trait bundle for the UInt256 kind. The element type is
// uint256.Int, a [4]uint64 with the least significant limb first.
type Uint256Ops struct{}

func (Uint256Ops) size() int { return 32 }

func (Uint256Ops) integer() bool { return true }

func (Uint256Ops) bits8() bool { return false }

func (Uint256Ops) orderable() bool { return false }

func (Uint256Ops) plain() bool { return false }

func (Uint256Ops) nanOrZero() uint256.Int { return uint256.Int{} }

func (Uint256Ops) fromBool(b bool) uint256.Int {
	if b {
		return uint256.Int{1}
	}

	return uint256.Int{}
}

func (Uint256Ops) floatValue(uint256.Int) float64 { return 0 }

func (Uint256Ops) appendText(dst []byte, v uint256.Int) []byte {
	return appendU256Text(dst, v)
}

func (Uint256Ops) parseText(r *Reader, checked bool, st *overflow.State) (uint256.Int, error) {
	return parseU256Text(r, checked, st)
}

func (Uint256Ops) put(engine endian.EndianEngine, b []byte, v uint256.Int) {
	if isBigEndianEngine(engine) {
		for i := 0; i < 4; i++ {
			engine.PutUint64(b[i*8:(i+1)*8], v[3-i])
		}
	} else {
		for i := 0; i < 4; i++ {
			engine.PutUint64(b[i*8:(i+1)*8], v[i])
		}
	}
}

func (Uint256Ops) get(engine endian.EndianEngine, b []byte) uint256.Int {
	var v uint256.Int
	if isBigEndianEngine(engine) {
		for i := 0; i < 4; i++ {
			v[3-i] = engine.Uint64(b[i*8 : (i+1)*8])
		}
	} else {
		for i := 0; i < 4; i++ {
			v[i] = engine.Uint64(b[i*8 : (i+1)*8])
		}
	}

	return v
}

func (Uint256Ops) putOrdered([]byte, uint256.Int) {
	panic("putOrdered: 256-bit kinds have no order-preserving encoding")
}

func (Uint256Ops) getOrdered([]byte) uint256.Int {
	panic("getOrdered: 256-bit kinds have no order-preserving encoding")
}

// Int256Ops is the trait bundle for the Int256 kind. Values share the
// uint256.Int element type and are interpreted as two's complement.
type Int256Ops struct {
	Uint256Ops
}

func (Int256Ops) appendText(dst []byte, v uint256.Int) []byte {
	return appendI256Text(dst, v)
}

func (Int256Ops) parseText(r *Reader, checked bool, st *overflow.State) (uint256.Int, error) {
	return parseI256Text(r, checked, st)
}
