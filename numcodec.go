// Package numcodec converts fixed-width numeric column values between an
// in-memory columnar representation and external formats: plain text,
// JSON, CSV, scalar and bulk binary, and an order-preserving binary
// encoding for key construction.
//
// It covers fourteen numeric kinds: signed and unsigned integers of 8,
// 16, 32, 64, 128 and 256 bits, plus 32-bit and 64-bit floats. The
// 128-bit kinds are backed by github.com/shabbyrobe/go-num and the
// 256-bit kinds by github.com/holiman/uint256.
//
// # Basic Usage
//
// Transcoding a column of Int32 values:
//
//	import (
//	    "github.com/arloliu/numcodec"
//	    "github.com/arloliu/numcodec/column"
//	    "github.com/arloliu/numcodec/encoding"
//	)
//
//	codec, _ := encoding.NewInt32Codec()
//	col := column.NewVector[int32]()
//
//	// Parse text values into the column.
//	settings := numcodec.DefaultSettings()
//	r := encoding.NewReader([]byte("42"))
//	_ = codec.DeserializeText(col, r, settings, nil)
//
//	// Bulk binary round trip.
//	var buf bytes.Buffer
//	_ = codec.SerializeBinaryBulk(&buf, col, 0, 0)
//	out := column.NewVector[int32]()
//	_, _ = codec.DeserializeBinaryBulk(out, &buf, col.Len(), nil)
//
// Bulk decode can read directly out of cached compressed segments; see
// the cache package for the segment-framed block format and the
// encoding package for the zero-copy source contract.
//
// # Package Structure
//
// This package re-exports the kind enumeration and format settings for
// convenience. The real work lives in the subpackages: format (kinds and
// settings), column (the columnar container and row filters), encoding
// (the per-kind codecs), overflow (the parse overflow flags), cache and
// compress (the segment cache behind the zero-copy decode path).
package numcodec

import (
	"github.com/arloliu/numcodec/format"
)

// Kind identifies one of the fourteen numeric kinds. See format.Kind.
type Kind = format.Kind

// Re-exported kind constants.
const (
	KindInvalid = format.KindInvalid
	KindInt8    = format.KindInt8
	KindInt16   = format.KindInt16
	KindInt32   = format.KindInt32
	KindInt64   = format.KindInt64
	KindInt128  = format.KindInt128
	KindInt256  = format.KindInt256
	KindUint8   = format.KindUint8
	KindUint16  = format.KindUint16
	KindUint32  = format.KindUint32
	KindUint64  = format.KindUint64
	KindUint128 = format.KindUint128
	KindUint256 = format.KindUint256
	KindFloat32 = format.KindFloat32
	KindFloat64 = format.KindFloat64
)

// Settings carries the format configuration passed into transcoding
// calls. See format.Settings.
type Settings = format.Settings

// DefaultSettings returns the default format settings: overflow checking
// enabled, plain JSON numbers, comma-delimited CSV.
func DefaultSettings() *Settings {
	return format.DefaultSettings()
}
