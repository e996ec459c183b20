// Package encoding implements value-level transcoding of fixed-width
// numeric columns between their in-memory representation and the external
// formats of the engine: plain text, JSON, CSV, scalar binary, bulk binary
// and an order-preserving (mem-comparable) binary encoding.
//
// # Codecs
//
// One generic component, Codec, covers all fourteen numeric kinds. It is
// parameterized by the column's element type and a numeric trait bundle
// (Ops) that resolves per-kind behavior at compile time: byte width,
// signedness, integer-vs-float, boolean-literal support, and
// order-preserving capability. Constructors exist per kind:
//
//	codec, err := encoding.NewInt32Codec()
//	col := column.NewVector[int32]()
//	err = codec.DeserializeText(col, encoding.NewReader([]byte("42")), settings, state)
//
// # Overflow policy
//
// Text-family decodes optionally run an overflow check gated by
// Settings.CheckDataOverflow, consuming the overflow.State flag the parser
// set. Integer kinds fail hard with errs.ErrValueOutOfRange; float kinds
// never fail, they only record non-finite results in the Float flag for
// the nullable wrapper.
//
// # Bulk binary and the zero-copy path
//
// SerializeBinaryBulk writes a contiguous row range as one flat block of
// engine-order values with no framing. DeserializeBinaryBulk reads such a
// block back, optionally dropping rows through a column.RowFilter. When
// the destination vector exposes a zero-copy buffer, no filter is given
// and the source is backed by a segment cache, decode bypasses the staging
// copy and reads cached bytes directly into the vector's storage, falling
// back to the classic path for whatever the cache could not serve. Both
// paths are byte-for-byte equivalent.
//
// All operations are synchronous; a Codec value is immutable and safe to
// share, but a byte source or destination vector must not be driven from
// two call sites at once.
package encoding
