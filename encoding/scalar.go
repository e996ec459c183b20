package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/numcodec/column"
	"github.com/arloliu/numcodec/errs"
	"github.com/arloliu/numcodec/format"
	"github.com/arloliu/numcodec/overflow"
)

func checkedParse(settings *format.Settings) bool {
	return settings == nil || settings.CheckDataOverflow
}

// AppendText appends the decimal text form of one column value to dst and
// returns the extended slice. Integer values round-trip exactly; floats
// use the shortest representation that does.
func (c *Codec[T, O]) AppendText(dst []byte, col *column.Vector[T], row int) []byte {
	return c.ops.appendText(dst, col.At(row))
}

// DeserializeText parses one decimal text value from r and appends it to
// col. Integer literals that do not fit the kind fail with
// errs.ErrValueOutOfRange while overflow checking is enabled, and wrap
// silently otherwise.
func (c *Codec[T, O]) DeserializeText(col *column.Vector[T], r *Reader, settings *format.Settings, st *overflow.State) error {
	v, err := c.ops.parseText(r, checkedParse(settings), st)
	if err != nil {
		return err
	}
	if err := c.checkOverflow(v, settings, st); err != nil {
		return err
	}
	col.Append(v)

	return nil
}

// AppendTextJSON appends the JSON form of one column value to dst.
//
// Non-finite floats become the literal null, or a quoted word when
// QuoteDenormals is set. Integers of 64 bits and wider are quoted when
// Quote64BitIntegers is set.
func (c *Codec[T, O]) AppendTextJSON(dst []byte, col *column.Vector[T], row int, settings *format.Settings) []byte {
	v := col.At(row)

	if !c.ops.integer() {
		f := c.ops.floatValue(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			if settings != nil && settings.JSON.QuoteDenormals {
				dst = append(dst, '"')
				switch {
				case math.IsNaN(f):
					dst = append(dst, "nan"...)
				case f > 0:
					dst = append(dst, "inf"...)
				default:
					dst = append(dst, "-inf"...)
				}

				return append(dst, '"')
			}

			return append(dst, "null"...)
		}

		return c.ops.appendText(dst, v)
	}

	quote := settings != nil && settings.JSON.Quote64BitIntegers && c.ops.size() >= 8
	if quote {
		dst = append(dst, '"')
	}
	dst = c.ops.appendText(dst, v)
	if quote {
		dst = append(dst, '"')
	}

	return dst
}

// DeserializeTextJSON parses one JSON value from r and appends it to col.
//
// An optional surrounding double quote is accepted; when the opening quote
// is present the closing quote is required. The literal null produces the
// kind's NaN-or-zero sentinel. The two 8-bit integer kinds additionally
// accept the literals true and false as 1 and 0.
func (c *Codec[T, O]) DeserializeTextJSON(col *column.Vector[T], r *Reader, settings *format.Settings, st *overflow.State) error {
	hasQuote := false
	if b, ok := r.Peek(); ok && b == '"' {
		hasQuote = true
		r.Next()
	}

	b, ok := r.Peek()
	if !ok {
		return fmt.Errorf("%w: expected JSON value", errs.ErrUnexpectedEnd)
	}

	var v T
	switch {
	case !hasQuote && b == 'n':
		if err := r.ExpectLiteral("null"); err != nil {
			return err
		}
		v = c.ops.nanOrZero()
	case c.ops.bits8() && (b == 't' || b == 'f'):
		bv, err := readBoolWord(r)
		if err != nil {
			return err
		}
		v = c.ops.fromBool(bv)
	default:
		var err error
		v, err = c.ops.parseText(r, checkedParse(settings), st)
		if err != nil {
			return err
		}
	}

	if hasQuote {
		if err := r.ExpectByte('"'); err != nil {
			return err
		}
	}
	if err := c.checkOverflow(v, settings, st); err != nil {
		return err
	}
	col.Append(v)

	return nil
}

// DeserializeTextCSV parses one CSV field value from r and appends it to
// col. The field may be wrapped in single or double quotes; the delimiter
// itself is left for the surrounding CSV reader to consume.
func (c *Codec[T, O]) DeserializeTextCSV(col *column.Vector[T], r *Reader, settings *format.Settings, st *overflow.State) error {
	var quote byte
	if b, ok := r.Peek(); ok && (b == '"' || b == '\'') {
		quote = b
		r.Next()
	}

	v, err := c.ops.parseText(r, checkedParse(settings), st)
	if err != nil {
		return err
	}

	if quote != 0 {
		if err := r.ExpectByte(quote); err != nil {
			return err
		}
	}
	if err := c.checkOverflow(v, settings, st); err != nil {
		return err
	}
	col.Append(v)

	return nil
}

// AppendBinary appends the fixed-width engine-order encoding of a single
// value to dst and returns the extended slice.
func (c *Codec[T, O]) AppendBinary(dst []byte, v T) []byte {
	var buf [32]byte
	sz := c.ops.size()
	c.ops.put(c.engine, buf[:sz], v)

	return append(dst, buf[:sz]...)
}

// DecodeBinary reads one fixed-width engine-order value from r.
func (c *Codec[T, O]) DecodeBinary(r *Reader) (T, error) {
	b, err := r.ReadFull(c.ops.size())
	if err != nil {
		var zero T
		return zero, err
	}

	return c.ops.get(c.engine, b), nil
}

// AppendBinaryRow appends the binary encoding of one column value to dst.
func (c *Codec[T, O]) AppendBinaryRow(dst []byte, col *column.Vector[T], row int) []byte {
	return c.AppendBinary(dst, col.At(row))
}

// DeserializeBinaryRow reads one binary value from r and appends it to col.
func (c *Codec[T, O]) DeserializeBinaryRow(col *column.Vector[T], r *Reader) error {
	v, err := c.DecodeBinary(r)
	if err != nil {
		return err
	}
	col.Append(v)

	return nil
}
