package encoding

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unsafe"

	"github.com/arloliu/numcodec/errs"
	"github.com/arloliu/numcodec/overflow"
)

// Integer constrains the eight native integer kinds.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float constrains the two floating-point kinds.
type Float interface {
	~float32 | ~float64
}

func isSigned[T Integer]() bool {
	var z T
	z--

	return z < 0
}

// parseIntText parses a decimal integer literal, wrapping on overflow.
//
// When checked is true the parser additionally detects that the literal
// does not fit the target width and raises the Integer overflow flag; the
// returned value is the wrapped result either way. When checked is false
// the bound bookkeeping is skipped entirely (the unchecked fast path).
func parseIntText[T Integer](r *Reader, checked bool, st *overflow.State) (T, error) {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	signed := isSigned[T]()

	neg := false
	if b, ok := r.Peek(); ok && (b == '+' || b == '-') {
		if b == '-' {
			if !signed {
				return zero, fmt.Errorf("%w: negative literal for unsigned kind", errs.ErrMalformedInput)
			}
			neg = true
		}
		r.Next()
	}

	var acc uint64
	digits := 0
	overflowed := false
	for {
		b, ok := r.Peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		d := uint64(b - '0')
		if checked && acc > (math.MaxUint64-d)/10 {
			overflowed = true
		}
		acc = acc*10 + d
		digits++
		r.Next()
	}

	if digits == 0 {
		if r.EOF() {
			return zero, fmt.Errorf("%w: expected digit", errs.ErrUnexpectedEnd)
		}

		return zero, fmt.Errorf("%w: expected digit", errs.ErrMalformedInput)
	}

	if checked && !overflowed {
		switch {
		case signed:
			// The magnitude of the minimum value exceeds the maximum by one.
			limit := uint64(1) << (bits - 1)
			if neg {
				overflowed = acc > limit
			} else {
				overflowed = acc >= limit
			}
		case bits < 64:
			overflowed = acc >= uint64(1)<<bits
		}
	}
	if overflowed {
		st.Set(overflow.Integer)
	}

	out := T(acc)
	if neg {
		out = -out
	}

	return out, nil
}

// floatTokenChars covers decimal and hexadecimal float syntax plus the
// inf/infinity/nan words in any case.
func isFloatTokenChar(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b == '+' || b == '-' || b == '.':
		return true
	}
	switch b {
	case 'e', 'E', 'x', 'X', 'p', 'P',
		'i', 'I', 'n', 'N', 'f', 'F',
		'a', 'A', 't', 'T', 'y', 'Y':
		return true
	default:
		return false
	}
}

// parseFloatText parses a floating-point literal. Out-of-range literals
// are not an error: they produce the infinity strconv reports.
func parseFloatText[T Float](r *Reader) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	start := r.pos
	for {
		b, ok := r.Peek()
		if !ok || !isFloatTokenChar(b) {
			break
		}
		r.Next()
	}
	tok := r.data[start:r.pos]
	if len(tok) == 0 {
		if r.EOF() {
			return zero, fmt.Errorf("%w: expected number", errs.ErrUnexpectedEnd)
		}

		return zero, fmt.Errorf("%w: expected number", errs.ErrMalformedInput)
	}

	f, err := strconv.ParseFloat(string(tok), bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return zero, fmt.Errorf("%w: %q is not a valid float", errs.ErrMalformedInput, tok)
	}

	return T(f), nil
}

// readBoolWord consumes a literal true/false word.
func readBoolWord(r *Reader) (bool, error) {
	b, ok := r.Peek()
	if !ok {
		return false, fmt.Errorf("%w: expected boolean literal", errs.ErrUnexpectedEnd)
	}

	switch b {
	case 't':
		return true, r.ExpectLiteral("true")
	case 'f':
		return false, r.ExpectLiteral("false")
	default:
		return false, fmt.Errorf("%w: expected boolean literal, found %q", errs.ErrMalformedInput, b)
	}
}

// scanIntToken consumes an optional sign followed by decimal digits and
// returns the raw token, for the wide-integer parsers that delegate to a
// library string parser.
func scanIntToken(r *Reader, signed bool) ([]byte, error) {
	start := r.pos
	if b, ok := r.Peek(); ok && (b == '+' || b == '-') {
		if b == '-' && !signed {
			return nil, fmt.Errorf("%w: negative literal for unsigned kind", errs.ErrMalformedInput)
		}
		r.Next()
	}

	digits := 0
	for {
		b, ok := r.Peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		digits++
		r.Next()
	}

	if digits == 0 {
		if r.EOF() {
			return nil, fmt.Errorf("%w: expected digit", errs.ErrUnexpectedEnd)
		}

		return nil, fmt.Errorf("%w: expected digit", errs.ErrMalformedInput)
	}

	return r.data[start:r.pos], nil
}
