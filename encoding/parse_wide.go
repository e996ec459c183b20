package encoding

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	num "github.com/shabbyrobe/go-num"

	"github.com/arloliu/numcodec/errs"
	"github.com/arloliu/numcodec/overflow"
)

// Signed 256-bit bounds, as big integers: [-2^255, 2^255-1].
var (
	maxInt256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minInt256 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
)

func parseI128Text(r *Reader, checked bool, st *overflow.State) (num.I128, error) {
	tok, err := scanIntToken(r, true)
	if err != nil {
		return num.I128{}, err
	}

	v, accurate, err := num.I128FromString(string(tok))
	if err != nil {
		return num.I128{}, fmt.Errorf("%w: %q is not a valid Int128", errs.ErrMalformedInput, tok)
	}
	if checked && !accurate {
		st.Set(overflow.Integer)
	}

	return v, nil
}

func parseU128Text(r *Reader, checked bool, st *overflow.State) (num.U128, error) {
	tok, err := scanIntToken(r, false)
	if err != nil {
		return num.U128{}, err
	}

	v, accurate, err := num.U128FromString(string(tok))
	if err != nil {
		return num.U128{}, fmt.Errorf("%w: %q is not a valid UInt128", errs.ErrMalformedInput, tok)
	}
	if checked && !accurate {
		st.Set(overflow.Integer)
	}

	return v, nil
}

func parseU256Text(r *Reader, checked bool, st *overflow.State) (uint256.Int, error) {
	var v uint256.Int

	tok, err := scanIntToken(r, false)
	if err != nil {
		return v, err
	}

	b, ok := new(big.Int).SetString(string(tok), 10)
	if !ok {
		return v, fmt.Errorf("%w: %q is not a valid UInt256", errs.ErrMalformedInput, tok)
	}

	// SetFromBig truncates modulo 2^256, which is exactly the wrapped value.
	if overflowed := v.SetFromBig(b); overflowed && checked {
		st.Set(overflow.Integer)
	}

	return v, nil
}

func parseI256Text(r *Reader, checked bool, st *overflow.State) (uint256.Int, error) {
	var v uint256.Int

	tok, err := scanIntToken(r, true)
	if err != nil {
		return v, err
	}

	b, ok := new(big.Int).SetString(string(tok), 10)
	if !ok {
		return v, fmt.Errorf("%w: %q is not a valid Int256", errs.ErrMalformedInput, tok)
	}

	// Two's complement wrap; the signed bounds are narrower than what
	// SetFromBig alone reports.
	overflowed := b.Cmp(maxInt256) > 0 || b.Cmp(minInt256) < 0
	v.SetFromBig(b)
	if overflowed && checked {
		st.Set(overflow.Integer)
	}

	return v, nil
}

// appendU256Text formats v as an unsigned decimal.
func appendU256Text(dst []byte, v uint256.Int) []byte {
	return append(dst, v.Dec()...)
}

// appendI256Text formats v as a signed decimal, interpreting the value as
// two's complement.
func appendI256Text(dst []byte, v uint256.Int) []byte {
	if v.Sign() < 0 {
		var n uint256.Int
		n.Neg(&v)
		dst = append(dst, '-')

		return append(dst, n.Dec()...)
	}

	return append(dst, v.Dec()...)
}
