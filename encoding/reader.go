package encoding

import (
	"fmt"

	"github.com/arloliu/numcodec/errs"
)

// Reader is a positioned reader over an in-memory byte slice, used by the
// scalar deserialize operations. It supports the single-byte lookahead the
// text formats need (quote, null and boolean detection).
//
// A Reader borrows the slice; it never copies or mutates it.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Reset repositions the reader at the start of data, reusing the value.
func (r *Reader) Reset(data []byte) {
	r.data = data
	r.pos = 0
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int {
	return r.pos
}

// EOF reports whether the reader is exhausted.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.data)
}

// Peek returns the next byte without consuming it.
func (r *Reader) Peek() (byte, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}

	return r.data[r.pos], true
}

// Next consumes and returns the next byte.
func (r *Reader) Next() (byte, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	b := r.data[r.pos]
	r.pos++

	return b, true
}

// ReadFull consumes exactly n bytes and returns them as a sub-slice of the
// underlying data. Fails with errs.ErrUnexpectedEnd if fewer remain.
func (r *Reader) ReadFull(n int) ([]byte, error) {
	if r.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrUnexpectedEnd, n, r.Len())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// ExpectByte consumes the next byte and fails unless it equals want.
func (r *Reader) ExpectByte(want byte) error {
	b, ok := r.Next()
	if !ok {
		return fmt.Errorf("%w: expected %q", errs.ErrUnexpectedEnd, want)
	}
	if b != want {
		return fmt.Errorf("%w: expected %q, found %q", errs.ErrMalformedInput, want, b)
	}

	return nil
}

// ExpectLiteral consumes len(lit) bytes and fails unless they equal lit.
func (r *Reader) ExpectLiteral(lit string) error {
	for i := 0; i < len(lit); i++ {
		if err := r.ExpectByte(lit[i]); err != nil {
			return err
		}
	}

	return nil
}
