// Package errs defines the sentinel errors shared across numcodec packages.
//
// Callers match errors with errors.Is; call sites wrap the sentinels with
// fmt.Errorf("%w: ...") to add context. Every failure is surfaced intact to
// the caller; the codec never retries.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates a text, JSON or CSV token that does not
	// parse as the target numeric kind, or a missing structural token such
	// as a closing quote.
	ErrMalformedInput = errors.New("malformed numeric input")

	// ErrUnexpectedEnd indicates the input ended while a token was still
	// expected. It wraps ErrMalformedInput, so errors.Is matches both.
	ErrUnexpectedEnd = fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)

	// ErrValueOutOfRange indicates an integer literal that overflowed the
	// target kind while overflow checking was enabled.
	ErrValueOutOfRange = errors.New("integer value is out of range of the data type; set check_data_overflow=false to ignore")

	// ErrUnsupportedOperation indicates an operation invoked on a kind
	// that does not support it, such as order-preserving encoding of a
	// 128-bit or floating-point kind.
	ErrUnsupportedOperation = errors.New("operation is not supported for this kind")
)
