// Package overflow carries the overflow condition between the low-level
// number parsers and the codec's post-parse check.
//
// The contract is "set by the parser immediately before the codec's
// check, consumed-and-cleared by the first subsequent check, exactly
// once". A *State value is threaded explicitly through the
// parse-then-check call chain. A nil *State means no overflow context
// exists and every operation is a no-op.
//
// A State must not be shared between goroutines; each decoding call chain
// owns its own value.
package overflow

// Flag selects one of the two independent overflow flags.
type Flag uint8

const (
	// Integer is set by integer parsers when a checked parse wrapped.
	Integer Flag = iota
	// Float records a non-finite parsed float. It is informational only
	// and is consumed by the nullable serialization wrapper, never by this
	// module.
	Float
)

// State holds the two overflow flags for one decoding call chain.
//
// The zero value is ready to use. All methods are nil-safe.
type State struct {
	integer bool
	float   bool
}

// Set raises the given flag.
func (s *State) Set(f Flag) {
	if s == nil {
		return
	}
	if f == Integer {
		s.integer = true
	} else {
		s.float = true
	}
}

// Unset clears the given flag.
func (s *State) Unset(f Flag) {
	if s == nil {
		return
	}
	if f == Integer {
		s.integer = false
	} else {
		s.float = false
	}
}

// Get reports whether the given flag is currently set.
func (s *State) Get(f Flag) bool {
	if s == nil {
		return false
	}
	if f == Integer {
		return s.integer
	}

	return s.float
}
