package reduce

import "math/bits"

// Aligned is a positive integer split into an odd core and the count
// of trailing zero bits, so that Core<<Shift reproduces the value.
type Aligned struct {
	Core  int64
	Shift uint
}

// Align normalizes v into (odd core, shift). Alignment exposes
// duplicate structure: values that differ only by a power of two
// collapse onto the same core and dedup together at the next level.
//
// v is expected to be positive; non-positive inputs pass through with
// a zero shift.
func Align(v int64) Aligned {
	if v <= 0 {
		return Aligned{Core: v}
	}
	s := uint(bits.TrailingZeros64(uint64(v)))
	return Aligned{Core: v >> s, Shift: s}
}

// Value reconstitutes the raw integer.
func (a Aligned) Value() int64 {
	return a.Core << a.Shift
}
