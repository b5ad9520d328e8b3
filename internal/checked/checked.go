// Package checked provides overflow-reporting int64 arithmetic.
//
// The scaling pipeline promises that the one true multiplication, the
// reapplied shifts, and the prefix-sum accumulation never wrap
// silently. Every helper returns ok=false instead of a wrapped value
// so callers can surface an explicit overflow error.
package checked

import "math"

// Add returns a+b and reports whether the sum fits in an int64.
func Add(a, b int64) (int64, bool) {
	sum := a + b
	// Overflow iff both operands share a sign and the sum does not.
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

// Mul returns a*b and reports whether the product fits in an int64.
func Mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == -1 && b == math.MinInt64 {
		return 0, false
	}
	if b == -1 && a == math.MinInt64 {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// Shl returns v<<s (multiplication by 2^s, valid for negative v) and
// reports whether the result fits in an int64.
func Shl(v int64, s uint) (int64, bool) {
	if v == 0 || s == 0 {
		return v, true
	}
	if s > 62 {
		return 0, false
	}
	return Mul(v, int64(1)<<s)
}

// Neg returns -v and reports whether the negation fits in an int64.
// The only failing input is math.MinInt64.
func Neg(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	return -v, true
}

// Abs returns the magnitude of v and reports whether it fits in an
// int64. The only failing input is math.MinInt64.
func Abs(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	if v < 0 {
		return -v, true
	}
	return v, true
}
