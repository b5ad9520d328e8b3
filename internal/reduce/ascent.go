package reduce

import (
	"errors"
	"fmt"

	"github.com/hupe1980/addmul/internal/checked"
)

// ErrOverflow is returned when a scaled value leaves the int64 range
// during prefix summation or shift reapplication.
var ErrOverflow = errors.New("scaled value out of int64 range")

// Up rebuilds the full scaled vector from the descent record. levels
// is the Down output (root level first); Up consumes it deepest level
// first. carry is the base-case value already multiplied by the
// external scalar — the only product in the whole computation.
func Up(levels []Level, carry int64) ([]int64, error) {
	vec := []int64{carry}

	for d := len(levels) - 1; d >= 0; d-- {
		lvl := levels[d]
		if len(vec) != len(lvl.Entries) {
			return nil, fmt.Errorf("level width mismatch: %d values for %d entries", len(vec), len(lvl.Entries))
		}

		// Inclusive prefix sum inverts the first-differences step,
		// recovering the scaled distinct values in ascending order.
		for k := 1; k < len(vec); k++ {
			sum, ok := checked.Add(vec[k-1], vec[k])
			if !ok {
				return nil, fmt.Errorf("%w: prefix sum at rank %d", ErrOverflow, k)
			}
			vec[k] = sum
		}

		// Scatter each distinct value back to every position it came
		// from, undoing the recorded alignment shift.
		out := make([]int64, lvl.Width)
		for k, e := range lvl.Entries {
			for _, r := range e.Refs {
				v, ok := checked.Shl(vec[k], r.Shift)
				if !ok {
					return nil, fmt.Errorf("%w: shift by %d at position %d", ErrOverflow, r.Shift, r.Pos)
				}
				out[r.Pos] = v
			}
		}
		vec = out
	}

	return vec, nil
}
