// Package prepare splits raw integer rows into the shape the
// reduction core requires and merges scaled results back.
//
// The recursive core only ever sees strictly positive magnitudes.
// Zeros are removed up front (a zero mixed into the difference
// sequence stalls the reduction) and signs are stripped and recorded,
// then both are reapplied after scaling.
package prepare

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/addmul/internal/checked"
)

// ErrOverflow is returned when a magnitude or a restored value does
// not fit in an int64.
var ErrOverflow = errors.New("value out of int64 range")

// Prepared holds the decomposition of a row: positions that held
// zero, positions that held a negative value, and the ordered
// magnitudes of the nonzero entries.
//
// Invariant: len(Naturals) == Len - Zeros.GetCardinality(), and
// Negatives is disjoint from Zeros.
type Prepared struct {
	Len       int
	Zeros     *roaring.Bitmap
	Negatives *roaring.Bitmap
	Naturals  []int64
}

// Split decomposes row. It fails only when a magnitude is not
// representable (math.MinInt64).
func Split(row []int64) (*Prepared, error) {
	p := &Prepared{
		Len:       len(row),
		Zeros:     roaring.New(),
		Negatives: roaring.New(),
		Naturals:  make([]int64, 0, len(row)),
	}

	for i, v := range row {
		if v == 0 {
			p.Zeros.Add(uint32(i))
			continue
		}
		mag, ok := checked.Abs(v)
		if !ok {
			return nil, fmt.Errorf("%w: magnitude of row[%d]", ErrOverflow, i)
		}
		if v < 0 {
			p.Negatives.Add(uint32(i))
		}
		p.Naturals = append(p.Naturals, mag)
	}

	return p, nil
}

// Restore merges the scaled magnitudes back into a full-length row:
// zeros are reinserted at their recorded positions in a single linear
// pass and recorded negative positions flip sign. len(scaled) must
// equal len(p.Naturals).
func (p *Prepared) Restore(scaled []int64) ([]int64, error) {
	if len(scaled) != len(p.Naturals) {
		return nil, fmt.Errorf("restore: got %d scaled values, want %d", len(scaled), len(p.Naturals))
	}

	out := make([]int64, p.Len)
	next := 0
	for i := range out {
		if p.Zeros.Contains(uint32(i)) {
			continue
		}
		v := scaled[next]
		next++
		if p.Negatives.Contains(uint32(i)) {
			neg, ok := checked.Neg(v)
			if !ok {
				return nil, fmt.Errorf("%w: negating scaled value at %d", ErrOverflow, i)
			}
			v = neg
		}
		out[i] = v
	}

	return out, nil
}
