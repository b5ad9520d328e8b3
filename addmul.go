package addmul

import (
	"fmt"
	"time"

	"github.com/hupe1980/addmul/internal/checked"
	"github.com/hupe1980/addmul/internal/prepare"
	"github.com/hupe1980/addmul/internal/reduce"
)

// Multiplier is a configured scaling engine. The zero configuration
// (via New with no options) is ready for use; all methods are safe
// for concurrent use because every invocation owns its intermediate
// state exclusively.
type Multiplier struct {
	opts options
}

// New creates a Multiplier.
func New(optFns ...Option) *Multiplier {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Multiplier{opts: opts}
}

// Default is the Multiplier behind the package-level convenience
// functions.
var Default = New()

// ScalarMultiply returns row scaled by c, computing exactly one true
// multiplication. The result has the same length as row; an empty row
// yields an empty result.
func ScalarMultiply(c int64, row []int64) ([]int64, error) {
	return Default.ScalarMultiply(c, row)
}

// ScalarMultiply returns row scaled by c. See the package-level
// function for the contract.
func (m *Multiplier) ScalarMultiply(c int64, row []int64) ([]int64, error) {
	start := time.Now()

	out, depth, err := m.scalarMultiply(c, row)

	m.opts.metrics.RecordScalarMultiply(len(row), depth, time.Since(start), err)
	m.opts.logger.LogScalarMultiply(c, len(row), depth, err)
	return out, err
}

// scalarMultiply runs the pipeline: split off zeros and signs, align
// the magnitudes, descend to a single element, multiply it by c,
// ascend back, and restore zeros and signs. It also reports the
// reduction depth used.
func (m *Multiplier) scalarMultiply(c int64, row []int64) ([]int64, int, error) {
	if len(row) == 0 {
		return []int64{}, 0, nil
	}

	p, err := prepare.Split(row)
	if err != nil {
		return nil, 0, m.translateError(err)
	}

	// All entries were zero: any scalar maps the row to itself.
	if len(p.Naturals) == 0 {
		out, err := p.Restore(nil)
		return out, 0, m.translateError(err)
	}

	aligned := make([]reduce.Aligned, len(p.Naturals))
	for i, v := range p.Naturals {
		aligned[i] = reduce.Align(v)
	}

	final, levels, err := reduce.Down(aligned, m.opts.maxDepth)
	if err != nil {
		return nil, 0, m.translateError(err)
	}
	depth := len(levels)

	// The one true multiplication.
	carry, ok := checked.Mul(final, c)
	if !ok {
		return nil, depth, fmt.Errorf("%w: %d * %d", ErrOverflow, final, c)
	}

	scaled, err := reduce.Up(levels, carry)
	if err != nil {
		return nil, depth, m.translateError(err)
	}

	out, err := p.Restore(scaled)
	if err != nil {
		return nil, depth, m.translateError(err)
	}
	return out, depth, nil
}
