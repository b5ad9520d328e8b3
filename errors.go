package addmul

import (
	"errors"
	"fmt"

	"github.com/hupe1980/addmul/internal/prepare"
	"github.com/hupe1980/addmul/internal/reduce"
)

// ErrOverflow is returned when the final multiplication, a reapplied
// shift, a prefix sum, or a sign flip leaves the int64 range. The
// library works on fixed-width integers on purpose; callers that need
// unbounded values should pre-split their inputs.
var ErrOverflow = errors.New("arithmetic overflow")

// ErrDepthExceeded indicates that the reduction did not finish within
// the configured depth cap. Termination for rows that stay duplicate
// free at every level is an open question, so the cap turns a
// potential hang into a reported error.
//
// The original underlying error (if any) can be accessed via
// errors.Unwrap.
type ErrDepthExceeded struct {
	Limit int
	cause error
}

func (e *ErrDepthExceeded) Error() string {
	return fmt.Sprintf("reduction depth limit exceeded: %d", e.Limit)
}

func (e *ErrDepthExceeded) Unwrap() error { return e.cause }

// translateError maps internal package errors onto the public error
// vocabulary.
func (m *Multiplier) translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, reduce.ErrDepth) {
		return &ErrDepthExceeded{Limit: m.opts.maxDepth, cause: err}
	}
	if errors.Is(err, reduce.ErrOverflow) || errors.Is(err, prepare.ErrOverflow) {
		return fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return err
}
