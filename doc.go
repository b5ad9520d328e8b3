// Package addmul scales integer vectors and builds outer products
// using exactly one genuine multiplication per computation.
//
// The core algorithm repeatedly sorts a vector, collapses duplicate
// values, takes first differences of the distinct values, and strips
// trailing zero bits, until a single element remains. That element is
// multiplied by the scalar once, and the full scaled vector is then
// rebuilt with nothing but additions, shifts, and scatters.
//
// # Quick Start
//
//	out, _ := addmul.ScalarMultiply(5, []int64{3, 1, 4, 1, 5, 9})
//	// out == [15 5 20 5 25 45]
//
//	matrix, _ := addmul.OuterProduct([]int64{0, 1, 2}, []int64{3, 1, 4})
//	// matrix[i][j] == column[i] * row[j]
//
// A configured engine adds a recursion cap, parallelism, logging, and
// metrics:
//
//	m := addmul.New(
//	    addmul.WithMaxDepth(1024),
//	    addmul.WithConcurrency(8),
//	    addmul.WithLogger(addmul.NewTextLogger(slog.LevelDebug)),
//	)
//	matrix, err := m.OuterProduct(column, row)
//
// # Guarantees
//
//   - ScalarMultiply(c, row)[i] == c * row[i] for every index i.
//   - One true multiplication per ScalarMultiply invocation; repeated
//     scalars in OuterProduct columns are computed at most once.
//   - Overflow of the int64 range is reported as ErrOverflow, never
//     wrapped silently.
//   - Reduction depth is capped; exceeding the cap is reported as
//     ErrDepthExceeded instead of diverging.
//
// Zero entries and signs are handled outside the recursive core, so
// mixed rows like [0 3 0 5] terminate and scale correctly.
package addmul
