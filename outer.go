package addmul

import (
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// OuterProduct returns the matrix with matrix[i][j] == column[i] *
// row[j]. The row is processed once per distinct column value; repeats
// are served from a cache scoped to this call.
func OuterProduct(column, row []int64) ([][]int64, error) {
	return Default.OuterProduct(column, row)
}

// OuterProduct returns the outer product of column and row. See the
// package-level function for the contract.
func (m *Multiplier) OuterProduct(column, row []int64) ([][]int64, error) {
	start := time.Now()

	matrix, hits, err := m.outerProduct(column, row)

	m.opts.metrics.RecordOuterProduct(len(column), len(row), hits, time.Since(start), err)
	m.opts.logger.LogOuterProduct(len(column), len(row), hits, err)
	return matrix, err
}

// BatchOuterProduct builds one outer-product matrix per row, each row
// against the full column. Rows are independent and run concurrently
// up to the configured limit. Scalar caches are per row and never
// shared: the cached result depends on the row content, not just the
// scalar.
func (m *Multiplier) BatchOuterProduct(column []int64, rows [][]int64) ([][][]int64, error) {
	out := make([][][]int64, len(rows))

	if m.opts.concurrency <= 1 {
		for i, row := range rows {
			matrix, err := m.OuterProduct(column, row)
			if err != nil {
				return nil, err
			}
			out[i] = matrix
		}
		return out, nil
	}

	g := new(errgroup.Group)
	g.SetLimit(m.opts.concurrency)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			matrix, err := m.OuterProduct(column, row)
			if err != nil {
				return err
			}
			out[i] = matrix
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Multiplier) outerProduct(column, row []int64) ([][]int64, int, error) {
	matrix := make([][]int64, len(column))

	if m.opts.concurrency <= 1 {
		cache := make(map[int64][]int64, len(column))
		hits := 0
		for i, c := range column {
			res, ok := cache[c]
			if ok {
				hits++
			} else {
				var err error
				res, err = m.ScalarMultiply(c, row)
				if err != nil {
					return nil, hits, err
				}
				cache[c] = res
			}
			// Each matrix row gets its own backing array; cached
			// slices must stay immutable for later hits.
			matrix[i] = slices.Clone(res)
		}
		return matrix, hits, nil
	}

	var (
		cache scalarCache
		hits  atomic.Int64
	)
	g := new(errgroup.Group)
	g.SetLimit(m.opts.concurrency)
	for i, c := range column {
		i, c := i, c
		g.Go(func() error {
			res, hit, err := cache.get(c, func() ([]int64, error) {
				return m.ScalarMultiply(c, row)
			})
			if err != nil {
				return err
			}
			if hit {
				hits.Add(1)
			}
			matrix[i] = slices.Clone(res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, int(hits.Load()), err
	}
	return matrix, int(hits.Load()), nil
}

// scalarCache memoizes scaled rows by scalar value with an
// at-most-once compute guarantee under concurrency: workers asking
// for the same scalar at the same time share one computation instead
// of duplicating it.
type scalarCache struct {
	group  singleflight.Group
	values sync.Map // int64 -> []int64
}

// get returns the scaled row for c, computing it at most once. hit
// reports whether the value came from the cache or a shared in-flight
// computation.
func (sc *scalarCache) get(c int64, compute func() ([]int64, error)) (res []int64, hit bool, err error) {
	if v, ok := sc.values.Load(c); ok {
		return v.([]int64), true, nil
	}

	v, err, shared := sc.group.Do(strconv.FormatInt(c, 10), func() (any, error) {
		// Re-check under the flight: a previous flight for this key
		// may have completed between our Load and Do.
		if v, ok := sc.values.Load(c); ok {
			return v, nil
		}
		out, err := compute()
		if err != nil {
			return nil, err
		}
		sc.values.Store(c, out)
		return out, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.([]int64), shared, nil
}
