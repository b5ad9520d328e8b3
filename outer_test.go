package addmul

import (
	"math"
	"testing"

	"github.com/hupe1980/addmul/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOuterProduct(t *testing.T) {
	column := []int64{1, 2, 3}
	row := []int64{4, 5, 6}

	matrix, err := OuterProduct(column, row)
	require.NoError(t, err)

	want := [][]int64{
		{4, 5, 6},
		{8, 10, 12},
		{12, 15, 18},
	}
	assert.Equal(t, want, matrix)
}

func TestOuterProductSignsAndZeros(t *testing.T) {
	column := []int64{0, -2, 5}
	row := []int64{3, 0, -7}

	matrix, err := OuterProduct(column, row)
	require.NoError(t, err)

	want := [][]int64{
		{0, 0, 0},
		{-6, 0, 14},
		{15, 0, -35},
	}
	assert.Equal(t, want, matrix)
}

func TestOuterProductEmpty(t *testing.T) {
	matrix, err := OuterProduct(nil, []int64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, matrix)

	matrix, err = OuterProduct([]int64{1, 2}, nil)
	require.NoError(t, err)
	require.Len(t, matrix, 2)
	assert.Empty(t, matrix[0])
	assert.Empty(t, matrix[1])
}

// TestOuterProductCache verifies the at-most-once guarantee: a column
// with repeated scalars invokes the underlying computation once per
// distinct value and yields identical rows at the repeat positions.
func TestOuterProductCache(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	m := New(WithMetricsCollector(metrics))

	column := []int64{2, 7, 2, 7, 2}
	row := []int64{3, 1, 4, 1, 5, 9}

	matrix, err := m.OuterProduct(column, row)
	require.NoError(t, err)

	assert.Equal(t, matrix[0], matrix[2])
	assert.Equal(t, matrix[0], matrix[4])
	assert.Equal(t, matrix[1], matrix[3])
	for i, c := range column {
		for j, v := range row {
			assert.Equal(t, c*v, matrix[i][j])
		}
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.ScalarMultiplyCount, "one computation per distinct scalar")
	assert.Equal(t, int64(3), stats.CacheHits)
}

func TestOuterProductRowsNotAliased(t *testing.T) {
	matrix, err := OuterProduct([]int64{2, 2}, []int64{1, 1})
	require.NoError(t, err)

	matrix[0][0] = 99
	assert.Equal(t, int64(2), matrix[1][0], "cached repeat rows must not share backing arrays")
}

func TestOuterProductConcurrent(t *testing.T) {
	rng := util.NewRNG(2024)
	row := rng.GenerateRandomRow(48, 100_000)
	column := append(rng.GenerateRandomRow(30, 50), 7, 7, 7, 7)

	sequential, err := New().OuterProduct(column, row)
	require.NoError(t, err)

	metrics := &BasicMetricsCollector{}
	m := New(WithConcurrency(8), WithMetricsCollector(metrics))
	concurrent, err := m.OuterProduct(column, row)
	require.NoError(t, err)

	assert.Equal(t, sequential, concurrent)

	distinct := make(map[int64]struct{})
	for _, c := range column {
		distinct[c] = struct{}{}
	}
	stats := metrics.GetStats()
	assert.Equal(t, int64(len(distinct)), stats.ScalarMultiplyCount, "singleflight must dedupe concurrent scalars")
}

func TestOuterProductError(t *testing.T) {
	_, err := OuterProduct([]int64{1, math.MaxInt64}, []int64{2, 3})
	require.ErrorIs(t, err, ErrOverflow)

	m := New(WithConcurrency(4))
	_, err = m.OuterProduct([]int64{1, math.MaxInt64}, []int64{2, 3})
	require.ErrorIs(t, err, ErrOverflow)
}

func TestBatchOuterProduct(t *testing.T) {
	rng := util.NewRNG(11)
	column := []int64{0, 1, 2, 3, 2, 1}
	rows := rng.GenerateRandomRows(5, 16, 1_000)

	for _, m := range []*Multiplier{New(), New(WithConcurrency(4))} {
		got, err := m.BatchOuterProduct(column, rows)
		require.NoError(t, err)
		require.Len(t, got, len(rows))

		for r, row := range rows {
			for i, c := range column {
				for j, v := range row {
					require.Equal(t, c*v, got[r][i][j], "row %d", r)
				}
			}
		}
	}
}

func TestBatchOuterProductError(t *testing.T) {
	m := New(WithConcurrency(2))
	_, err := m.BatchOuterProduct([]int64{2}, [][]int64{{1}, {math.MaxInt64}})
	require.ErrorIs(t, err, ErrOverflow)
}
