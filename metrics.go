package addmul

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordScalarMultiply is called after each scalar-vector
	// multiplication. length is the row length, depth the number of
	// reduction levels used, err is nil if successful.
	RecordScalarMultiply(length, depth int, duration time.Duration, err error)

	// RecordOuterProduct is called after each outer-product
	// construction. rows and cols are the matrix dimensions,
	// cacheHits is the number of column entries served from the
	// per-row scalar cache.
	RecordOuterProduct(rows, cols, cacheHits int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordScalarMultiply(int, int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordOuterProduct(int, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
//
// ScalarMultiplyCount doubles as the count of true multiplications
// performed: each successful invocation multiplies exactly once.
type BasicMetricsCollector struct {
	ScalarMultiplyCount      atomic.Int64
	ScalarMultiplyErrors     atomic.Int64
	ScalarMultiplyTotalNanos atomic.Int64
	MaxDepth                 atomic.Int64
	OuterProductCount        atomic.Int64
	OuterProductErrors       atomic.Int64
	CacheHits                atomic.Int64
}

// RecordScalarMultiply implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScalarMultiply(length, depth int, duration time.Duration, err error) {
	b.ScalarMultiplyCount.Add(1)
	b.ScalarMultiplyTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScalarMultiplyErrors.Add(1)
	}
	for {
		cur := b.MaxDepth.Load()
		if int64(depth) <= cur || b.MaxDepth.CompareAndSwap(cur, int64(depth)) {
			return
		}
	}
}

// RecordOuterProduct implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOuterProduct(rows, cols, cacheHits int, duration time.Duration, err error) {
	b.OuterProductCount.Add(1)
	b.CacheHits.Add(int64(cacheHits))
	if err != nil {
		b.OuterProductErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ScalarMultiplyCount:    b.ScalarMultiplyCount.Load(),
		ScalarMultiplyErrors:   b.ScalarMultiplyErrors.Load(),
		ScalarMultiplyAvgNanos: b.getAvgScalarMultiplyNanos(),
		MaxDepth:               b.MaxDepth.Load(),
		OuterProductCount:      b.OuterProductCount.Load(),
		OuterProductErrors:     b.OuterProductErrors.Load(),
		CacheHits:              b.CacheHits.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgScalarMultiplyNanos() int64 {
	count := b.ScalarMultiplyCount.Load()
	if count == 0 {
		return 0
	}
	return b.ScalarMultiplyTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ScalarMultiplyCount    int64
	ScalarMultiplyErrors   int64
	ScalarMultiplyAvgNanos int64
	MaxDepth               int64
	OuterProductCount      int64
	OuterProductErrors     int64
	CacheHits              int64
}
