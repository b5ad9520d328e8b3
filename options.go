package addmul

// DefaultMaxDepth bounds the number of reduction rounds. Rows
// containing duplicates shrink every round, so realistic inputs stay
// far below this; the cap exists for the strictly-distinct regime
// where termination is unproven.
const DefaultMaxDepth = 4096

type options struct {
	maxDepth    int
	concurrency int
	logger      *Logger
	metrics     MetricsCollector
}

func defaultOptions() options {
	return options{
		maxDepth:    DefaultMaxDepth,
		concurrency: 1,
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
}

// Option configures a Multiplier.
type Option func(*options)

// WithMaxDepth configures the reduction depth cap. Exceeding the cap
// surfaces as ErrDepthExceeded. Values <= 0 restore the default.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// WithConcurrency configures how many goroutines outer-product
// construction may use. Values <= 1 keep processing sequential.
// Scalar-cache consistency is preserved at any setting: a distinct
// scalar is computed at most once per row.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

// WithLogger configures structured logging. Pass nil to disable.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
