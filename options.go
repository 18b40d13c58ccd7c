package slotmap

type options struct {
	initialCapacity int
	maxSlots        int
	metrics         MetricsCollector
	logger          *Logger
}

// Option configures Pool construction.
type Option func(*options)

func defaultOptions() options {
	return options{
		metrics: NoopMetricsCollector{},
		logger:  NoopLogger(),
	}
}

// WithInitialCapacity pre-reserves backing storage for capacity slots, so
// the first allocations grow without reallocating. It is a hint, not a
// bound: the pool still grows past it on demand.
func WithInitialCapacity(capacity int) Option {
	return func(o *options) {
		o.initialCapacity = capacity
	}
}

// WithMaxSlots bounds the total number of slots the pool may ever create.
// Once the bound is reached, Allocate still succeeds while freed slots are
// available for reuse and fails with ErrSlotLimitExceeded otherwise.
//
// maxSlots <= 0 means unbounded (the default).
func WithMaxSlots(maxSlots int) Option {
	return func(o *options) {
		o.maxSlots = maxSlots
	}
}

// WithLogger configures the logger for pool lifecycle events (reset, slot
// retirement). Hot-path operations are never logged. If nil is passed, the
// no-op logger is used.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a collector that observes every allocate
// and free. If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}
