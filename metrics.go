package slotmap

import "sync/atomic"

// MetricsCollector defines an interface for observing pool operations.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Collectors are called synchronously on the allocate/free paths, so
// implementations must be cheap; do not block in them.
type MetricsCollector interface {
	// RecordAllocate is called after each successful Allocate.
	// reused is true when the slot came from the free list rather than
	// growing the backing storage.
	RecordAllocate(reused bool)

	// RecordFree is called after each Free.
	// freed is false when the handle was stale and the call was a no-op.
	RecordFree(freed bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(bool) {}
func (NoopMetricsCollector) RecordFree(bool)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// Safe for concurrent use.
type BasicMetricsCollector struct {
	AllocateCount atomic.Int64
	ReuseCount    atomic.Int64
	FreeCount     atomic.Int64
	StaleFrees    atomic.Int64
}

func (c *BasicMetricsCollector) RecordAllocate(reused bool) {
	c.AllocateCount.Add(1)
	if reused {
		c.ReuseCount.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordFree(freed bool) {
	if freed {
		c.FreeCount.Add(1)
	} else {
		c.StaleFrees.Add(1)
	}
}
