package gocoro

import "sync/atomic"

// Metrics holds lightweight atomic counters for a Scheduler, enabled via
// WithMetrics(true). Scaled down to the handful of counters meaningful for
// a pure cooperative scheduler (no timers, no I/O, no microtask ring).
type Metrics struct {
	spawned   atomic.Uint64
	completed atomic.Uint64
	panicked  atomic.Uint64
}

func newMetrics() *Metrics {
	return &Metrics{}
}

// MetricsSnapshot is a point-in-time read of a Scheduler's counters.
type MetricsSnapshot struct {
	Spawned   uint64
	Completed uint64
	Panicked  uint64
}

func (m *Metrics) snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Spawned:   m.spawned.Load(),
		Completed: m.completed.Load(),
		Panicked:  m.panicked.Load(),
	}
}
