package gocoro

// schedulerOptions holds configuration resolved from SchedulerOption values,
// following the usual loopOptions/resolveLoopOptions functional-options shape.
type schedulerOptions struct {
	logger            Logger
	metricsEnabled    bool
	panicHandler      func(any)
	queueCapacityHint int
}

// SchedulerOption configures a Scheduler at construction time.
type SchedulerOption interface {
	applyScheduler(*schedulerOptions)
}

type schedulerOptionFunc func(*schedulerOptions)

func (f schedulerOptionFunc) applyScheduler(o *schedulerOptions) { f(o) }

// WithLogger configures the Scheduler's structured logger. Without this
// option, a Scheduler logs nothing (NoOpLogger).
func WithLogger(logger Logger) SchedulerOption {
	return schedulerOptionFunc(func(o *schedulerOptions) {
		o.logger = logger
	})
}

// WithMetrics enables the Scheduler's lightweight atomic counters, readable
// via Scheduler.Metrics.
func WithMetrics(enabled bool) SchedulerOption {
	return schedulerOptionFunc(func(o *schedulerOptions) {
		o.metricsEnabled = enabled
	})
}

// WithPanicHandler registers a callback invoked whenever a spawned task's
// body panics, in addition to the panic value being captured and rethrown,
// unchanged, to its JoinHandle's awaiter. Useful for centralized crash
// reporting. Panics from BlockOn's own root fn are always re-raised to the
// BlockOn caller, and are also reported here.
func WithPanicHandler(handler func(any)) SchedulerOption {
	return schedulerOptionFunc(func(o *schedulerOptions) {
		o.panicHandler = handler
	})
}

// WithQueueCapacityHint preallocates the Scheduler's ready-queue backing
// slice. Purely a performance hint; has no effect on behavior.
func WithQueueCapacityHint(n int) SchedulerOption {
	return schedulerOptionFunc(func(o *schedulerOptions) {
		o.queueCapacityHint = n
	})
}

func resolveSchedulerOptions(opts []SchedulerOption) *schedulerOptions {
	cfg := &schedulerOptions{
		logger: NewNoOpLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyScheduler(cfg)
	}
	return cfg
}
