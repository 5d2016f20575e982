package gocoro

import (
	"context"
	"sync/atomic"
)

// Scheduler is a single-threaded, cooperative driver for spawned tasks. It
// never runs two ready tasks concurrently: BlockOn pops at most one
// not-yet-started task from the FIFO ready queue per outer iteration and
// drives it (along with whatever cascade of symmetric-transfer-style
// resumes that triggers) to the point where it either finishes or
// genuinely suspends, before considering the next one.
//
// The original hucoro C++ driver loop has a documented busy-spin bug in its
// inner retry loop; this implementation deliberately does not reproduce it.
type Scheduler struct {
	ready        []schedulable
	logger       Logger
	metrics      *Metrics
	panicHandler func(any)
	nextFrameID  atomic.Uint64
	id           uint64
}

var schedulerIDs atomic.Uint64

// NewScheduler builds a Scheduler, applying the given options.
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	cfg := resolveSchedulerOptions(opts)
	s := &Scheduler{
		logger:       cfg.logger,
		panicHandler: cfg.panicHandler,
		id:           schedulerIDs.Add(1),
	}
	if cfg.queueCapacityHint > 0 {
		s.ready = make([]schedulable, 0, cfg.queueCapacityHint)
	}
	if cfg.metricsEnabled {
		s.metrics = newMetrics()
	}
	return s
}

// Metrics returns the Scheduler's metrics snapshot, or a zero MetricsSnapshot if
// WithMetrics(true) was not supplied at construction.
func (s *Scheduler) Metrics() MetricsSnapshot {
	if s.metrics == nil {
		return MetricsSnapshot{}
	}
	return s.metrics.snapshot()
}

func (s *Scheduler) enqueue(h schedulable) {
	s.ready = append(s.ready, h)
	if s.metrics != nil {
		s.metrics.spawned.Add(1)
	}
	s.logFrame(LevelDebug, "spawn", h.id(), "task spawned", nil)
}

func (s *Scheduler) log(level Level, category, message string, err error) {
	s.logFrame(level, category, 0, message, err)
}

func (s *Scheduler) logFrame(level Level, category string, frameID uint64, message string, err error) {
	if s.logger == nil || !s.logger.IsEnabled(level) {
		return
	}
	s.logger.Log(Entry{
		Level:       level,
		Category:    category,
		SchedulerID: s.id,
		FrameID:     frameID,
		Message:     message,
		Err:         err,
	})
}

func (s *Scheduler) recoverPanic(v any) {
	if s.metrics != nil {
		s.metrics.panicked.Add(1)
	}
	s.log(LevelError, "panic", "task panicked", nil)
	if s.panicHandler != nil {
		s.panicHandler(v)
	}
}

// drive runs the corrected, non-spinning BlockOn loop: resume the root
// frame, then repeatedly pop and resume at most one not-yet-started ready
// task per iteration until the root finishes.
func (s *Scheduler) drive(root *frame) {
	root.resume()
	for !root.done {
		if len(s.ready) == 0 {
			// The root is suspended awaiting something that will never
			// resume it (no pending work can make progress). Returning
			// here, rather than spinning, is the deliberate fix for the
			// busy-spin bug in the original driver loop.
			return
		}
		next := s.ready[0]
		s.ready = s.ready[1:]
		if more := next.resume(); more {
			s.logFrame(LevelDebug, "resume", next.id(), "task suspended", nil)
		} else {
			if s.metrics != nil {
				s.metrics.completed.Add(1)
			}
			s.logFrame(LevelDebug, "resume", next.id(), "task finished", nil)
		}
	}
}

// BlockOn is the synchronous entry point: it runs fn as the root frame on
// Scheduler s, driving the ready queue until fn completes, and returns its
// result. Nested BlockOn calls (a spawned task itself calling BlockOn on a
// different Scheduler) are supported: each call's Scheduler is bound only
// within the context it returns/passes down, via ctx, never through global
// state.
func BlockOn[T any](ctx context.Context, s *Scheduler, fn func(context.Context) (T, error)) (T, error) {
	ctx = withScheduler(ctx, s)

	var (
		result T
		err    error
		panicV any
	)

	s.log(LevelDebug, "block_on", "enter", nil)
	root := newFrame(ctx, func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				panicV = r
			}
		}()
		result, err = fn(ctx)
	})

	s.drive(root)
	s.log(LevelDebug, "block_on", "exit", nil)

	if panicV != nil {
		s.recoverPanic(panicV)
		panic(panicV)
	}
	return result, err
}
