// Package gocoro is a single-threaded, cooperative coroutine runtime.
//
// It provides three building blocks:
//
//   - Task[T], a lazy, single-consumer unit of work that runs exactly once,
//     on first await, and caches its result (value, error, or panic) for
//     every subsequent read.
//   - Spawn / JoinHandle[T], an eagerly-scheduled unit of work started on a
//     Scheduler's FIFO ready queue, whose result can be awaited zero or one
//     times via its JoinHandle.
//   - Scheduler, a single-threaded cooperative driver with BlockOn (the
//     synchronous entry point) and Spawn (valid only while a Scheduler is
//     reachable through the current context.Context).
//
// There is exactly one genuine suspension point in this runtime: awaiting a
// JoinHandle whose task has not yet finished. Everything else - running a
// Task, spawning work, reading an already-finished result - completes
// synchronously from the caller's perspective. Suspension and resumption are
// implemented with a goroutine per spawned frame, rendezvousing over a pair
// of unbuffered channels; this gives deterministic, symmetric-transfer-like
// handoff (strict FIFO first-resume ordering, exactly-once execution) without
// requiring a real stackful-coroutine primitive.
//
// The current Scheduler and the current frame's suspend/resume handle travel
// through context.Context, set by BlockOn and threaded automatically into
// every Task/Spawn body. Callers that fork their own goroutines or detach a
// context lose access to Spawn and JoinHandle.Await from within them, by
// design - this is a single-threaded model.
//
// Example:
//
//	s := gocoro.NewScheduler(gocoro.WithMetrics(true))
//	result, err := gocoro.BlockOn(context.Background(), s, func(ctx context.Context) (int, error) {
//		h1, _ := gocoro.Spawn(ctx, func(ctx context.Context) (int, error) { return 1, nil })
//		h2, _ := gocoro.Spawn(ctx, func(ctx context.Context) (int, error) { return 2, nil })
//		a, err := h1.Await(ctx)
//		if err != nil {
//			return 0, err
//		}
//		b, err := h2.Await(ctx)
//		if err != nil {
//			return 0, err
//		}
//		return a + b, nil
//	})
package gocoro
