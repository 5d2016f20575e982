package gocoro

import "context"

// spawnPromise holds the shared state between a spawned task's scheduler-
// side handle and the caller-side JoinHandle: the result slot, the 4-state
// machine, and (at most one) registered awaiter frame. It is the Go
// counterpart of hucoro::detail::SpawnTaskPromiseState, minus the refcount
// field - see DESIGN.md for why manual teardown bookkeeping is dropped.
type spawnPromise[T any] struct {
	state   *spawnState
	value   T
	err     error
	panicV  any
	awaiter *frame
}

// finish runs from inside the spawned frame's own body, as it returns. It
// transitions the promise to Finish and, if a JoinHandle had registered
// itself as the awaiter (because it suspended before this task completed),
// resumes that frame directly - the Go equivalent of hucoro's final-suspend
// symmetric transfer back to the awaiting coroutine.
func (p *spawnPromise[T]) finish() {
	prev := p.state.Swap(SpawnStateFinish)
	if prev == SpawnStateWaitingToResume {
		p.awaiter.resume()
	}
}

// schedulable is what a Scheduler's ready queue holds: anything that can be
// resumed from a not-yet-started state.
type schedulable interface {
	resume() bool
	id() uint64
}

// spawnTaskHandle is the scheduler-side handle to a spawned task: the frame
// driving its execution plus the promise its JoinHandle(s) observe.
type spawnTaskHandle[T any] struct {
	promise *spawnPromise[T]
	frame   *frame
	frameID uint64
}

func (h *spawnTaskHandle[T]) resume() bool {
	h.promise.state.TryTransition(SpawnStateInit, SpawnStateInProgress)
	return h.frame.resume()
}

func (h *spawnTaskHandle[T]) id() uint64 {
	return h.frameID
}

// JoinHandle observes the result of a spawned task. It is single-consumer:
// calling Await more than once returns ErrJoinHandleAlreadyAwaited.
type JoinHandle[T any] struct {
	promise *spawnPromise[T]
	awaited bool
}

// State reports the spawned task's current lifecycle state.
func (h *JoinHandle[T]) State() SpawnState {
	return h.promise.state.Load()
}

// Await waits for the spawned task to finish and returns its result. If the
// task has already finished, Await returns immediately. Otherwise it
// suspends the calling frame (found via ctx) until the task's completion
// symmetrically resumes it. Await must be called from within a running
// frame (a Task/spawned body, or BlockOn's own root) - calling it from
// outside one returns ErrAwaitOutsideFrame.
func (h *JoinHandle[T]) Await(ctx context.Context) (T, error) {
	var zero T
	if h.awaited {
		return zero, ErrJoinHandleAlreadyAwaited
	}
	h.awaited = true

	p := h.promise
	if p.state.Load() != SpawnStateFinish {
		y := yielderFromContext(ctx)
		if y == nil {
			return zero, ErrAwaitOutsideFrame
		}
		p.awaiter = y.f
		// Unconditional exchange, not a from-InProgress CAS: the awaited
		// task may not have started yet (still Init), matching hucoro's
		// JoinHandleBase::await_suspend doing state_.exchange(WAITING_TO_RESUME)
		// regardless of the prior state. Only skip suspending if it has
		// already finished in the window since the Load above.
		if prev := p.state.Swap(SpawnStateWaitingToResume); prev != SpawnStateFinish {
			y.Yield()
		}
	}

	if p.panicV != nil {
		panic(p.panicV)
	}
	return p.value, p.err
}

// Spawn eagerly schedules fn onto the Scheduler reachable through ctx and
// returns a JoinHandle for observing its result. It returns
// ErrSpawnOutsideScheduler if ctx carries no current Scheduler, i.e. it was
// not derived from the ctx passed to BlockOn (or threaded into a
// Task/spawned body running beneath it).
func Spawn[T any](ctx context.Context, fn func(context.Context) (T, error)) (*JoinHandle[T], error) {
	s := schedulerFromContext(ctx)
	if s == nil {
		return nil, ErrSpawnOutsideScheduler
	}

	promise := &spawnPromise[T]{state: newSpawnState(SpawnStateInit)}
	f := newFrame(ctx, func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				promise.panicV = r
				s.recoverPanic(r)
			}
			promise.finish()
		}()
		promise.value, promise.err = fn(ctx)
	})

	h := &spawnTaskHandle[T]{promise: promise, frame: f, frameID: s.nextFrameID.Add(1)}
	s.enqueue(h)
	return &JoinHandle[T]{promise: promise}, nil
}

// SpawnVoid is a convenience wrapper around Spawn for side-effecting work
// with no result value, per hucoro's JoinHandle<void> specialization.
func SpawnVoid(ctx context.Context, fn func(context.Context) error) (*JoinHandle[Void], error) {
	return Spawn(ctx, func(ctx context.Context) (Void, error) {
		return Void{}, fn(ctx)
	})
}
