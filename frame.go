package gocoro

import "context"

// ctxKey distinguishes the values gocoro stores in a context.Context.
type ctxKey int

const (
	ctxKeyScheduler ctxKey = iota
	ctxKeyYielder
)

func withScheduler(ctx context.Context, s *Scheduler) context.Context {
	return context.WithValue(ctx, ctxKeyScheduler, s)
}

// schedulerFromContext returns the Scheduler reachable through ctx, or nil.
func schedulerFromContext(ctx context.Context) *Scheduler {
	s, _ := ctx.Value(ctxKeyScheduler).(*Scheduler)
	return s
}

// CurrentScheduler returns the Scheduler that would receive a Spawn call
// made with this ctx, or nil if ctx was not derived from a running
// BlockOn's context. Exposed for invariant P6 (nil before and after every
// top-level BlockOn call) and for diagnostics.
func CurrentScheduler(ctx context.Context) *Scheduler {
	return schedulerFromContext(ctx)
}

func withYielder(ctx context.Context, y *Yielder) context.Context {
	return context.WithValue(ctx, ctxKeyYielder, y)
}

func yielderFromContext(ctx context.Context) *Yielder {
	y, _ := ctx.Value(ctxKeyYielder).(*Yielder)
	return y
}

// frame is the Go analogue of a C++ stackful coroutine frame: a suspendable
// body of code running on its own goroutine, handed control and taken back
// via a blocking rendezvous on a pair of unbuffered channels rather than a
// true symmetric-transfer CPU handoff. The externally observable behavior is
// the same: a frame only ever gives up control at a point its own body
// chooses (by calling Yielder.Yield), and whoever resumes it blocks until it
// either suspends again or finishes.
type frame struct {
	resumeCh chan struct{}
	yieldCh  chan struct{}
	finished chan struct{}
	done     bool
}

// Yielder is handed to a frame's body (via its context) so it can suspend
// itself. There is no public way to construct one; it only ever reaches a
// body through the context threaded in by BlockOn/Spawn.
type Yielder struct {
	f *frame
}

// Yield suspends the calling frame until the next resume targeting it.
func (y *Yielder) Yield() {
	y.f.yieldCh <- struct{}{}
	<-y.f.resumeCh
}

// newFrame builds a frame whose body is run, on its own goroutine, the
// first time it is resumed. ctx is augmented with the frame's own Yielder
// before run is invoked, so Await calls made (directly or transitively)
// from within run can find their way back to this frame.
func newFrame(ctx context.Context, run func(ctx context.Context)) *frame {
	f := &frame{
		resumeCh: make(chan struct{}),
		yieldCh:  make(chan struct{}),
		finished: make(chan struct{}),
	}
	go func() {
		<-f.resumeCh
		run(withYielder(ctx, &Yielder{f: f}))
		f.done = true
		close(f.finished)
	}()
	return f
}

// resume hands control to the frame and blocks until it either suspends
// again (true) or finishes (false). If resume itself triggers a cascade of
// further resumes (e.g. this frame finishing wakes up whoever was awaiting
// it, which may itself run to completion or suspend), that entire cascade
// completes before resume returns - this is what gives the driver loop its
// deterministic, one-ready-task-at-a-time behavior.
func (f *frame) resume() bool {
	f.resumeCh <- struct{}{}
	select {
	case <-f.yieldCh:
		return true
	case <-f.finished:
		return false
	}
}
