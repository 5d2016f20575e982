package gocoro

import (
	"errors"
	"fmt"
)

// ErrSpawnOutsideScheduler is returned by Spawn when ctx carries no current
// Scheduler, i.e. it was not derived from the ctx passed into BlockOn (or
// into a Task/spawned body running underneath it).
var ErrSpawnOutsideScheduler = errors.New("gocoro: spawn outside the scope of a scheduler")

// ErrNoResult is returned by Task.Result when asked for a result before the
// task has run.
var ErrNoResult = errors.New("gocoro: no result available, await it first")

// ErrJoinHandleAlreadyAwaited is returned by JoinHandle.Await when called
// more than once. A JoinHandle is single-consumer, matching Task.
var ErrJoinHandleAlreadyAwaited = errors.New("gocoro: join handle already awaited")

// ErrAwaitOutsideFrame is returned by JoinHandle.Await when ctx carries no
// current frame to suspend - i.e. Await was called from outside any
// Task/spawned body or the BlockOn root.
var ErrAwaitOutsideFrame = errors.New("gocoro: await outside a running frame")

// PanicError wraps a recovered panic value as an error. Task and JoinHandle
// do not produce it: a panic in a Task or spawned body is rethrown to the
// reader with its original value, not converted to an error. PanicError
// exists so callers that choose to recover at a boundary can wrap the
// original value and, if it was itself an error, unwrap it.
type PanicError struct {
	Value any
}

// Error implements error.
func (e PanicError) Error() string {
	return fmt.Sprintf("gocoro: recovered panic: %v", e.Value)
}

// Unwrap returns the underlying error if the panic value is an error,
// enabling errors.Is/errors.As through a recovered panic's cause chain.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// WrapError wraps cause with a message, in the style of fmt.Errorf's %w,
// preserving errors.Is/errors.As against cause.
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}
