package gocoro

import "sync/atomic"

// SpawnState is the lifecycle state of a spawned task's shared promise.
//
// State Machine:
//
//	Init (0) -> InProgress (1)            [scheduler's first resume]
//	Init (0) -> WaitingToResume (2)        [a JoinHandle suspends before the first resume]
//	InProgress (1) -> WaitingToResume (2)  [a JoinHandle suspends awaiting it]
//	InProgress (1) -> Finish (3)           [body completes, nobody was waiting]
//	WaitingToResume (2) -> Finish (3)      [body completes, awaiter resumed]
//
// This mirrors hucoro::detail::SpawnTaskPromiseState's four states exactly;
// unlike the C++ original there is no refcount field here, since frame
// teardown is left to the Go garbage collector rather than modeled
// explicitly (see DESIGN.md).
type SpawnState uint32

const (
	SpawnStateInit SpawnState = iota
	SpawnStateInProgress
	SpawnStateWaitingToResume
	SpawnStateFinish
)

// String returns a human-readable representation of the state.
func (s SpawnState) String() string {
	switch s {
	case SpawnStateInit:
		return "Init"
	case SpawnStateInProgress:
		return "InProgress"
	case SpawnStateWaitingToResume:
		return "WaitingToResume"
	case SpawnStateFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// spawnState is a lock-free state holder: cache-line padded, pure atomic
// CAS, no transition validation beyond what TryTransition's from/to pair
// expresses.
type spawnState struct {
	_ [64]byte
	v atomic.Uint32
	_ [60]byte
}

func newSpawnState(initial SpawnState) *spawnState {
	s := &spawnState{}
	s.v.Store(uint32(initial))
	return s
}

// Load returns the current state atomically.
func (s *spawnState) Load() SpawnState {
	return SpawnState(s.v.Load())
}

// TryTransition attempts to atomically move from one state to another,
// returning whether it succeeded.
func (s *spawnState) TryTransition(from, to SpawnState) bool {
	return s.v.CompareAndSwap(uint32(from), uint32(to))
}

// Swap atomically stores to and returns the previous state.
func (s *spawnState) Swap(to SpawnState) SpawnState {
	return SpawnState(s.v.Swap(uint32(to)))
}
