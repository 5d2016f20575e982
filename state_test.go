package gocoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnState_String(t *testing.T) {
	cases := map[SpawnState]string{
		SpawnStateInit:            "Init",
		SpawnStateInProgress:      "InProgress",
		SpawnStateWaitingToResume: "WaitingToResume",
		SpawnStateFinish:          "Finish",
		SpawnState(99):            "Unknown",
	}
	for state, want := range cases {
		assert.Equal(t, want, state.String())
	}
}

func TestSpawnState_TryTransition(t *testing.T) {
	s := newSpawnState(SpawnStateInit)
	assert.Equal(t, SpawnStateInit, s.Load())

	assert.True(t, s.TryTransition(SpawnStateInit, SpawnStateInProgress))
	assert.Equal(t, SpawnStateInProgress, s.Load())

	// Wrong "from" fails and leaves state untouched.
	assert.False(t, s.TryTransition(SpawnStateInit, SpawnStateFinish))
	assert.Equal(t, SpawnStateInProgress, s.Load())
}

func TestSpawnState_Swap(t *testing.T) {
	s := newSpawnState(SpawnStateInProgress)
	prev := s.Swap(SpawnStateFinish)
	assert.Equal(t, SpawnStateInProgress, prev)
	assert.Equal(t, SpawnStateFinish, s.Load())
}
