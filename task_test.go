package gocoro

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_LazyUntilAwaited(t *testing.T) {
	ran := false
	task := NewTask(func(ctx context.Context) (int, error) {
		ran = true
		return 42, nil
	})

	assert.False(t, task.Ready())
	assert.False(t, ran)

	v, err := task.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, ran)
}

func TestTask_RunsExactlyOnce(t *testing.T) {
	calls := 0
	task := NewTask(func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	})

	v1, _ := task.Await(context.Background())
	v2, _ := task.Await(context.Background())

	assert.Equal(t, 1, v1)
	assert.Equal(t, 1, v2)
	assert.Equal(t, 1, calls)
}

func TestTask_ResultBeforeAwaitIsErrNoResult(t *testing.T) {
	task := NewTask(func(ctx context.Context) (int, error) {
		return 1, nil
	})

	_, err := task.Result()
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestTask_ResultAfterAwaitMatches(t *testing.T) {
	task := NewTask(func(ctx context.Context) (string, error) {
		return "hi", nil
	})

	_, _ = task.Await(context.Background())
	v, err := task.Result()
	require.NoError(t, err)
	assert.Equal(t, "hi", v)
}

func TestTask_ErrorCached(t *testing.T) {
	wantErr := errors.New("boom")
	calls := 0
	task := NewTask(func(ctx context.Context) (int, error) {
		calls++
		return 0, wantErr
	})

	_, err1 := task.Await(context.Background())
	_, err2 := task.Await(context.Background())

	assert.ErrorIs(t, err1, wantErr)
	assert.ErrorIs(t, err2, wantErr)
	assert.Equal(t, 1, calls)
}

func TestTask_PanicRethrownOnEveryRead(t *testing.T) {
	task := NewTask(func(ctx context.Context) (int, error) {
		panic("kaboom")
	})

	assert.PanicsWithValue(t, "kaboom", func() {
		_, _ = task.Await(context.Background())
	})
	// Second read still re-panics with the same cached value.
	assert.PanicsWithValue(t, "kaboom", func() {
		_, _ = task.Await(context.Background())
	})
}

func TestTask_NeverAwaitedNeverRuns(t *testing.T) {
	ran := false
	_ = NewTask(func(ctx context.Context) (int, error) {
		ran = true
		return 0, nil
	})
	assert.False(t, ran)
}

func TestVoidTask(t *testing.T) {
	sideEffect := 0
	task := NewVoidTask(func(ctx context.Context) error {
		sideEffect++
		return nil
	})

	_, err := task.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sideEffect)
}
