package gocoro

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSchedulerOptions_Defaults(t *testing.T) {
	cfg := resolveSchedulerOptions(nil)
	assert.IsType(t, &NoOpLogger{}, cfg.logger)
	assert.False(t, cfg.metricsEnabled)
	assert.Nil(t, cfg.panicHandler)
	assert.Zero(t, cfg.queueCapacityHint)
}

func TestResolveSchedulerOptions_SkipsNil(t *testing.T) {
	cfg := resolveSchedulerOptions([]SchedulerOption{nil, WithMetrics(true), nil})
	assert.True(t, cfg.metricsEnabled)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(LevelDebug, &buf)
	cfg := resolveSchedulerOptions([]SchedulerOption{WithLogger(logger)})
	assert.Same(t, logger, cfg.logger)
}

func TestWithQueueCapacityHint(t *testing.T) {
	s := NewScheduler(WithQueueCapacityHint(16))
	assert.Equal(t, 0, len(s.ready))
	assert.Equal(t, 16, cap(s.ready))
}

func TestWithPanicHandler_Option(t *testing.T) {
	called := false
	cfg := resolveSchedulerOptions([]SchedulerOption{WithPanicHandler(func(any) { called = true })})
	cfg.panicHandler("x")
	assert.True(t, called)
}
