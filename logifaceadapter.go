package gocoro

import "github.com/joeycumines/logiface"

// schedulerEvent is the logiface.Event implementation backing the logiface
// adapter: a plain field bag, handed to whatever Writer the caller's
// logiface.Logger was configured with.
type schedulerEvent struct {
	logiface.UnimplementedEvent
	level   logiface.Level
	message string
	err     error
	fields  map[string]any
}

func (e *schedulerEvent) Level() logiface.Level { return e.level }

func (e *schedulerEvent) AddField(key string, val any) {
	if e.fields == nil {
		e.fields = make(map[string]any, 4)
	}
	e.fields[key] = val
}

func (e *schedulerEvent) AddMessage(msg string) bool {
	e.message = msg
	return true
}

func (e *schedulerEvent) AddError(err error) bool {
	e.err = err
	return true
}

// schedulerEventFactory builds schedulerEvent values for a logiface.Logger.
type schedulerEventFactory struct{}

func (schedulerEventFactory) NewEvent(level logiface.Level) *schedulerEvent {
	return &schedulerEvent{level: level}
}

// logifaceLogger adapts a logiface.Logger[logiface.Event] - any concrete
// backend the caller has configured - to this package's Logger interface,
// so a Scheduler's lifecycle logging flows through the caller's own
// structured-logging pipeline rather than a bespoke one.
type logifaceLogger struct {
	logger *logiface.Logger[logiface.Event]
}

// NewLogifaceLogger wraps an already-configured logiface logger as a
// Logger, suitable for WithLogger.
func NewLogifaceLogger(logger *logiface.Logger[logiface.Event]) Logger {
	return &logifaceLogger{logger: logger}
}

func toLogifaceLevel(l Level) logiface.Level {
	switch l {
	case LevelDebug:
		return logiface.LevelDebug
	case LevelWarn:
		return logiface.LevelWarning
	case LevelError:
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}

// IsEnabled reports whether level would be logged by the wrapped logger.
func (a *logifaceLogger) IsEnabled(level Level) bool {
	return a.logger.Level() >= toLogifaceLevel(level)
}

// Log builds and emits one logiface event for entry.
func (a *logifaceLogger) Log(entry Entry) {
	b := a.logger.Build(toLogifaceLevel(entry.Level))
	if !b.Enabled() {
		return
	}
	b.Str("category", entry.Category)
	if entry.SchedulerID != 0 {
		b.Int("scheduler_id", int(entry.SchedulerID))
	}
	if entry.FrameID != 0 {
		b.Int("frame_id", int(entry.FrameID))
	}
	for k, v := range entry.Context {
		b.Field(k, v)
	}
	if entry.Err != nil {
		b.Err(entry.Err)
	}
	b.Log(entry.Message)
}

// NewDefaultLogifaceLogger builds a ready-to-use logiface-backed Logger at
// the given minimum level, writing schedulerEvent values to writer.
func NewDefaultLogifaceLogger(minLevel Level, writer logiface.Writer[*schedulerEvent]) Logger {
	l := logiface.New[*schedulerEvent](
		logiface.WithLevel[*schedulerEvent](toLogifaceLevel(minLevel)),
		logiface.WithEventFactory[*schedulerEvent](schedulerEventFactory{}),
		logiface.WithWriter[*schedulerEvent](writer),
	)
	return NewLogifaceLogger(l.Logger())
}
