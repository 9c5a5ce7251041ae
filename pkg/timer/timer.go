package timer

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/harrisonrobin/tasktimer/pkg/util"
	"go.uber.org/zap/zapcore"
)

// TaskTimer measures the active (non-paused) time spent on a task.
// It is safe for concurrent use.
type TaskTimer struct {
	taskID    string
	startTime time.Time
	clock     clock.Clock

	mu          sync.RWMutex
	accumulated time.Duration // completed run segments only
	lastResume  time.Time
	paused      bool
}

// Option configures a TaskTimer at construction.
type Option func(*TaskTimer)

// WithStartTime sets the instant the timer started running. Defaults to now.
func WithStartTime(t time.Time) Option {
	return func(tt *TaskTimer) {
		tt.startTime = t
	}
}

// WithClock sets the time source. Defaults to the wall clock.
func WithClock(c clock.Clock) Option {
	return func(tt *TaskTimer) {
		tt.clock = c
	}
}

// New returns a running timer for taskID. The ID is never interpreted and
// need not be unique.
func New(taskID string, opts ...Option) *TaskTimer {
	t := &TaskTimer{taskID: taskID}
	for _, opt := range opts {
		opt(t)
	}
	if t.clock == nil {
		t.clock = clock.New()
	}
	if t.startTime.IsZero() {
		t.startTime = t.clock.Now()
	}
	t.lastResume = t.startTime
	return t
}

func (t *TaskTimer) TaskID() string { return t.taskID }

func (t *TaskTimer) StartTime() time.Time { return t.startTime }

// Elapsed returns the total active time. While running this includes the
// live segment since the last resume. The result is not clamped: a clock
// that moves backwards can make it negative.
func (t *TaskTimer) Elapsed() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.elapsed()
}

func (t *TaskTimer) elapsed() time.Duration {
	if t.paused {
		return t.accumulated
	}
	return t.accumulated + t.clock.Now().Sub(t.lastResume)
}

// ElapsedSeconds returns Elapsed in fractional seconds.
func (t *TaskTimer) ElapsedSeconds() float64 {
	return util.Seconds(t.Elapsed())
}

// Pause stops accruing time. Pausing a paused timer does nothing.
func (t *TaskTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused {
		return
	}
	t.accumulated += t.clock.Now().Sub(t.lastResume)
	t.paused = true
}

// Resume starts a new run segment. Resuming a running timer does nothing.
func (t *TaskTimer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.paused {
		return
	}
	t.lastResume = t.clock.Now()
	t.paused = false
}

func (t *TaskTimer) IsPaused() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.paused
}

// FormattedDuration renders Elapsed as HH:MM:SS, truncated to whole seconds.
func (t *TaskTimer) FormattedDuration() string {
	return util.FormatClock(t.Elapsed())
}

func (t *TaskTimer) String() string {
	return t.FormattedDuration()
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (t *TaskTimer) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	enc.AddString("task_id", t.taskID)
	enc.AddDuration("elapsed", t.elapsed())
	enc.AddBool("paused", t.paused)
	return nil
}
