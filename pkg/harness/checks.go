package harness

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/harrisonrobin/tasktimer/pkg/timer"
	"go.uber.org/zap"
)

// DefaultChecks returns the built-in TaskTimer scenarios. They sleep on the
// environment clock, so with the wall clock a full run takes well under a second.
func DefaultChecks() []Check {
	return []Check{
		{Name: "Initialization", Run: checkInitialization},
		{Name: "Elapsed Time", Run: checkElapsedTime},
		{Name: "Pause Functionality", Run: checkPause},
		{Name: "Resume Functionality", Run: checkResume},
		{Name: "Formatted Duration", Run: checkFormattedDuration},
		{Name: "Multiple Pause/Resume Cycles", Run: checkPauseResumeCycles},
	}
}

func checkInitialization(_ context.Context, env *Env) error {
	for _, taskID := range []string{"test-task-123", uuid.NewString()} {
		t := timer.New(taskID, timer.WithClock(env.Clock))
		if err := Expect(t.TaskID() == taskID, "Task ID mismatch: got %q, want %q", t.TaskID(), taskID); err != nil {
			return err
		}
		if err := Expect(!t.IsPaused(), "Timer should not be paused initially"); err != nil {
			return err
		}
	}
	return nil
}

func checkElapsedTime(ctx context.Context, env *Env) error {
	t := timer.New("test", timer.WithClock(env.Clock))

	if err := env.Sleep(ctx, 150*time.Millisecond); err != nil {
		return err
	}

	elapsed := t.ElapsedSeconds()
	env.Log.Debug("Elapsed after sleep", zap.Object("timer", t))
	return Expect(elapsed >= 0.14 && elapsed < 0.25, "Elapsed time: %gs, expected ~0.15s", elapsed)
}

func checkPause(ctx context.Context, env *Env) error {
	t := timer.New("test", timer.WithClock(env.Clock))

	if err := env.Sleep(ctx, 100*time.Millisecond); err != nil {
		return err
	}
	t.Pause()

	if err := Expect(t.IsPaused(), "Timer should be paused"); err != nil {
		return err
	}

	atPause := t.ElapsedSeconds()
	if err := env.Sleep(ctx, 100*time.Millisecond); err != nil {
		return err
	}

	diff := math.Abs(t.ElapsedSeconds() - atPause)
	return Expect(diff < 0.01, "Time should not advance while paused (drifted %gs)", diff)
}

func checkResume(_ context.Context, env *Env) error {
	t := timer.New("test", timer.WithClock(env.Clock))

	t.Pause()
	if err := Expect(t.IsPaused(), "Timer should be paused"); err != nil {
		return err
	}

	t.Resume()
	return Expect(!t.IsPaused(), "Timer should be running")
}

func checkFormattedDuration(_ context.Context, env *Env) error {
	start := env.Clock.Now().Add(-3665 * time.Second)
	t := timer.New("test", timer.WithClock(env.Clock), timer.WithStartTime(start))

	formatted := t.FormattedDuration()
	return Expect(formatted == "01:01:05", "Formatted duration: %s, expected 01:01:05", formatted)
}

func checkPauseResumeCycles(ctx context.Context, env *Env) error {
	t := timer.New("test", timer.WithClock(env.Clock))

	if err := env.Sleep(ctx, 100*time.Millisecond); err != nil {
		return err
	}
	t.Pause()

	if err := env.Sleep(ctx, 100*time.Millisecond); err != nil {
		return err
	}
	t.Resume()

	if err := env.Sleep(ctx, 100*time.Millisecond); err != nil {
		return err
	}

	elapsed := t.ElapsedSeconds()
	env.Log.Debug("Elapsed after cycles", zap.Object("timer", t))
	return Expect(elapsed >= 0.18 && elapsed < 0.35, "Total elapsed: %gs, expected ~0.2s", elapsed)
}
