// Package harness runs named timing checks against a TaskTimer, prints a
// pass/fail report and aggregates failures into a single error.
package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrChecksFailed is returned by Runner.Run when at least one check failed.
var ErrChecksFailed = errors.New("checks failed")

// AssertionError reports an observed value outside its expected window.
type AssertionError struct {
	Check   string
	Message string
}

func (e *AssertionError) Error() string {
	if e.Check == "" {
		return "assertion failed: " + e.Message
	}
	return fmt.Sprintf("assertion failed in %q: %s", e.Check, e.Message)
}

// Expect returns an *AssertionError carrying the formatted message when cond
// is false, and nil otherwise.
func Expect(cond bool, format string, args ...interface{}) error {
	if cond {
		return nil
	}
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// Env is handed to every check.
type Env struct {
	Clock clock.Clock
	Log   *zap.Logger
}

// Sleep waits for d on the environment's clock or until ctx is done.
func (e *Env) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.Clock.After(d):
		return nil
	}
}

// Check is a single named scenario.
type Check struct {
	Name string
	Run  func(ctx context.Context, env *Env) error
}

// Report summarises a run. Err aggregates every check error.
type Report struct {
	Passed   int
	Failed   int
	Duration time.Duration
	Err      error
}

type Runner struct {
	w      io.Writer
	log    *zap.Logger
	clock  clock.Clock
	filter map[string]bool
}

type RunnerOption func(*Runner)

// WithClock sets the clock used for sleeps and run timing.
func WithClock(c clock.Clock) RunnerOption {
	return func(r *Runner) {
		r.clock = c
	}
}

// WithFilter restricts the run to the named checks. An empty list runs all.
func WithFilter(names []string) RunnerOption {
	return func(r *Runner) {
		if len(names) == 0 {
			r.filter = nil
			return
		}
		r.filter = make(map[string]bool, len(names))
		for _, n := range names {
			r.filter[n] = true
		}
	}
}

// NewRunner returns a Runner printing its report to w.
func NewRunner(w io.Writer, log *zap.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{w: w, log: log}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	if r.clock == nil {
		r.clock = clock.New()
	}
	return r
}

// Run executes checks in order. It returns an error wrapping ErrChecksFailed
// and every individual failure when any check fails.
func (r *Runner) Run(ctx context.Context, checks []Check) (Report, error) {
	selected, err := r.selectChecks(checks)
	if err != nil {
		return Report{}, err
	}

	var report Report
	env := &Env{Clock: r.clock, Log: r.log}
	start := r.clock.Now()

	fmt.Fprintf(r.w, "🧪 Running TaskTimer Tests\n\n")
	for _, c := range selected {
		fmt.Fprintf(r.w, "▸ Testing %s...", c.Name)

		checkStart := r.clock.Now()
		err := ctx.Err()
		if err == nil {
			err = c.Run(ctx, env)
		}
		took := r.clock.Since(checkStart)

		if err != nil {
			var ae *AssertionError
			if errors.As(err, &ae) && ae.Check == "" {
				ae.Check = c.Name
			}
			fmt.Fprintf(r.w, " ✗\n  Error: %v\n", err)
			r.log.Debug("Check failed", zap.String("check", c.Name), zap.Duration("took", took), zap.Error(err))
			report.Failed++
			report.Err = multierr.Append(report.Err, fmt.Errorf("%s: %w", c.Name, err))
			continue
		}

		fmt.Fprintf(r.w, " ✓\n")
		r.log.Debug("Check passed", zap.String("check", c.Name), zap.Duration("took", took))
		report.Passed++
	}
	report.Duration = r.clock.Since(start)

	fmt.Fprintf(r.w, "\n%s\n", strings.Repeat("=", 50))
	if report.Failed == 0 {
		fmt.Fprintf(r.w, "✅ All %d tests passed in %.2fs\n", report.Passed, report.Duration.Seconds())
		return report, nil
	}
	fmt.Fprintf(r.w, "❌ %d test(s) failed, %d passed\n", report.Failed, report.Passed)
	return report, fmt.Errorf("%w: %w", ErrChecksFailed, report.Err)
}

func (r *Runner) selectChecks(checks []Check) ([]Check, error) {
	if r.filter == nil {
		return checks, nil
	}

	known := make(map[string]bool, len(checks))
	var selected []Check
	for _, c := range checks {
		known[c.Name] = true
		if r.filter[c.Name] {
			selected = append(selected, c)
		}
	}
	for name := range r.filter {
		if !known[name] {
			return nil, fmt.Errorf("unknown check %q", name)
		}
	}
	return selected, nil
}
