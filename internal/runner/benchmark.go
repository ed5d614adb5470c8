package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// LaunchError means the benchmark process could not be started at all
// (missing binary, permissions, environment). Any unexpected invocation
// failure folds into this with its cause attached.
type LaunchError struct {
	Cause error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to execute benchmark: %v", e.Cause)
}

func (e *LaunchError) Unwrap() error {
	return e.Cause
}

// ExitError means the process started but exited non-zero. It carries the
// captured stderr so the failure can be reported with the benchmark's own
// diagnostics.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("benchmark exited with status %d", e.Code)
}

// TimeoutError means the process was killed after exceeding the configured
// run timeout. Kept distinct from ExitError so a hung build is not mistaken
// for a failing one.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("benchmark timed out after %s", e.Timeout)
}

// Benchmark invokes the external comparison benchmark and captures its output.
// Run blocks until the process finishes; a compile plus run can take minutes.
type Benchmark struct {
	Executor Executor
	Command  []string
	Dir      string
	Timeout  time.Duration // 0 disables the deadline
}

// Run executes the benchmark command in the configured working directory.
// It returns the captured streams on a zero exit status and one of the typed
// errors above otherwise. No retries are attempted; a failed run is terminal.
func (b *Benchmark) Run(ctx context.Context) (Output, error) {
	if len(b.Command) == 0 {
		return Output{}, &LaunchError{Cause: errors.New("no benchmark command configured")}
	}

	cancel := func() {}
	if b.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
	}
	defer cancel()

	slog.Debug("starting benchmark process",
		"command", strings.Join(b.Command, " "),
		"dir", b.Dir,
		"timeout", b.Timeout)

	out, err := b.Executor.Execute(ctx, b.Dir, b.Command[0], b.Command[1:]...)
	if err == nil {
		slog.Debug("benchmark finished", "stdout_bytes", len(out.Stdout), "stderr_bytes", len(out.Stderr))
		return out, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, &TimeoutError{Timeout: b.Timeout}
	}

	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return out, &ExitError{Code: exitErr.ExitCode(), Stderr: out.Stderr}
	}

	return out, &LaunchError{Cause: err}
}
