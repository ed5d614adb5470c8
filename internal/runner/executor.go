package runner

import (
	"bytes"
	"context"
	"os/exec"
)

// Output holds the captured streams of a finished benchmark process. Stdout
// carries the parseable records; stderr is diagnostic only and is never merged
// into the parse stream.
type Output struct {
	Stdout string
	Stderr string
}

// Executor abstracts the external command invocation so tests can substitute
// canned output without launching a real process.
type Executor interface {
	Execute(ctx context.Context, dir, name string, args ...string) (Output, error)
}

// ExecExecutor runs commands with os/exec.
type ExecExecutor struct{}

func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

func (e *ExecExecutor) Execute(ctx context.Context, dir, name string, args ...string) (Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
