package tailscale

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Outcome is the classified result of a single external invocation.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (o Outcome) Success() bool {
	return o.ExitCode == 0
}

type Runner interface {
	Run(ctx context.Context, cmd Command, timeout time.Duration) Outcome
}

type ExecRunner struct{}

func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

// Run invokes the command synchronously with a bounded wall-clock timeout
// and classifies the result. Every failure mode, a missing binary and an
// expired timeout included, is folded into the returned outcome so that
// callers deal with exactly one shape.
//
// The invocation must survive a client disconnect, so the request context
// contributes values only, not cancellation.
func (r ExecRunner) Run(ctx context.Context, cmd Command, timeout time.Duration) Outcome {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	execCmd := exec.CommandContext(ctx, cmd.Binary(), cmd.Args()...)
	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()
	outcome := Outcome{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err == nil {
		return outcome
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		outcome.ExitCode = exitErr.ExitCode()
	} else {
		outcome.ExitCode = -1
	}
	switch {
	case ctx.Err() == context.DeadlineExceeded:
		outcome.Stderr = appendReason(outcome.Stderr, fmt.Sprintf("timed out after %s", timeout))
	case outcome.ExitCode == -1:
		outcome.Stderr = appendReason(outcome.Stderr, err.Error())
	}

	return outcome
}

func appendReason(stderr string, reason string) string {
	if stderr == "" {
		return reason
	}
	return stderr + "\n" + reason
}
