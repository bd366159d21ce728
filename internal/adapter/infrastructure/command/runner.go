// Package command provides the external command adapter implementation.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/port"
	"macnetconfig/internal/types"
)

// RunnerAdapter is an adapter that implements the CommandRunner port using os/exec.
type RunnerAdapter struct{}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new command runner adapter.
func NewRunnerAdapter() *RunnerAdapter {
	return &RunnerAdapter{}
}

// Output runs the command and returns its standard output.
func (r *RunnerAdapter) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return out, r.wrap(name, args, err, stderr.String())
	}

	return out, nil
}

// Run runs the command and waits for it to exit, discarding its output.
func (r *RunnerAdapter) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return r.wrap(name, args, err, stderr.String())
	}

	return nil
}

func (r *RunnerAdapter) wrap(name string, args []string, err error, stderr string) error {
	logger := logging.WithComponent("command").WithField("command", name+" "+strings.Join(args, " "))

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(stderr); msg != "" {
			logger = logger.WithField("stderr", msg)
		}
		logger.WithField("status", exitErr.ExitCode()).Debug("Command exited with non-zero status")

		return &types.CommandError{Command: name, ExitCode: exitErr.ExitCode()}
	}

	return fmt.Errorf("failed to run %s: %w", name, err)
}
