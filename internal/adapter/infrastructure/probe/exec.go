// Package probe provides host liveness check adapters.
package probe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/port"
	"macnetconfig/internal/types"
)

// DefaultTimeout bounds a single probe.
const DefaultTimeout = time.Second

// ExecProber is an adapter that implements the Prober port by running the
// system ping tool, so it needs no extra privileges.
type ExecProber struct {
	runner  port.CommandRunner
	timeout time.Duration
}

// Ensure ExecProber implements the Prober port
var _ port.Prober = (*ExecProber)(nil)

// NewExecProber creates a prober that runs "ping -c 1 -W <ms> <ip>".
func NewExecProber(runner port.CommandRunner, timeout time.Duration) *ExecProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &ExecProber{
		runner:  runner,
		timeout: timeout,
	}
}

// IsAlive reports whether ip answered a single echo request. A non-zero exit
// status of ping means no answer; failing to run ping at all is an error.
func (p *ExecProber) IsAlive(ctx context.Context, ip string) (bool, error) {
	logger := logging.WithComponent("probe").WithField("ip", ip)

	// macOS ping takes -W in milliseconds.
	waitMs := strconv.FormatInt(p.timeout.Milliseconds(), 10)

	err := p.runner.Run(ctx, "ping", "-c", "1", "-W", waitMs, ip)
	if err == nil {
		logger.Debug("Host answered")
		return true, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}

	var cmdErr *types.CommandError
	if errors.As(err, &cmdErr) {
		logger.WithField("status", cmdErr.ExitCode).Debug("Host did not answer")
		return false, nil
	}

	return false, fmt.Errorf("failed to run ping: %w", err)
}
