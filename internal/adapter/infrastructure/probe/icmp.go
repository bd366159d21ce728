package probe

import (
	"context"
	"fmt"
	"time"

	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/port"

	"github.com/go-ping/ping"
)

// ICMPProber is an adapter that implements the Prober port by sending an
// ICMP echo itself. In unprivileged mode it uses datagram ICMP sockets,
// which macOS allows for regular users.
type ICMPProber struct {
	timeout    time.Duration
	privileged bool
}

// Ensure ICMPProber implements the Prober port
var _ port.Prober = (*ICMPProber)(nil)

// NewICMPProber creates an in-process ICMP prober.
func NewICMPProber(timeout time.Duration, privileged bool) *ICMPProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &ICMPProber{
		timeout:    timeout,
		privileged: privileged,
	}
}

// IsAlive reports whether ip replied to a single echo request within the
// timeout.
func (p *ICMPProber) IsAlive(ctx context.Context, ip string) (bool, error) {
	logger := logging.WithComponent("probe").WithField("ip", ip)

	pinger, err := ping.NewPinger(ip)
	if err != nil {
		return false, fmt.Errorf("failed to create pinger for %s: %w", ip, err)
	}

	pinger.SetPrivileged(p.privileged)
	pinger.Timeout = p.timeout
	pinger.Count = 1

	reply := false
	pinger.OnRecv = func(_ *ping.Packet) {
		reply = true
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-done:
		}
	}()

	logger.Debug("Sending ICMP echo")

	if err := pinger.Run(); err != nil {
		return false, fmt.Errorf("failed to ping %s: %w", ip, err)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	logger.WithField("reply", reply).Debug("ICMP probe complete")

	return reply, nil
}
