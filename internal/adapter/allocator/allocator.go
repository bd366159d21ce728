// Package allocator picks an unused host address in a /24 subnet by probing
// candidates in random order.
package allocator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/netip"

	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/port"
)

// DefaultMaxAttempts caps how many candidates are probed.
const DefaultMaxAttempts = 100

// Host number bounds of a /24. Host 1 is left to the network.
const (
	firstHost = 2
	lastHost  = 254
)

// ErrNoAvailableAddress is returned when every probed candidate answered.
var ErrNoAvailableAddress = errors.New("no available IP found in subnet")

// ShuffleFunc permutes n elements through swap, like rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// Allocator is an adapter that implements the AddressAllocator port.
type Allocator struct {
	subnet      netip.Prefix
	router      netip.Addr
	prober      port.Prober
	maxAttempts int
	shuffle     ShuffleFunc
}

// Ensure Allocator implements the AddressAllocator port
var _ port.AddressAllocator = (*Allocator)(nil)

// Option configures an Allocator.
type Option func(*Allocator)

// WithMaxAttempts overrides DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(a *Allocator) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

// WithShuffle replaces the random candidate order.
func WithShuffle(shuffle ShuffleFunc) Option {
	return func(a *Allocator) {
		a.shuffle = shuffle
	}
}

// New creates an allocator for subnet, which must be an IPv4 /24 containing
// router.
func New(subnet netip.Prefix, router netip.Addr, prober port.Prober, opts ...Option) (*Allocator, error) {
	if !subnet.Addr().Is4() || subnet.Bits() != 24 {
		return nil, fmt.Errorf("subnet %s must be an IPv4 /24 network", subnet)
	}
	subnet = subnet.Masked()
	if !subnet.Contains(router) {
		return nil, fmt.Errorf("router %s is outside subnet %s", router, subnet)
	}

	a := &Allocator{
		subnet:      subnet,
		router:      router,
		prober:      prober,
		maxAttempts: DefaultMaxAttempts,
		shuffle:     rand.Shuffle,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Candidates returns the host numbers 2 through 254 except the router's, in
// ascending order.
func Candidates(router netip.Addr) []uint8 {
	routerHost := router.As4()[3]

	hosts := make([]uint8, 0, lastHost-firstHost+1)
	for n := firstHost; n <= lastHost; n++ {
		if uint8(n) != routerHost {
			hosts = append(hosts, uint8(n))
		}
	}

	return hosts
}

// IsCandidate reports whether ip lies in subnet and is one of the
// Candidates for router.
func IsCandidate(subnet netip.Prefix, router netip.Addr, ip netip.Addr) bool {
	if !ip.Is4() || !subnet.Contains(ip) {
		return false
	}

	host := ip.As4()[3]
	return host >= firstHost && host <= lastHost && host != router.As4()[3]
}

// Allocate probes shuffled candidates, at most maxAttempts of them, and
// returns the first address that does not answer.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	logger := logging.WithComponent("allocator").WithField("subnet", a.subnet.String())

	hosts := Candidates(a.router)
	a.shuffle(len(hosts), func(i, j int) {
		hosts[i], hosts[j] = hosts[j], hosts[i]
	})
	if len(hosts) > a.maxAttempts {
		hosts = hosts[:a.maxAttempts]
	}

	for i, host := range hosts {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		ip := a.addr(host).String()

		alive, err := a.prober.IsAlive(ctx, ip)
		if err != nil {
			return "", fmt.Errorf("failed to probe %s: %w", ip, err)
		}
		if !alive {
			logger.WithFields(map[string]interface{}{
				"ip":       ip,
				"attempts": i + 1,
			}).Info("Found free address")
			return ip, nil
		}

		logger.WithField("ip", ip).Debug("Address in use")
	}

	logger.WithField("attempts", len(hosts)).Warn("No free address found")

	return "", ErrNoAvailableAddress
}

func (a *Allocator) addr(host uint8) netip.Addr {
	b := a.subnet.Addr().As4()
	b[3] = host
	return netip.AddrFrom4(b)
}
