//go:build unit

package probe

import (
	"context"
	"testing"
	"time"

	"macnetconfig/internal/mock"
	"macnetconfig/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExecProber_IsAlive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock.NewMockCommandRunner(ctrl)
	prober := NewExecProber(runner, time.Second)
	ctx := context.Background()

	t.Run("HostAnswers", func(t *testing.T) {
		runner.EXPECT().
			Run(ctx, "ping", "-c", "1", "-W", "1000", "192.168.50.10").
			Return(nil)

		alive, err := prober.IsAlive(ctx, "192.168.50.10")
		require.NoError(t, err)
		assert.True(t, alive)
	})

	t.Run("HostSilent", func(t *testing.T) {
		runner.EXPECT().
			Run(ctx, "ping", "-c", "1", "-W", "1000", "192.168.50.11").
			Return(&types.CommandError{Command: "ping", ExitCode: 2})

		alive, err := prober.IsAlive(ctx, "192.168.50.11")
		require.NoError(t, err)
		assert.False(t, alive)
	})

	t.Run("PingUnavailable", func(t *testing.T) {
		runner.EXPECT().
			Run(ctx, "ping", "-c", "1", "-W", "1000", "192.168.50.12").
			Return(assert.AnError)

		_, err := prober.IsAlive(ctx, "192.168.50.12")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run ping")
	})

	t.Run("Cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		runner.EXPECT().
			Run(cancelled, "ping", "-c", "1", "-W", "1000", "192.168.50.13").
			Return(&types.CommandError{Command: "ping", ExitCode: -1})

		_, err := prober.IsAlive(cancelled, "192.168.50.13")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewExecProber_DefaultTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock.NewMockCommandRunner(ctrl)
	prober := NewExecProber(runner, 0)
	assert.Equal(t, DefaultTimeout, prober.timeout)

	runner.EXPECT().
		Run(gomock.Any(), "ping", "-c", "1", "-W", "1000", "10.0.0.1").
		Return(nil)

	_, err := prober.IsAlive(context.Background(), "10.0.0.1")
	assert.NoError(t, err)
}

func TestICMPProber_InvalidAddress(t *testing.T) {
	prober := NewICMPProber(100*time.Millisecond, false)

	_, err := prober.IsAlive(context.Background(), "not an address..")
	assert.Error(t, err)
}
