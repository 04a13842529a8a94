//go:build unit

package command

import (
	"context"
	"runtime"
	"testing"
	"time"

	"golang-netcfg/internal/pkg/charset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
}

func TestNewRunnerAdapter(t *testing.T) {
	adapter := NewRunnerAdapter(nil)
	assert.NotNil(t, adapter)
}

func TestRunnerAdapter_Run(t *testing.T) {
	skipOnWindows(t)
	adapter := NewRunnerAdapter(nil)
	ctx := context.Background()

	t.Run("CapturesStdoutAndStderrSeparately", func(t *testing.T) {
		result, err := adapter.Run(ctx, "/bin/sh", "-c", "printf out; printf err 1>&2")
		require.NoError(t, err)
		assert.True(t, result.Success())
		assert.Equal(t, "out", string(result.Stdout))
		assert.Equal(t, "err", string(result.Stderr))
	})

	t.Run("NonZeroExitIsNotAnError", func(t *testing.T) {
		result, err := adapter.Run(ctx, "/bin/sh", "-c", "printf 'The filename is incorrect.' 1>&2; exit 1")
		require.NoError(t, err)
		assert.False(t, result.Success())
		assert.Equal(t, 1, result.ExitCode)
		assert.Equal(t, "The filename is incorrect.", string(result.Stderr))
	})

	t.Run("LaunchFailure", func(t *testing.T) {
		result, err := adapter.Run(ctx, "definitely-not-a-real-tool-xyz")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to run definitely-not-a-real-tool-xyz")
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := adapter.Run(ctx, "/bin/sh", "-c", "sleep 5")
		assert.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRunnerAdapter_Run_Decoding(t *testing.T) {
	skipOnWindows(t)

	enc, err := charset.Lookup("IBM850")
	require.NoError(t, err)
	adapter := NewRunnerAdapter(enc)

	result, err := adapter.Run(context.Background(), "/bin/sh", "-c", `printf 'r\202seau'`)
	require.NoError(t, err)
	assert.Equal(t, "réseau", string(result.Stdout))
}
