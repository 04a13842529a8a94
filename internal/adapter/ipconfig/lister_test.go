//go:build unit

package ipconfig

import (
	"context"
	"errors"
	"testing"

	"golang-netcfg/internal/mock"
	"golang-netcfg/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sampleOutput = "\r\nWindows IP Configuration\r\n\r\n   Host Name . . . . . . . . . . . . : WS01\r\n"

func TestLister_ListAddresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock.NewMockCommandRunner(ctrl)
	lister := NewLister(runner)
	ctx := context.Background()

	t.Run("ReturnsStdoutVerbatim", func(t *testing.T) {
		runner.EXPECT().
			Run(ctx, "ipconfig", "/all").
			Return(&types.CommandResult{Stdout: []byte(sampleOutput)}, nil)

		out, err := lister.ListAddresses(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleOutput, string(out))
	})

	t.Run("NonZeroExit", func(t *testing.T) {
		runner.EXPECT().
			Run(ctx, "ipconfig", "/all").
			Return(&types.CommandResult{ExitCode: 1, Stderr: []byte("access denied")}, nil)

		out, err := lister.ListAddresses(ctx)
		assert.Nil(t, out)

		var cmdErr *types.CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, types.OpListAddresses, cmdErr.Op)
		assert.Equal(t, 1, cmdErr.ExitCode)
		assert.Equal(t, "access denied", string(cmdErr.Stderr))
		assert.Equal(t, "failed to retrieve IP addresses", err.Error())
	})

	t.Run("LaunchFailure", func(t *testing.T) {
		launchErr := errors.New(`failed to run ipconfig: exec: "ipconfig": executable file not found in $PATH`)
		runner.EXPECT().
			Run(ctx, "ipconfig", "/all").
			Return(nil, launchErr)

		_, err := lister.ListAddresses(ctx)
		assert.ErrorIs(t, err, launchErr)

		var cmdErr *types.CommandError
		assert.False(t, errors.As(err, &cmdErr))
	})
}
