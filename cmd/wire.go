package cmd

import (
	"golang-netcfg/internal/adapter/dhcp"
	"golang-netcfg/internal/adapter/infrastructure/command"
	"golang-netcfg/internal/adapter/ipconfig"
	"golang-netcfg/internal/adapter/static"
	"golang-netcfg/internal/pkg/charset"
	"golang-netcfg/internal/pkg/config"
	"golang-netcfg/internal/pkg/spinner"
	"golang-netcfg/internal/port"
	"golang-netcfg/internal/shell"

	"github.com/spf13/cobra"
)

// newRunner creates the CommandRunner every adapter shares. Tests replace it.
var newRunner = func(c *config.Config) (port.CommandRunner, error) {
	enc, err := charset.Lookup(c.Output.Encoding)
	if err != nil {
		return nil, err
	}
	return command.NewRunnerAdapter(enc), nil
}

// newShell wires the adapters to the command's streams
func newShell(cmd *cobra.Command) (*shell.Shell, error) {
	runner, err := newRunner(cfg)
	if err != nil {
		return nil, err
	}

	progress := spinner.Disabled
	if cfg.Progress {
		progress = spinner.Start
	}

	return shell.New(
		cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
		ipconfig.NewLister(runner),
		dhcp.NewManager(runner),
		static.NewManager(runner),
		shell.WithProgress(progress),
	), nil
}
