package cmd

import (
	"github.com/spf13/cobra"
)

var dhcpCmd = &cobra.Command{
	Use:     "dhcp <interface>",
	Short:   "Enable DHCP on an interface",
	Example: `  golang-netcfg dhcp "Ethernet 2"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, err := newShell(cmd)
		if err != nil {
			return err
		}
		return sh.EnableDHCP(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(dhcpCmd)
}
