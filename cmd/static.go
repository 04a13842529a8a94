package cmd

import (
	"golang-netcfg/internal/types"

	"github.com/spf13/cobra"
)

var staticCmd = &cobra.Command{
	Use:     "static <interface> <ip> <netmask> <gateway>",
	Short:   "Set a static IP address on an interface",
	Example: `  golang-netcfg static Ethernet 192.168.1.100 255.255.255.0 192.168.1.1`,
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, err := newShell(cmd)
		if err != nil {
			return err
		}
		return sh.SetStaticAddress(cmd.Context(), args[0], types.StaticIPConfig{
			IPAddress: args[1],
			Netmask:   args[2],
			Gateway:   args[3],
		})
	},
}

func init() {
	rootCmd.AddCommand(staticCmd)
}
