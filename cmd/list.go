package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the full IP configuration (ipconfig /all)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, err := newShell(cmd)
		if err != nil {
			return err
		}
		return sh.ListAddresses(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
