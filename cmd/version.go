package cmd

import (
	"fmt"
	"golang-netcfg/internal/pkg/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and git info",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetGitInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "Tag: %s\nCommit: %s\nTime: %s\nDirty: %v\n", info.Tag, info.Commit, info.Time, info.Dirty)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
