package cmd

import (
	"fmt"
	"macnetconfig/internal/pkg/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build info",
	// Printing the version must not depend on a valid config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetGitInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "Tag: %s\nCommit: %s\nDirty: %v\nGo: %s\n", info.Tag, info.Commit, info.Dirty, info.Go)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
