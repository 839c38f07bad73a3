package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vesper/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show vesper build information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "vesper %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(out, "built: %s\n", version.BuildDate)
		}
	},
}
