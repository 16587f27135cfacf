package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strucalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("strucalc v%s\n", version.Version)
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
