package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomoc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomoc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gomoc v%s\n", version.Version)
		fmt.Println("Moment-Curvature Analysis of RC Sections (GB 50010-2010)")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
