package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gomoc/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gomoc",
	Short: "Moment-Curvature Analysis of RC Sections",
	Long: `gomoc - Go Moment-Curvature

A CLI tool for computing the moment-curvature relationship of
symmetric reinforced concrete cross-sections under a prescribed
axial force, using fiber discretization and the GB 50010-2010
material laws.

The section is described by a symmetric contour (elevation and
half width) plus top, middle and bottom reinforcement layers in
a JSON configuration file.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gomoc v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Moment-Curvature Analyzer                            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Moment-curvature analysis of symmetric reinforced concrete")
		fmt.Println("  cross-sections per GB 50010-2010.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Fiber discretization of arbitrary symmetric contours")
		fmt.Println("    • Axial equilibrium solved per curvature step")
		fmt.Println("    • Failure detection (concrete crushing, steel rupture)")
		fmt.Println("    • ASCII charts plus png/svg/pdf, csv and xlsx export")
		fmt.Println()
		fmt.Println("  Use 'gomoc --help' to see available commands.")
		fmt.Println()
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
