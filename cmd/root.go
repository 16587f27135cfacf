package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "strucalc",
	Short: "Parametric structural analysis for framed buildings",
	Long: `strucalc - Structural Calculator

A CLI tool for the parametric analysis and design of rectangular
framed buildings.

From a handful of building parameters it derives the structural grid,
solves every beam line, checks the columns for Euler buckling, applies
code load combinations, and optionally sizes a foundation, estimates
settlement, runs a simplified seismic analysis and prices the result.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   strucalc v%-46s║\n", version.Version)
		fmt.Println("  ║   Parametric Structural Calculator                        ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    analyze     Full building analysis from a YAML parameter file")
		fmt.Println("    beam        Solve a single beam span")
		fmt.Println("    column      Check a column for Euler buckling")
		fmt.Println("    combos      Apply code load combinations")
		fmt.Println("    foundation  Design a foundation")
		fmt.Println("    recommend   Recommend a foundation type")
		fmt.Println("    settlement  Estimate foundation settlement")
		fmt.Println("    seismic     Simplified seismic and modal analysis")
		fmt.Println("    cost        Price a designed foundation")
		fmt.Println()
		fmt.Println("  Use 'strucalc --help' to see all commands and flags.")
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
