package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/catalog"
	"github.com/strucalc/strucalc/internal/column"
	"github.com/strucalc/strucalc/internal/diagram"
)

var (
	colLength  float64
	colLoad    float64
	colSection string
	colMat     string
	colE       float64
	colInertia float64
	colArea    float64
	colK       float64
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Check a column for Euler buckling",
	Long: `Check a compression member against Euler buckling and report the
critical load, slenderness and axial stress.

Section properties come from a catalog section or from explicit
--inertia/--area values. The effective length factor --k takes the
standard values 0.5, 0.7, 1.0, 1.5 or 2.0 and defaults to a pin-ended
column.

Examples:
  strucalc column --length 3.5 --load 500e3 --section "HEB 200" --material S235
  strucalc column --length 4 --load 800e3 --e 2.1e11 --inertia 8.36e-5 --area 7.81e-3 --k 0.7`,
	RunE: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)

	columnCmd.Flags().Float64VarP(&colLength, "length", "l", 0, "Unbraced length (m) [required]")
	columnCmd.Flags().Float64VarP(&colLoad, "load", "P", 0, "Demand axial load (N) [required]")
	columnCmd.Flags().StringVar(&colSection, "section", "", "Catalog section name")
	columnCmd.Flags().StringVar(&colMat, "material", "", "Catalog material name")
	columnCmd.Flags().Float64Var(&colE, "e", 0, "Elastic modulus (Pa), overrides the material")
	columnCmd.Flags().Float64Var(&colInertia, "inertia", 0, "Weak-axis second moment of area (m⁴)")
	columnCmd.Flags().Float64Var(&colArea, "area", 0, "Cross-sectional area (m²)")
	columnCmd.Flags().Float64VarP(&colK, "k", "k", 1.0, "Effective length factor")

	columnCmd.MarkFlagRequired("length")
	columnCmd.MarkFlagRequired("load")
}

func runColumn(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	e, inertia, area := colE, colInertia, colArea

	if colMat != "" && e == 0 {
		mat, err := cat.Material(colMat)
		if err != nil {
			return err
		}
		e = mat.ElasticModulus
	}
	if colSection != "" {
		sec, err := cat.Section(colSection)
		if err != nil {
			return err
		}
		if inertia == 0 {
			inertia = sec.Iy
		}
		if area == 0 {
			area = sec.Area
		}
	}

	c, err := column.New(colLength, e, inertia, area, column.EffectiveLengthFactor(colK))
	if err != nil {
		return err
	}
	chk, err := c.Evaluate(colLoad)
	if err != nil {
		return err
	}

	verdict := "PASSES"
	if !chk.Passes {
		verdict = "FAILS"
	}
	fmt.Println(diagram.SummaryBox("COLUMN CHECK", []string{
		fmt.Sprintf("Critical load:    %.1f kN", chk.CriticalLoad/1e3),
		fmt.Sprintf("Demand load:      %.1f kN", colLoad/1e3),
		fmt.Sprintf("Buckling factor:  %.2f", chk.BucklingFactor),
		fmt.Sprintf("Slenderness KL/r: %.1f", chk.Slenderness),
		fmt.Sprintf("Axial stress:     %.2f MPa", chk.AxialStress/1e6),
		fmt.Sprintf("Verdict:          %s", verdict),
	}))
	return nil
}
