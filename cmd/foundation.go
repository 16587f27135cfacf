package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/foundation"
	"github.com/strucalc/strucalc/internal/soil"
)

var (
	fndType    string
	fndLoad    float64
	fndMoment  float64
	fndBearing float64
	fndSoil    string
	fndDepth   float64

	fndWallLength  float64
	fndSpacing     float64
	fndFootprintL  float64
	fndFootprintW  float64
	fndPileDia     float64
	fndColumnWidth float64
)

var foundationCmd = &cobra.Command{
	Use:   "foundation",
	Short: "Design a foundation element",
	Long: `Design a spread footing, strip footing, mat foundation or pile group
under service-level loads.

Spread and pile design take the single heaviest column load; strip takes
the total load on one wall line; mat takes the whole building load over
the footprint. The bearing capacity comes from --bearing, or from the
presumptive value for --soil when omitted.

Examples:
  strucalc foundation --type spread --load 800e3 --bearing 200e3
  strucalc foundation --type strip --load 2.4e6 --wall-length 12 --soil stiff-clay
  strucalc foundation --type mat --load 30e6 --footprint-length 25 --footprint-width 18 --soil medium-clay
  strucalc foundation --type pile --load 1.5e6 --moment 120e3 --soil soft-clay`,
	RunE: runFoundation,
}

func init() {
	rootCmd.AddCommand(foundationCmd)

	foundationCmd.Flags().StringVarP(&fndType, "type", "t", "", "Foundation type: spread, strip, mat, pile [required]")
	foundationCmd.Flags().Float64VarP(&fndLoad, "load", "P", 0, "Service axial load (N) [required]")
	foundationCmd.Flags().Float64VarP(&fndMoment, "moment", "M", 0, "Service overturning moment (N·m)")
	foundationCmd.Flags().Float64Var(&fndBearing, "bearing", 0, "Allowable bearing capacity (Pa)")
	foundationCmd.Flags().StringVar(&fndSoil, "soil", "", "Soil type, e.g. medium-clay, dense-sand")
	foundationCmd.Flags().Float64Var(&fndDepth, "depth", 0, "Founding depth below grade (m)")

	foundationCmd.Flags().Float64Var(&fndWallLength, "wall-length", 0, "Wall line length for strip footings (m)")
	foundationCmd.Flags().Float64Var(&fndSpacing, "spacing", 0, "Column spacing (m)")
	foundationCmd.Flags().Float64Var(&fndFootprintL, "footprint-length", 0, "Building footprint length for mats (m)")
	foundationCmd.Flags().Float64Var(&fndFootprintW, "footprint-width", 0, "Building footprint width for mats (m)")
	foundationCmd.Flags().Float64Var(&fndPileDia, "pile-diameter", 0, "Pile diameter (m)")
	foundationCmd.Flags().Float64Var(&fndColumnWidth, "column-width", 0, "Supported column width (m)")

	foundationCmd.MarkFlagRequired("type")
	foundationCmd.MarkFlagRequired("load")
}

func runFoundation(cmd *cobra.Command, args []string) error {
	bearing := fndBearing
	if bearing == 0 {
		if fndSoil == "" {
			return fmt.Errorf("supply --bearing or --soil")
		}
		bearing = soil.PresumptiveBearing(fndSoil)
	}

	var f *foundation.Foundation
	var err error

	switch fndType {
	case "spread":
		f, err = foundation.DesignSpreadFooting(foundation.SpreadInput{
			AxialLoad:       fndLoad,
			Moment:          fndMoment,
			BearingCapacity: bearing,
			DepthBelowGrade: fndDepth,
			ColumnWidth:     fndColumnWidth,
		})
	case "strip":
		if fndWallLength <= 0 {
			return fmt.Errorf("strip footings need --wall-length")
		}
		f, err = foundation.DesignStripFooting(foundation.StripInput{
			TotalLoad:       fndLoad,
			WallLength:      fndWallLength,
			ColumnSpacing:   fndSpacing,
			BearingCapacity: bearing,
			DepthBelowGrade: fndDepth,
		})
	case "mat":
		if fndFootprintL <= 0 || fndFootprintW <= 0 {
			return fmt.Errorf("mats need --footprint-length and --footprint-width")
		}
		f, err = foundation.DesignMatFoundation(foundation.MatInput{
			BuildingLength:  fndFootprintL,
			BuildingWidth:   fndFootprintW,
			TotalLoad:       fndLoad,
			ColumnSpacing:   fndSpacing,
			BearingCapacity: bearing,
			DepthBelowGrade: fndDepth,
		})
	case "pile":
		if fndSoil == "" {
			return fmt.Errorf("pile groups need --soil")
		}
		f, err = foundation.DesignPileGroup(foundation.PileInput{
			AxialLoad:       fndLoad,
			Moment:          fndMoment,
			Soil:            soil.Properties{Type: fndSoil},
			PileDiameter:    fndPileDia,
			DepthBelowGrade: fndDepth,
		})
	default:
		return fmt.Errorf("unknown foundation type %q, want spread, strip, mat or pile", fndType)
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FOUNDATION DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	printFoundation(f)
	return nil
}

// printFoundation renders a designed foundation as an aligned table. Shared
// with the analyze command's foundation section.
func printFoundation(f *foundation.Foundation) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", f.Type)
	fmt.Fprintf(w, "  Plan:\t%.2f × %.2f m\n", f.Length, f.Width)
	fmt.Fprintf(w, "  Thickness:\t%.2f m\n", f.Depth)
	fmt.Fprintf(w, "  Depth below grade:\t%.2f m\n", f.DepthBelowGrade)
	fmt.Fprintf(w, "  Material:\t%s\n", f.Material)
	fmt.Fprintf(w, "  Reinforcement:\t%s\n", f.Reinforcement)
	if f.BearingCapacity > 0 {
		fmt.Fprintf(w, "  Bearing capacity:\t%.0f kPa\n", f.BearingCapacity/1e3)
	}
	if f.MaxSoilPressure > 0 {
		fmt.Fprintf(w, "  Soil pressure:\t%.1f / %.1f kPa (max/min)\n",
			f.MaxSoilPressure/1e3, f.MinSoilPressure/1e3)
	}
	if f.Type == foundation.PileFoundation {
		fmt.Fprintf(w, "  Piles:\t%d × ⌀%.2f m, %.1f m long\n",
			f.PileCount, f.PileDiameter, f.PileLength)
		fmt.Fprintf(w, "  Group efficiency:\t%.2f\n", f.GroupEfficiency)
		fmt.Fprintf(w, "  Est. settlement:\t%.0f mm\n", f.EstimatedSettlement)
	}
	w.Flush()

	for _, warning := range f.Warnings {
		fmt.Printf("  ⚠ %s\n", warning)
	}
}
