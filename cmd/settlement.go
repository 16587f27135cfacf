package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/foundation"
	"github.com/strucalc/strucalc/internal/settlement"
	"github.com/strucalc/strucalc/internal/soil"
)

var (
	setType    string
	setLength  float64
	setWidth   float64
	setDepth   float64
	setGrade   float64
	setLoad    float64
	setMoment  float64
	setSoil    string
	setPreload float64
)

var settlementCmd = &cobra.Command{
	Use:   "settlement",
	Short: "Estimate settlement of a foundation",
	Long: `Estimate the immediate, consolidation and secondary settlement of a
foundation on a given soil, with the time to 90% consolidation and a
risk classification. Mat foundations additionally get a 3x3 settlement
profile over the footprint.

Soil index properties are estimated from the soil type; give
--preconsolidation to credit an overconsolidated deposit.

Examples:
  strucalc settlement --type spread --length 2 --width 2 --load 800e3 --soil medium-clay
  strucalc settlement --type mat --length 25 --width 18 --load 40e6 --soil soft-clay`,
	RunE: runSettlement,
}

func init() {
	rootCmd.AddCommand(settlementCmd)

	settlementCmd.Flags().StringVarP(&setType, "type", "t", "spread", "Foundation type: spread, strip, mat, pile")
	settlementCmd.Flags().Float64Var(&setLength, "length", 0, "Foundation length (m) [required]")
	settlementCmd.Flags().Float64Var(&setWidth, "width", 0, "Foundation width (m) [required]")
	settlementCmd.Flags().Float64Var(&setDepth, "depth", 0.5, "Foundation thickness (m)")
	settlementCmd.Flags().Float64Var(&setGrade, "grade-depth", 1.5, "Founding depth below grade (m)")
	settlementCmd.Flags().Float64VarP(&setLoad, "load", "P", 0, "Service axial load (N) [required]")
	settlementCmd.Flags().Float64VarP(&setMoment, "moment", "M", 0, "Service moment (N·m)")
	settlementCmd.Flags().StringVar(&setSoil, "soil", "medium-clay", "Soil type")
	settlementCmd.Flags().Float64Var(&setPreload, "preconsolidation", 0, "Preconsolidation pressure (Pa)")

	settlementCmd.MarkFlagRequired("length")
	settlementCmd.MarkFlagRequired("width")
	settlementCmd.MarkFlagRequired("load")
}

// settlementFoundationType maps the short CLI names onto foundation types.
var settlementFoundationType = map[string]foundation.Type{
	"spread": foundation.SpreadFooting,
	"strip":  foundation.StripFooting,
	"mat":    foundation.MatFoundation,
	"pile":   foundation.PileFoundation,
}

func runSettlement(cmd *cobra.Command, args []string) error {
	ft, ok := settlementFoundationType[setType]
	if !ok {
		return fmt.Errorf("unknown foundation type %q, want spread, strip, mat or pile", setType)
	}

	f := &foundation.Foundation{
		Type:            ft,
		Length:          setLength,
		Width:           setWidth,
		Depth:           setDepth,
		DepthBelowGrade: setGrade,
	}
	props := soil.Properties{
		Type:                     setSoil,
		PreconsolidationPressure: setPreload,
	}

	r, err := settlement.Analyze(f, props, settlement.Input{
		AxialLoad: setLoad,
		Moment:    setMoment,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SETTLEMENT ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Immediate:\t%.1f mm\n", r.Immediate)
	fmt.Fprintf(w, "  Consolidation:\t%.1f mm\n", r.Consolidation)
	fmt.Fprintf(w, "  Secondary:\t%.1f mm\n", r.Secondary)
	fmt.Fprintf(w, "  Total:\t%.0f mm\n", r.Total)
	if r.TimeTo90 > 0 {
		fmt.Fprintf(w, "  Time to 90%% consolidation:\t%.1f years\n", r.TimeTo90)
	}
	fmt.Fprintf(w, "  Risk:\t%s\n", r.Risk)
	w.Flush()

	if r.Profile != nil {
		fmt.Println()
		fmt.Println("SETTLEMENT PROFILE (mm):")
		for _, row := range r.Profile {
			fmt.Printf("  %8.1f %8.1f %8.1f\n", row[0], row[1], row[2])
		}
	}
	for _, n := range r.Notes {
		fmt.Printf("  ⚠ %s\n", n)
	}
	return nil
}
