package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/cost"
	"github.com/strucalc/strucalc/internal/foundation"
)

var (
	costType    string
	costLength  float64
	costWidth   float64
	costDepth   float64
	costGrade   float64
	costPiles   int
	costPileLen float64
	costRegion  string
	costScale   string
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Estimate construction cost of a foundation",
	Long: `Take off the construction quantities of a foundation and price them
against a regional rate table, adjusted for project scale.

Known regions: ` + strings.Join(cost.Regions(), ", ") + `.
Scales: small, medium, large.

Examples:
  strucalc cost --type spread --length 2.4 --width 2.4 --depth 0.6
  strucalc cost --type pile --length 4 --width 4 --depth 0.9 \
      --piles 12 --pile-length 14 --region europe --scale large`,
	RunE: runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)

	costCmd.Flags().StringVarP(&costType, "type", "t", "spread", "Foundation type: spread, strip, mat, pile")
	costCmd.Flags().Float64Var(&costLength, "length", 0, "Foundation length (m) [required]")
	costCmd.Flags().Float64Var(&costWidth, "width", 0, "Foundation width (m) [required]")
	costCmd.Flags().Float64Var(&costDepth, "depth", 0, "Foundation thickness (m) [required]")
	costCmd.Flags().Float64Var(&costGrade, "grade-depth", 0, "Founding depth below grade (m)")
	costCmd.Flags().IntVar(&costPiles, "piles", 0, "Pile count for pile foundations")
	costCmd.Flags().Float64Var(&costPileLen, "pile-length", 0, "Pile length (m)")
	costCmd.Flags().StringVar(&costRegion, "region", "", "Regional rate table (default north-america)")
	costCmd.Flags().StringVar(&costScale, "scale", "", "Project scale: small, medium, large")

	costCmd.MarkFlagRequired("length")
	costCmd.MarkFlagRequired("width")
	costCmd.MarkFlagRequired("depth")
}

func runCost(cmd *cobra.Command, args []string) error {
	ft, ok := settlementFoundationType[costType]
	if !ok {
		return fmt.Errorf("unknown foundation type %q, want spread, strip, mat or pile", costType)
	}

	f := &foundation.Foundation{
		Type:            ft,
		Length:          costLength,
		Width:           costWidth,
		Depth:           costDepth,
		DepthBelowGrade: costGrade,
		PileCount:       costPiles,
		PileLength:      costPileLen,
	}
	b, err := cost.Estimate(f, costRegion, cost.Scale(costScale))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          COST ESTIMATE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Region: %s, scale: %s\n", b.Region, b.Scale)
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ITEM\tQUANTITY\tCOST")
	fmt.Fprintf(w, "  Concrete\t%.1f m³\t%.2f\n", b.Quantities.ConcreteVolume, b.Concrete)
	fmt.Fprintf(w, "  Reinforcement\t%.0f kg\t%.2f\n", b.Quantities.SteelMass, b.Steel)
	fmt.Fprintf(w, "  Excavation\t%.1f m³\t%.2f\n", b.Quantities.ExcavationVolume, b.Excavation)
	fmt.Fprintf(w, "  Formwork\t%.1f m²\t%.2f\n", b.Quantities.FormworkArea, b.Formwork)
	if b.Quantities.PilingLength > 0 {
		fmt.Fprintf(w, "  Piling\t%.0f m\t%.2f\n", b.Quantities.PilingLength, b.Piling)
	}
	w.Flush()
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  TOTAL: %.2f\n", b.Total)
	return nil
}
