package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/foundation"
	"github.com/strucalc/strucalc/internal/soil"
)

var (
	recLoad     float64
	recArea     float64
	recHeight   float64
	recSoil     string
	recWater    float64
	recAdjacent bool
	recSchedule bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a foundation type for a site",
	Long: `Recommend a foundation type from the building demand and the site
conditions. The decision weighs the demand-to-capacity pressure ratio,
the soil behaviour and the constructability constraints, and comes with
its rationale.

Examples:
  strucalc recommend --load 25e6 --area 300 --height 18 --soil medium-clay
  strucalc recommend --load 40e6 --area 200 --height 30 --soil soft-clay \
      --water-table 2 --adjacent`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().Float64VarP(&recLoad, "load", "P", 0, "Total building load (N) [required]")
	recommendCmd.Flags().Float64VarP(&recArea, "area", "a", 0, "Footprint area (m²) [required]")
	recommendCmd.Flags().Float64Var(&recHeight, "height", 0, "Building height (m)")
	recommendCmd.Flags().StringVar(&recSoil, "soil", "medium-clay", "Soil type at founding level")
	recommendCmd.Flags().Float64Var(&recWater, "water-table", 0, "Water table depth below grade (m), 0 = deep")
	recommendCmd.Flags().BoolVar(&recAdjacent, "adjacent", false, "Adjacent structures sensitive to movement")
	recommendCmd.Flags().BoolVar(&recSchedule, "tight-schedule", false, "Construction schedule is tight")

	recommendCmd.MarkFlagRequired("load")
	recommendCmd.MarkFlagRequired("area")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	rec, err := foundation.Recommend(recLoad, recArea, recHeight, foundation.SiteConditions{
		Soil:               soil.Properties{Type: recSoil},
		WaterTableDepth:    recWater,
		AdjacentStructures: recAdjacent,
		TightSchedule:      recSchedule,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FOUNDATION RECOMMENDATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Recommended type:  %s\n", rec.Type)
	fmt.Printf("  Pressure ratio:    %.2f\n", rec.PressureRatio)
	fmt.Println()
	fmt.Println("RATIONALE:")
	for _, r := range rec.Rationale {
		fmt.Printf("  • %s\n", r)
	}
	if len(rec.SpecialConsiderations) > 0 {
		fmt.Println()
		fmt.Println("SPECIAL CONSIDERATIONS:")
		for _, s := range rec.SpecialConsiderations {
			fmt.Printf("  ⚠ %s\n", s)
		}
	}
	return nil
}
