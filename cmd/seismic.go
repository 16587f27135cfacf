package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/seismic"
)

var (
	seisStoreys   int
	seisHeight    float64
	seisMass      float64
	seisStiffness float64
	seisEI        float64
	seisSa        float64
	seisIe        float64
	seisR         float64
)

var seismicCmd = &cobra.Command{
	Use:   "seismic",
	Short: "Estimate seismic response of a lumped building",
	Long: `Run the equivalent-lateral-force seismic estimate on a lumped-mass
building model: base shear, approximate vibration modes, storey drifts
against the code drift limit, and the columns loaded hardest.

Storey mass and stiffness are per storey; --ei switches the drift model
from a shear building to a flexural cantilever.

Examples:
  strucalc seismic --storeys 4 --height 3 --mass 200e3 --stiffness 5e8 --sa 1.0
  strucalc seismic --storeys 8 --height 3.2 --mass 350e3 --stiffness 8e8 \
      --sa 1.2 --ie 1.25 --r 6`,
	RunE: runSeismic,
}

func init() {
	rootCmd.AddCommand(seismicCmd)

	seismicCmd.Flags().IntVarP(&seisStoreys, "storeys", "n", 0, "Number of storeys [required]")
	seismicCmd.Flags().Float64Var(&seisHeight, "height", 3.0, "Storey height (m)")
	seismicCmd.Flags().Float64VarP(&seisMass, "mass", "m", 0, "Mass per storey (kg) [required]")
	seismicCmd.Flags().Float64VarP(&seisStiffness, "stiffness", "k", 0, "Lateral stiffness per storey (N/m) [required]")
	seismicCmd.Flags().Float64Var(&seisEI, "ei", 0, "Cantilever flexural rigidity EI (N·m²), 0 = shear building")
	seismicCmd.Flags().Float64Var(&seisSa, "sa", 0, "Spectral acceleration Sa (g) [required]")
	seismicCmd.Flags().Float64Var(&seisIe, "ie", 0, "Importance factor Ie (default 1.0)")
	seismicCmd.Flags().Float64Var(&seisR, "r", 0, "Response modification factor R (default 8.0)")

	seismicCmd.MarkFlagRequired("storeys")
	seismicCmd.MarkFlagRequired("mass")
	seismicCmd.MarkFlagRequired("stiffness")
	seismicCmd.MarkFlagRequired("sa")
}

func runSeismic(cmd *cobra.Command, args []string) error {
	a, err := seismic.Analyze(seismic.Building{
		Storeys:          seisStoreys,
		StoreyHeight:     seisHeight,
		StoreyMass:       seisMass,
		StoreyStiffness:  seisStiffness,
		FlexuralRigidity: seisEI,
	}, seismic.Parameters{
		SpectralAcceleration: seisSa,
		ImportanceFactor:     seisIe,
		ResponseModification: seisR,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SEISMIC ESTIMATE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Seismic coefficient Cs:\t%.4f\n", a.SeismicCoefficient)
	fmt.Fprintf(w, "  Building weight:\t%.1f kN\n", a.BuildingWeight/1e3)
	fmt.Fprintf(w, "  Base shear:\t%.1f kN\n", a.BaseShear/1e3)
	fmt.Fprintf(w, "  Amplification:\t%.2f\n", a.Amplification)
	w.Flush()

	fmt.Println()
	fmt.Println("MODES:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  MODE\tFREQUENCY\tPERIOD\tPARTICIPATION")
	for _, m := range a.Modes {
		fmt.Fprintf(w, "  %d\t%.2f Hz\t%.3f s\t%.3f\n", m.Number, m.Frequency, m.Period, m.Participation)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("STOREY DRIFTS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  STOREY\tDRIFT\tRATIO")
	for i, d := range a.StoreyDrifts {
		fmt.Fprintf(w, "  %d\t%.2f mm\t%.5f\n", i+1, d*1e3, a.DriftRatios[i])
	}
	w.Flush()
	fmt.Printf("  Drift check: %s\n", passFail(a.DriftsOK))

	if len(a.CriticalElements) > 0 {
		fmt.Println()
		fmt.Println("CRITICAL ELEMENTS:")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  STOREY\tLOCATION\tSTRESS RATIO")
		for _, ce := range a.CriticalElements {
			fmt.Fprintf(w, "  %d\t%s\t%.2f\n", ce.Storey, ce.Location, ce.StressRatio)
		}
		w.Flush()
	}
	return nil
}
