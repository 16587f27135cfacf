package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/beam"
	"github.com/strucalc/strucalc/internal/diagram"
	"github.com/strucalc/strucalc/internal/engine"
	"github.com/strucalc/strucalc/internal/model"
	"github.com/strucalc/strucalc/internal/seismic"
	"github.com/strucalc/strucalc/internal/soil"
)

var (
	analyzeFile string

	// Overrides for the most commonly varied parameters.
	analyzeStoreys int
	analyzeLength  float64
	analyzeWidth   float64
	analyzeHeight  float64

	analyzeDiagrams   bool
	analyzeImperial   bool
	analyzeSpectralSa float64
	analyzeSoilType   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Full building analysis from a YAML parameter file",
	Long: `Run the complete analysis of a framed building described by a YAML
parameter file: grid resolution, beam forces and deflections, column
buckling, code compliance, and optionally seismic response and
foundation design.

Examples:
  # Analyze a building description
  strucalc analyze --file examples/building.yaml

  # Override the storey count and include beam diagrams
  strucalc analyze --file building.yaml --storeys 5 --diagrams

  # Add a seismic estimate and a foundation on soft clay
  strucalc analyze --file building.yaml --sa 1.0 --soil soft-clay`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Building parameter YAML file [required]")
	analyzeCmd.MarkFlagRequired("file")

	analyzeCmd.Flags().IntVar(&analyzeStoreys, "storeys", 0, "Override storey count")
	analyzeCmd.Flags().Float64Var(&analyzeLength, "length", 0, "Override building length (m)")
	analyzeCmd.Flags().Float64Var(&analyzeWidth, "width", 0, "Override building width (m)")
	analyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 0, "Override building height (m)")

	analyzeCmd.Flags().BoolVar(&analyzeDiagrams, "diagrams", false, "Render beam diagrams for the worst beam line")
	analyzeCmd.Flags().BoolVar(&analyzeImperial, "imperial", false, "Report results in imperial units")
	analyzeCmd.Flags().Float64Var(&analyzeSpectralSa, "sa", 0, "Spectral acceleration (g); enables the seismic estimate")
	analyzeCmd.Flags().StringVar(&analyzeSoilType, "soil", "", "Soil type; enables foundation design")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	params, err := model.Load(analyzeFile)
	if err != nil {
		return err
	}
	if analyzeStoreys > 0 {
		params.Storeys = analyzeStoreys
	}
	if analyzeLength > 0 {
		params.Length = analyzeLength
	}
	if analyzeWidth > 0 {
		params.Width = analyzeWidth
	}
	if analyzeHeight > 0 {
		params.Height = analyzeHeight
	}

	opts := engine.Options{Diagrams: analyzeDiagrams}
	if analyzeSpectralSa > 0 {
		opts.Seismic = &seismic.Parameters{SpectralAcceleration: analyzeSpectralSa}
	}
	if analyzeSoilType != "" {
		opts.Foundation = &engine.FoundationOptions{Soil: soil.Properties{Type: analyzeSoilType}}
	}

	results, err := engine.Analyze(*params, nil, opts)
	if err != nil {
		return err
	}
	if analyzeImperial {
		results, err = engine.ConvertResults(results, model.UnitsMetric, model.UnitsImperial)
		if err != nil {
			return err
		}
	}

	printResults(results)
	return nil
}

func printResults(r *engine.CalculationResults) {
	lu, fu, su, pu, du := "m", "kN", "MPa", "kPa", "mm"
	fScale, sScale, pScale, dScale := 1e-3, 1e-6, 1e-3, 1e3
	if r.Units == model.UnitsImperial {
		lu, fu, su, pu, du = "ft", "lbf", "psi", "psi", "ft"
		fScale, sScale, pScale, dScale = 1, 1, 1, 1
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BUILDING ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("BUILDING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Footprint:\t%.1f x %.1f %s\n", r.Params.Length, r.Params.Width, lu)
	fmt.Fprintf(w, "  Height:\t%.1f %s (%d storeys)\n", r.Params.Height, lu, r.Params.Storeys)
	fmt.Fprintf(w, "  Grid:\t%d x %d columns\n", r.Params.ColumnsAlongLength, r.Params.ColumnsAlongWidth)
	fmt.Fprintf(w, "  Material:\t%s\n", r.Params.Material)
	fmt.Fprintf(w, "  Design code:\t%s\n", r.Code)
	w.Flush()
	fmt.Println()

	fmt.Println("GOVERNING LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination:\t%s (%s)\n", r.Governing.Name, r.Governing.Formula)
	fmt.Fprintf(w, "  Factored surface load:\t%.2f %s\n", r.FactoredSurfaceLoad*pScale, pu)
	w.Flush()
	fmt.Println()

	fmt.Println("BEAM LINES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Direction\tSpan (%s)\tw (%s/%s)\tMmax (%s·%s)\tδmax (%s)\tUtil.\n", lu, fu, lu, fu, lu, du)
	for _, b := range r.Beams {
		dir := "width"
		if b.AlongLength {
			dir = "length"
		}
		if b.Edge {
			dir += " (edge)"
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.1f\t%.1f\t%.2f\t%.2f\n",
			dir, b.Span, b.LineLoad*fScale, b.MaxMoment*fScale, b.MaxDeflection*dScale, b.Utilization)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("GOVERNING CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max deflection:\t%.2f %s\t(allowable %.2f %s)\t%s\n",
		r.MaxDeflection*dScale, du, r.AllowableDeflection*dScale, du, passFail(r.Checks.DeflectionOK))
	fmt.Fprintf(w, "  Max stress:\t%.2f %s\t(allowable %.2f %s)\t%s\n",
		r.MaxStress*sScale, su, r.AllowableStress*sScale, su, passFail(r.Checks.StressOK))
	if r.Buckling != nil {
		fmt.Fprintf(w, "  Column buckling factor:\t%.2f\t(Pcr %.0f %s)\t%s\n",
			r.Buckling.MinBucklingFactor, r.Buckling.CriticalLoad*fScale, fu, passFail(r.Buckling.Passes))
	}
	w.Flush()
	fmt.Println()

	if r.Dynamic != nil {
		fmt.Println("SEISMIC ESTIMATE:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Base shear:\t%.1f %s (Cs = %.3f)\n", r.Dynamic.BaseShear*fScale, fu, r.Dynamic.SeismicCoefficient)
		fmt.Fprintf(w, "  Fundamental period:\t%.3f s\n", r.Dynamic.Modes[0].Period)
		fmt.Fprintf(w, "  Drift check:\t%s\n", passFail(r.Dynamic.DriftsOK))
		w.Flush()
		fmt.Println()
	}

	if r.Foundation != nil {
		fmt.Println("FOUNDATION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		printFoundation(r.Foundation)
	}

	for _, warning := range r.Warnings {
		fmt.Printf("  ⚠ %s\n", warning)
	}

	if analyzeDiagrams && len(r.Beams) > 0 {
		worst := r.Beams[0]
		for _, b := range r.Beams[1:] {
			if b.Utilization > worst.Utilization {
				worst = b
			}
		}
		if worst.X != nil {
			fmt.Println()
			fmt.Println("WORST BEAM LINE DIAGRAMS:")
			fmt.Println(diagram.BeamDiagrams(&beam.Diagrams{
				X:          worst.X,
				Shear:      worst.Shear,
				Moment:     worst.Moment,
				Deflection: worst.Deflection,
			}))
		}
	}
}

func passFail(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAILS"
}
