package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strucalc/strucalc/internal/beam"
	"github.com/strucalc/strucalc/internal/catalog"
	"github.com/strucalc/strucalc/internal/diagram"
)

// Station count for the standalone beam tool's sampled diagrams.
const beamStations = 101

var (
	beamSpan    float64
	beamUDL     float64
	beamSupport string
	beamSection string
	beamMat     string
	beamE       float64
	beamInertia float64
	beamDepth   float64

	beamPoints  []string
	beamMoments []string

	beamPlot   bool
	beamExport string
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Solve a single beam span",
	Long: `Solve a single-span beam under a uniformly distributed load and
optional concentrated loads, and report reactions, peak moment, shear,
deflection and stress.

Stiffness comes either from a catalog section and material or from
explicit --e/--inertia/--depth values. Concentrated loads are given as
magnitude@position pairs and require a simply supported span.

Examples:
  # IPE 200 in S235 over 5 m under 10 kN/m
  strucalc beam --span 5 --udl 10000 --section "IPE 200" --material S235

  # Add a 12 kN point load at 2.5 m and plot the diagrams
  strucalc beam --span 5 --udl 10000 --section "IPE 200" --material S235 \
      --point 12000@2.5 --plot

  # Fixed-ended span with explicit stiffness, exported as images
  strucalc beam --span 4 --udl 8000 --support fixed-fixed \
      --e 2.1e11 --inertia 1.94e-4 --depth 0.2 --export beam.png`,
	RunE: runBeam,
}

func init() {
	rootCmd.AddCommand(beamCmd)

	beamCmd.Flags().Float64VarP(&beamSpan, "span", "s", 0, "Span length (m) [required]")
	beamCmd.Flags().Float64VarP(&beamUDL, "udl", "w", 0, "Uniformly distributed load (N/m)")
	beamCmd.Flags().StringVar(&beamSupport, "support", "simple",
		"Support condition: simple, fixed-fixed, cantilever, continuous, fixed-pinned")

	beamCmd.Flags().StringVar(&beamSection, "section", "", "Catalog section name, e.g. \"IPE 200\"")
	beamCmd.Flags().StringVar(&beamMat, "material", "", "Catalog material name, e.g. S235")
	beamCmd.Flags().Float64Var(&beamE, "e", 0, "Elastic modulus (Pa), overrides the material")
	beamCmd.Flags().Float64Var(&beamInertia, "inertia", 0, "Second moment of area (m⁴), overrides the section")
	beamCmd.Flags().Float64Var(&beamDepth, "depth", 0, "Section depth (m), overrides the section")

	beamCmd.Flags().StringArrayVar(&beamPoints, "point", nil, "Point load as N@m, repeatable")
	beamCmd.Flags().StringArrayVar(&beamMoments, "moment", nil, "Applied moment as N·m@m, repeatable")

	beamCmd.Flags().BoolVar(&beamPlot, "plot", false, "Render ASCII diagrams")
	beamCmd.Flags().StringVarP(&beamExport, "export", "o", "", "Export diagrams to image files (png, svg, pdf)")

	beamCmd.MarkFlagRequired("span")
}

// parseLoadAt parses a "magnitude@position" flag value.
func parseLoadAt(s string) (magnitude, position float64, err error) {
	parts := strings.SplitN(s, "@", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("load %q must be magnitude@position", s)
	}
	magnitude, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("load %q: bad magnitude: %w", s, err)
	}
	position, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("load %q: bad position: %w", s, err)
	}
	return magnitude, position, nil
}

// beamStiffness resolves E, I and depth from the catalog flags and the
// explicit overrides.
func beamStiffness() (e, inertia, depth float64, err error) {
	cat := catalog.Default()
	e, inertia, depth = beamE, beamInertia, beamDepth

	if beamMat != "" && e == 0 {
		mat, err := cat.Material(beamMat)
		if err != nil {
			return 0, 0, 0, err
		}
		e = mat.ElasticModulus
	}
	if beamSection != "" {
		sec, err := cat.Section(beamSection)
		if err != nil {
			return 0, 0, 0, err
		}
		if inertia == 0 {
			inertia = sec.Ix
		}
		if depth == 0 {
			depth = sec.Depth
		}
	}
	if e == 0 || inertia == 0 || depth == 0 {
		return 0, 0, 0, fmt.Errorf("stiffness unresolved: supply --section/--material or --e/--inertia/--depth")
	}
	return e, inertia, depth, nil
}

func runBeam(cmd *cobra.Command, args []string) error {
	e, inertia, depth, err := beamStiffness()
	if err != nil {
		return err
	}

	span, err := beam.NewSpan(beamSpan, beamUDL, e, inertia, depth, beam.Support(beamSupport))
	if err != nil {
		return err
	}

	var points []beam.PointLoad
	for _, s := range beamPoints {
		p, x, err := parseLoadAt(s)
		if err != nil {
			return err
		}
		points = append(points, beam.PointLoad{Magnitude: p, Position: x})
	}
	var moments []beam.MomentLoad
	for _, s := range beamMoments {
		m, x, err := parseLoadAt(s)
		if err != nil {
			return err
		}
		moments = append(moments, beam.MomentLoad{Magnitude: m, Position: x})
	}

	d, err := span.Diagrams(beamStations, points, moments)
	if err != nil {
		return err
	}
	r := d.Peaks

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span:\t%.2f m (%s)\n", beamSpan, beamSupport)
	fmt.Fprintf(w, "  Uniform load:\t%.2f kN/m\n", beamUDL/1e3)
	for _, p := range points {
		fmt.Fprintf(w, "  Point load:\t%.2f kN at %.2f m\n", p.Magnitude/1e3, p.Position)
	}
	for _, m := range moments {
		fmt.Fprintf(w, "  Applied moment:\t%.2f kN·m at %.2f m\n", m.Magnitude/1e3, m.Position)
	}
	fmt.Fprintf(w, "  EI:\t%.4g N·m²\n", e*inertia)
	w.Flush()

	fmt.Println(diagram.SummaryBox("RESULTS", []string{
		fmt.Sprintf("Reactions:      %.2f / %.2f kN", r.ReactionLeft/1e3, r.ReactionRight/1e3),
		fmt.Sprintf("Max moment:     %.2f kN·m", r.MaxMoment/1e3),
		fmt.Sprintf("Max shear:      %.2f kN", r.MaxShear/1e3),
		fmt.Sprintf("Max deflection: %.2f mm", r.MaxDeflection*1e3),
		fmt.Sprintf("Max stress:     %.2f MPa", r.MaxStress/1e6),
	}))

	if beamPlot {
		fmt.Println(diagram.BeamDiagrams(d))
	}
	if beamExport != "" {
		if err := diagram.ExportBeamDiagrams(d, beamExport); err != nil {
			return err
		}
		fmt.Printf("  Diagrams exported to %s\n", beamExport)
	}
	return nil
}
