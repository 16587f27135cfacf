package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/strucalc/strucalc/internal/beam"
)

// Exported image dimensions.
const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 4 * vg.Inch
)

var (
	shearColor      = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	momentColor     = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	deflectionColor = color.RGBA{R: 178, G: 34, B: 34, A: 255}
)

// ExportBeamDiagrams writes shear, moment and deflection plots next to
// each other as three image files derived from the base filename:
// name_shear.ext, name_moment.ext, name_deflection.ext. The format comes
// from the extension; an unknown extension falls back to PNG.
func ExportBeamDiagrams(d *beam.Diagrams, filename string) error {
	ext := filepath.Ext(filename)
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
		ext = ".png"
	}
	base := strings.TrimSuffix(filename, ext)

	if err := exportCurve(d.X, scaled(d.Shear, 1e-3), "Shear Diagram", "V (kN)",
		shearColor, base+"_shear"+ext); err != nil {
		return err
	}
	if err := exportCurve(d.X, scaled(d.Moment, 1e-3), "Moment Diagram", "M (kN·m)",
		momentColor, base+"_moment"+ext); err != nil {
		return err
	}
	return exportCurve(d.X, scaled(d.Deflection, 1e3), "Deflection", "δ (mm)",
		deflectionColor, base+"_deflection"+ext)
}

// exportCurve plots one sampled curve against span position with a dashed
// zero axis and saves it.
func exportCurve(x, y []float64, title, yLabel string, c color.Color, filename string) error {
	if len(x) != len(y) || len(x) == 0 {
		return fmt.Errorf("diagram: curve has no samples")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position along span (m)"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	p.Add(line)

	zero, err := plotter.NewLine(plotter.XYs{
		{X: x[0], Y: 0},
		{X: x[len(x)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(imageWidth, imageHeight, filename)
}
