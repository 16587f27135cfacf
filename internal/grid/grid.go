// Package grid derives column spacing and tributary load widths from the
// building's structural grid. Edge members carry half the spacing of
// interior members.
package grid

import (
	"fmt"

	"github.com/strucalc/strucalc/internal/model"
)

// BeamLine is one continuous line of beam segments between columns.
type BeamLine struct {
	// AlongLength is true for beams spanning parallel to the building
	// length, false for beams parallel to the width.
	AlongLength bool

	// Span of a single segment between adjacent columns (m).
	Span float64

	// Segments is the number of spans on this line.
	Segments int

	// Edge is true for the first and last line of the grid.
	Edge bool

	// TributaryWidth is the slab strip this line carries (m).
	TributaryWidth float64
}

// Column is one vertical member of the grid with its tributary area.
type Column struct {
	Row, Col      int
	Corner, Edge  bool
	TributaryArea float64 // plan area carried per storey (m²)
}

// Grid is the resolved structural grid of a building.
type Grid struct {
	// Column spacing along the length (dx) and width (dz) in m.
	Dx float64
	Dz float64

	BeamLines []BeamLine
	Columns   []Column
}

// Build resolves the structural grid from building parameters. The column
// counts must already be validated; fewer than two per axis is rejected
// here as well since it would divide by zero.
func Build(p model.BuildingParameters) (*Grid, error) {
	nx := p.ColumnsAlongLength
	nz := p.ColumnsAlongWidth
	if nx < 2 || nz < 2 {
		return nil, fmt.Errorf("grid requires at least 2 columns per axis, got %dx%d", nx, nz)
	}

	g := &Grid{
		Dx: p.Length / float64(nx-1),
		Dz: p.Width / float64(nz-1),
	}

	// Beam lines along the length: one line per column row across the width.
	for row := 0; row < nz; row++ {
		edge := row == 0 || row == nz-1
		tw := g.Dz
		if edge {
			tw = g.Dz / 2
		}
		g.BeamLines = append(g.BeamLines, BeamLine{
			AlongLength:    true,
			Span:           g.Dx,
			Segments:       nx - 1,
			Edge:           edge,
			TributaryWidth: tw,
		})
	}

	// Beam lines along the width: one line per column row across the length.
	for col := 0; col < nx; col++ {
		edge := col == 0 || col == nx-1
		tw := g.Dx
		if edge {
			tw = g.Dx / 2
		}
		g.BeamLines = append(g.BeamLines, BeamLine{
			AlongLength:    false,
			Span:           g.Dz,
			Segments:       nz - 1,
			Edge:           edge,
			TributaryWidth: tw,
		})
	}

	for row := 0; row < nz; row++ {
		for col := 0; col < nx; col++ {
			wx := g.Dx
			if col == 0 || col == nx-1 {
				wx = g.Dx / 2
			}
			wz := g.Dz
			if row == 0 || row == nz-1 {
				wz = g.Dz / 2
			}
			edgeRow := row == 0 || row == nz-1
			edgeCol := col == 0 || col == nx-1
			g.Columns = append(g.Columns, Column{
				Row:           row,
				Col:           col,
				Corner:        edgeRow && edgeCol,
				Edge:          edgeRow != edgeCol,
				TributaryArea: wx * wz,
			})
		}
	}

	return g, nil
}

// LineLoad returns the distributed load (N/m) a beam line carries for a
// given slab surface load (Pa).
func (b BeamLine) LineLoad(surfaceLoad float64) float64 {
	return surfaceLoad * b.TributaryWidth
}

// AxialLoad returns the accumulated axial load (N) at the base of a column
// for a surface load applied on every storey.
func (c Column) AxialLoad(surfaceLoad float64, storeys int) float64 {
	return surfaceLoad * c.TributaryArea * float64(storeys)
}
