package foundation

import (
	"fmt"
	"math"
)

// StripInput describes a combined strip footing carrying several columns
// along a wall line. Individual column moments are ignored; the strip is
// sized for the load total with an overload factor.
type StripInput struct {
	TotalLoad       float64 // N, sum of the column loads on the line
	WallLength      float64 // m
	ColumnSpacing   float64 // m, for the longitudinal continuity check
	BearingCapacity float64 // Pa
	DepthBelowGrade float64 // default 1.2

	WallThickness    float64 // default 0.3
	ConcreteStrength float64
	SteelYield       float64
}

// stripOverloadFactor covers the moment transfer the strip model ignores.
const stripOverloadFactor = 1.3

// DesignStripFooting sizes a continuous footing under a line of columns.
func DesignStripFooting(in StripInput) (*Foundation, error) {
	if in.TotalLoad <= 0 {
		return nil, fmt.Errorf("invalid total load %g", in.TotalLoad)
	}
	if in.WallLength <= 0 {
		return nil, fmt.Errorf("invalid wall length %g", in.WallLength)
	}
	if in.BearingCapacity <= 0 {
		return nil, fmt.Errorf("invalid bearing capacity %g", in.BearingCapacity)
	}
	if in.ColumnSpacing <= 0 {
		in.ColumnSpacing = 4.0
	}
	if in.DepthBelowGrade == 0 {
		in.DepthBelowGrade = 1.2
	}
	if in.WallThickness == 0 {
		in.WallThickness = 0.3
	}
	if in.ConcreteStrength == 0 {
		in.ConcreteStrength = defaultConcreteStrength
	}
	if in.SteelYield == 0 {
		in.SteelYield = defaultSteelYield
	}

	area := stripOverloadFactor * in.TotalLoad / in.BearingCapacity
	width := roundUp(math.Max(area/in.WallLength, 0.4), widthIncrement)
	q := in.TotalLoad / (in.WallLength * width)

	// Transverse cantilever at the wall face, per metre of strip.
	cant := (width - in.WallThickness) / 2
	mTransverse := q * cant * cant / 2

	// Longitudinal continuity between columns, treated as a continuous
	// beam on soil: M = w s² / 10 with w the line load per metre.
	w := q * width
	mLongitudinal := w * in.ColumnSpacing * in.ColumnSpacing / 10 / width // back to per metre

	mu := math.Max(mTransverse, mLongitudinal)
	governing := "transverse cantilever flexure"
	if mLongitudinal > mTransverse {
		governing = "longitudinal continuous-beam flexure"
	}

	d := math.Sqrt(mu / (0.145 * in.ConcreteStrength))
	dShear := oneWayShearDepth(q, width, in.WallThickness, in.ConcreteStrength)
	if dShear > d {
		d, governing = dShear, "one-way (beam) shear"
	}
	thickness := roundUp(math.Max(d/effectiveDepthRatio, 0.30), thicknessIncrement)

	as := math.Max(mu/(phiFlexure*in.SteelYield*0.9*thickness*effectiveDepthRatio),
		minimumSteelPerMetre(thickness))

	return &Foundation{
		Type:            StripFooting,
		Length:          in.WallLength,
		Width:           width,
		Depth:           thickness,
		Material:        "reinforced concrete",
		BearingCapacity: in.BearingCapacity,
		DepthBelowGrade: in.DepthBelowGrade,
		MaxSoilPressure: q,
		MinSoilPressure: q,
		Reinforcement: fmt.Sprintf("thickness governed by %s; As = %s transverse bottom; column moments neglected (1.3 overload factor applied)",
			governing, describeSteel(as)),
	}, nil
}
