package foundation

import (
	"fmt"
	"math"
)

// SpreadInput describes a single-column spread footing problem. Loads are
// service level in N and N·m, capacities in Pa, dimensions in m.
type SpreadInput struct {
	AxialLoad       float64
	Moment          float64
	BearingCapacity float64 // allowable soil pressure
	DepthBelowGrade float64 // default 1.5

	ColumnWidth float64 // default 0.4
	ColumnDepth float64 // default 0.4

	ConcreteStrength float64 // default 25 MPa
	SteelYield       float64 // default 420 MPa
}

func (in *SpreadInput) applyDefaults() {
	if in.DepthBelowGrade == 0 {
		in.DepthBelowGrade = 1.5
	}
	if in.ColumnWidth == 0 {
		in.ColumnWidth = 0.4
	}
	if in.ColumnDepth == 0 {
		in.ColumnDepth = 0.4
	}
	if in.ConcreteStrength == 0 {
		in.ConcreteStrength = defaultConcreteStrength
	}
	if in.SteelYield == 0 {
		in.SteelYield = defaultSteelYield
	}
}

// DesignSpreadFooting sizes a square footing for an axial load with an
// optional overturning moment. When the trial footing's peak soil pressure
// P/A + M/S exceeds the allowable capacity, the working capacity is reduced
// and the footing resized, at most maxResizeAttempts times.
func DesignSpreadFooting(in SpreadInput) (*Foundation, error) {
	if in.AxialLoad <= 0 {
		return nil, fmt.Errorf("invalid axial load %g", in.AxialLoad)
	}
	if in.Moment < 0 {
		return nil, fmt.Errorf("invalid moment %g", in.Moment)
	}
	if in.BearingCapacity <= 0 {
		return nil, fmt.Errorf("invalid bearing capacity %g", in.BearingCapacity)
	}
	in.applyDefaults()

	var warnings []string
	var b, qmax, qmin float64

	qDesign := in.BearingCapacity
	converged := false
	for attempt := 0; attempt < maxResizeAttempts; attempt++ {
		b = math.Sqrt(in.AxialLoad / qDesign)

		if in.Moment > 0 {
			e := in.Moment / in.AxialLoad
			if e < b/6 {
				// Trapezoidal pressure: widen proportionally to the
				// eccentricity.
				b *= 1 + 3*e/b
			} else {
				// Resultant outside the kern: steeper inflation.
				b *= 1 + 6*e/b
			}
		}
		b = roundUp(b, widthIncrement)

		area := b * b
		s := b * b * b / 6 // section modulus of the base
		qmax = in.AxialLoad/area + in.Moment/s
		qmin = in.AxialLoad/area - in.Moment/s

		if qmax <= in.BearingCapacity {
			converged = true
			break
		}
		qDesign *= resizeCapacityFactor
	}
	if !converged {
		return nil, &ConvergenceError{
			Attempts:      maxResizeAttempts,
			PressureRatio: qmax / in.BearingCapacity,
		}
	}

	if qmin < 0 {
		warnings = append(warnings,
			fmt.Sprintf("uplift detected: minimum soil pressure %.1f kPa; footing edge lifts off", qmin/1e3))
	}
	if in.Moment > 0 {
		if e := in.Moment / in.AxialLoad; e >= b/6 {
			warnings = append(warnings,
				fmt.Sprintf("large eccentricity e=%.2f m exceeds B/6=%.2f m", e, b/6))
		}
	}

	d, governing := spreadEffectiveDepth(in, b, qmax)
	thickness := roundUp(math.Max(d/effectiveDepthRatio, 0.30), thicknessIncrement)
	dProvided := thickness * effectiveDepthRatio

	// Cantilever moment at the column face, per metre of width.
	cant := (b - in.ColumnWidth) / 2
	mu := qmax * cant * cant / 2
	asFlex := mu / (phiFlexure * in.SteelYield * 0.9 * dProvided)
	asMin := minimumSteelPerMetre(thickness)
	as := math.Max(asFlex, asMin)
	steelNote := "flexure governs steel"
	if asMin >= asFlex {
		steelNote = "minimum temperature/shrinkage steel governs"
	}

	return &Foundation{
		Type:            SpreadFooting,
		Length:          b,
		Width:           b,
		Depth:           thickness,
		Material:        "reinforced concrete",
		BearingCapacity: in.BearingCapacity,
		DepthBelowGrade: in.DepthBelowGrade,
		MaxSoilPressure: qmax,
		MinSoilPressure: qmin,
		Reinforcement: fmt.Sprintf("thickness governed by %s; As = %s each way bottom; %s",
			governing, describeSteel(as), steelNote),
		Warnings: warnings,
	}, nil
}

// spreadEffectiveDepth returns the effective depth required by the worst of
// the three failure modes, and which mode governed.
func spreadEffectiveDepth(in SpreadInput, b, q float64) (float64, string) {
	dPunch := punchingDepth(q, b*b, in.ColumnWidth, in.ColumnDepth, in.ConcreteStrength)
	dBeam := oneWayShearDepth(q, b, in.ColumnWidth, in.ConcreteStrength)
	dFlex := flexureDepth(q, b, in.ColumnWidth, in.ConcreteStrength)

	d, governing := dPunch, "two-way (punching) shear"
	if dBeam > d {
		d, governing = dBeam, "one-way (beam) shear"
	}
	if dFlex > d {
		d, governing = dFlex, "flexure"
	}
	return d, governing
}

// punchingDepth finds the effective depth where the two-way shear on the
// critical perimeter at d/2 from the column face is adequate. The demand
// is the soil pressure outside the critical area.
func punchingDepth(q, area, c1, c2 float64, fc float64) float64 {
	vc := shearStrength(0.33, fc)
	for d := 0.10; d < 2.0; d += 0.005 {
		critArea := (c1 + d) * (c2 + d)
		if critArea >= area {
			return d
		}
		vu := q * (area - critArea)
		b0 := 2*(c1+d) + 2*(c2+d)
		if vu <= phiShear*vc*b0*d {
			return d
		}
	}
	return 2.0
}

// oneWayShearDepth solves the one-way shear check in closed form: the
// critical section sits d from the column face.
func oneWayShearDepth(q, b, c float64, fc float64) float64 {
	vc := shearStrength(0.17, fc)
	// q (B-c)/2 - q d <= φ vc d  per metre of width
	return q * (b - c) / 2 / (phiShear*vc + q)
}

// flexureDepth sizes for the cantilever moment at the column face with a
// moderate reinforcement ratio.
func flexureDepth(q, b, c float64, fc float64) float64 {
	cant := (b - c) / 2
	mu := q * cant * cant / 2      // per metre of width
	rn := 0.145 * fc               // resistance at roughly half the balanced ratio
	return math.Sqrt(mu / rn)
}
