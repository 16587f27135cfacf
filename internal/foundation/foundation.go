// Package foundation sizes spread footings, strip footings, mat
// foundations and pile groups. Every designer is a pure function of its
// input; undersized trials are resolved by a bounded resizing loop, never
// by unbounded recursion.
package foundation

import (
	"fmt"
	"math"
)

// Type tags the foundation strategy of a designed foundation.
type Type string

const (
	SpreadFooting  Type = "spread-footing"
	StripFooting   Type = "strip-footing"
	MatFoundation  Type = "mat-foundation"
	PileFoundation Type = "pile-foundation"
	None           Type = "none"
)

// Practical construction increments; dimensions are rounded up to these.
const (
	widthIncrement     = 0.10 // m
	thicknessIncrement = 0.05 // m
)

// maxResizeAttempts bounds the bearing-pressure resizing loop. Exceeding
// it is a convergence failure, not a validation error.
const maxResizeAttempts = 10

// resizeCapacityFactor shrinks the working bearing capacity each attempt
// to force a larger footing.
const resizeCapacityFactor = 0.9

// effectiveDepthRatio relates effective depth to total thickness.
const effectiveDepthRatio = 0.85

// Default concrete and reinforcement grades assumed when the caller does
// not specify them.
const (
	defaultConcreteStrength = 25e6  // Pa
	defaultSteelYield       = 420e6 // Pa
)

// Strength reduction factors for the shear and flexure checks.
const (
	phiShear   = 0.75
	phiFlexure = 0.90
)

// Foundation is the sized result of a designer call. Recomputing with new
// inputs returns a fresh value; a Foundation is never mutated.
type Foundation struct {
	Type Type

	// Plan dimensions and thickness (m).
	Length float64
	Width  float64
	Depth  float64

	Material      string
	Reinforcement string

	// BearingCapacity is the design (allowable) soil pressure used (Pa).
	BearingCapacity float64
	DepthBelowGrade float64

	// Actual extreme soil pressures under the service loads (Pa).
	MaxSoilPressure float64
	MinSoilPressure float64

	// Pile-group fields, zero for shallow foundations.
	PileCount           int
	PileLength          float64
	PileDiameter        float64
	GroupEfficiency     float64
	EstimatedSettlement float64 // mm

	// Warnings are advisory, non-blocking conditions detected while
	// sizing (uplift, over-design, large eccentricity).
	Warnings []string
}

// ConvergenceError reports that the resizing loop could not find a footing
// whose soil pressure stays within the bearing capacity.
type ConvergenceError struct {
	Attempts      int
	PressureRatio float64 // last max pressure / allowable
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("footing size did not converge after %d attempts (pressure ratio %.2f); input cannot be satisfied by this foundation strategy",
		e.Attempts, e.PressureRatio)
}

// roundUp rounds v up to the next multiple of the increment.
func roundUp(v, increment float64) float64 {
	n := math.Ceil(v/increment - 1e-9)
	return n * increment
}

// shearStrength returns the concrete shear stress capacity coefficient·√f'c
// with f'c in Pa (the code expression is written for MPa).
func shearStrength(coefficient, fc float64) float64 {
	return coefficient * math.Sqrt(fc/1e6) * 1e6
}

// barArea16 is the cross-section of a 16 mm reinforcing bar.
const barArea16 = 201e-6 // m²

// describeSteel renders a steel area per metre as an area plus a 16 mm bar
// count, the shorthand used on drawings.
func describeSteel(asPerMetre float64) string {
	bars := int(math.Ceil(asPerMetre / barArea16))
	return fmt.Sprintf("%.0f mm²/m (%d Ø16/m)", asPerMetre*1e6, bars)
}

// minimumSteelPerMetre is the temperature/shrinkage minimum for a slab of
// thickness t.
func minimumSteelPerMetre(t float64) float64 {
	return 0.0018 * t
}
