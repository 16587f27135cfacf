// Package column checks compression members for Euler buckling and
// axial stress.
package column

import (
	"fmt"
	"math"
)

// EffectiveLengthFactor is the K factor for standard end conditions.
type EffectiveLengthFactor float64

const (
	// KFixedFixed is fixed against rotation and translation at both ends.
	KFixedFixed EffectiveLengthFactor = 0.5
	// KFixedPinned is fixed at one end, pinned at the other.
	KFixedPinned EffectiveLengthFactor = 0.7
	// KPinnedPinned is the default pin-ended column.
	KPinnedPinned EffectiveLengthFactor = 1.0
	// KFixedSway is fixed at the base with the top free to translate
	// but restrained against rotation.
	KFixedSway EffectiveLengthFactor = 1.5
	// KFixedFree is the flagpole case.
	KFixedFree EffectiveLengthFactor = 2.0
)

// Column describes a compression member. SI base units throughout.
type Column struct {
	Length         float64 // unbraced length (m)
	ElasticModulus float64 // Pa
	Inertia        float64 // governing (weak-axis) I, m⁴
	Area           float64 // m²
	K              EffectiveLengthFactor
}

// Check is the buckling and axial evaluation of a column under a demand
// axial load.
type Check struct {
	CriticalLoad   float64 // Euler Pcr (N)
	AxialStress    float64 // P/A (Pa)
	BucklingFactor float64 // Pcr / P
	Slenderness    float64 // KL/r
	Passes         bool    // BucklingFactor >= 1
}

// New builds a column, defaulting K to 1.0 when unset.
func New(length, e, inertia, area float64, k EffectiveLengthFactor) (*Column, error) {
	if k == 0 {
		k = KPinnedPinned
	}
	c := &Column{Length: length, ElasticModulus: e, Inertia: inertia, Area: area, K: k}
	if length <= 0 {
		return nil, fmt.Errorf("invalid column length %g", length)
	}
	if e <= 0 || inertia <= 0 {
		return nil, fmt.Errorf("invalid stiffness: E=%g, I=%g", e, inertia)
	}
	if area <= 0 {
		return nil, fmt.Errorf("invalid area %g", area)
	}
	switch k {
	case KFixedFixed, KFixedPinned, KPinnedPinned, KFixedSway, KFixedFree:
	default:
		return nil, fmt.Errorf("non-standard effective length factor %g", float64(k))
	}
	return c, nil
}

// CriticalLoad returns the Euler buckling load π²EI/(KL)².
func (c *Column) CriticalLoad() float64 {
	kl := float64(c.K) * c.Length
	return math.Pi * math.Pi * c.ElasticModulus * c.Inertia / (kl * kl)
}

// Slenderness returns the effective slenderness ratio KL/r.
func (c *Column) Slenderness() float64 {
	r := math.Sqrt(c.Inertia / c.Area)
	return float64(c.K) * c.Length / r
}

// Evaluate checks the column against a demand axial load.
func (c *Column) Evaluate(axialLoad float64) (*Check, error) {
	if axialLoad <= 0 {
		return nil, fmt.Errorf("invalid axial load %g", axialLoad)
	}

	chk := &Check{
		CriticalLoad: c.CriticalLoad(),
		AxialStress:  axialLoad / c.Area,
		Slenderness:  c.Slenderness(),
	}
	chk.BucklingFactor = chk.CriticalLoad / axialLoad
	chk.Passes = chk.BucklingFactor >= 1.0
	return chk, nil
}
