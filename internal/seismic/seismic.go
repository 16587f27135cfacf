// Package seismic estimates the earthquake response of a regular frame
// building with an equivalent-lateral-force base shear and a simplified
// few-mode shape/frequency approximation. It is an estimate for sizing
// and reporting, not an eigen solution.
package seismic

import (
	"errors"
	"fmt"
	"math"
)

// Direction selects the horizontal excitation axis.
type Direction string

const (
	DirectionX    Direction = "x"
	DirectionZ    Direction = "z"
	DirectionBoth Direction = "both"
)

const gravity = 9.81 // m/s²

// minSeismicCoefficient floors the response coefficient.
const minSeismicCoefficient = 0.01

// maxModes caps the number of approximated modes.
const maxModes = 3

// driftLimit is the allowable storey drift ratio for reporting.
const driftLimit = 0.020

// Parameters describes the design ground motion and the response
// characteristics assigned to the structure.
type Parameters struct {
	Intensity            float64   // peak ground acceleration, g
	DominantFrequency    float64   // Hz
	Duration             float64   // s
	Direction            Direction // excitation axis
	SpectralAcceleration float64   // Sa, g
	ImportanceFactor     float64   // Ie, defaults to 1.0
	ResponseModification float64   // R, defaults to 8.0
	SiteClass            string
	DampingRatio         float64 // fraction of critical, defaults to 0.05
}

/// Building is the lumped model the estimator works on: equal storey
// masses on equal storey stiffnesses, one lateral line.
type Building struct {
	Storeys          int
	StoreyHeight     float64 // m
	StoreyMass       float64 // kg per storey
	StoreyStiffness  float64 // N/m, combined lateral stiffness of one storey
	FlexuralRigidity float64 // EI of the building acting as a cantilever, N·m²
}

// Mode is one approximated vibration mode.
type Mode struct {
	Number        int
	Frequency     float64 // Hz
	Period        float64 // s
	Shape         []float64
	Participation float64
}

// CriticalElement flags a column the lateral analysis loads hardest.
type CriticalElement struct {
	Storey      int
	Location    string
	StressRatio float64
}

// Analysis is the complete seismic estimate.
type Analysis struct {
	SeismicCoefficient float64 // Cs
	BaseShear          float64 // N
	BuildingWeight     float64 // N
	Modes              []Mode
	Amplification      float64 // max |participation|

	// StoreyDrifts are inter-storey displacements (m), index 0 = first
	// storey. DriftRatios are drifts over storey height.
	StoreyDrifts []float64
	DriftRatios  []float64
	DriftsOK     bool

	CriticalElements []CriticalElement
}

// Analyze runs the equivalent-lateral-force estimate.
func Analyze(b Building, p Parameters) (*Analysis, error) {
	if b.Storeys < 1 {
		return nil, errors.New("seismic: at least one storey required")
	}
	if b.StoreyMass <= 0 || b.StoreyStiffness <= 0 {
		return nil, errors.New("seismic: storey mass and stiffness must be positive")
	}
	if b.StoreyHeight <= 0 {
		return nil, errors.New("seismic: storey height must be positive")
	}
	if p.SpectralAcceleration <= 0 {
		return nil, errors.New("seismic: spectral acceleration must be positive")
	}
	if p.ImportanceFactor == 0 {
		p.ImportanceFactor = 1.0
	}
	if p.ResponseModification == 0 {
		p.ResponseModification = 8.0
	}
	if p.DampingRatio == 0 {
		p.DampingRatio = 0.05
	}

	a := &Analysis{}

	// Response coefficient and base shear.
	cs := p.SpectralAcceleration * p.ImportanceFactor / p.ResponseModification
	if cs < minSeismicCoefficient {
		cs = minSeismicCoefficient
	}
	a.SeismicCoefficient = cs
	a.BuildingWeight = float64(b.Storeys) * b.StoreyMass * gravity
	a.BaseShear = cs * a.BuildingWeight

	a.Modes = modes(b)
	for _, m := range a.Modes {
		if g := math.Abs(m.Participation); g > a.Amplification {
			a.Amplification = g
		}
	}

	a.StoreyDrifts = drifts(b, a.BaseShear, a.Amplification)
	a.DriftRatios = make([]float64, len(a.StoreyDrifts))
	a.DriftsOK = true
	for i, d := range a.StoreyDrifts {
		a.DriftRatios[i] = d / b.StoreyHeight
		if a.DriftRatios[i] > driftLimit {
			a.DriftsOK = false
		}
	}

	a.CriticalElements = criticalElements(b, a.DriftRatios)
	return a, nil
}

// modes approximates the first few modes of the uniform shear building:
// frequency scales with the mode number from sqrt(k/m), mode shapes are
// discretised quarter-sine waves.
func modes(b Building) []Mode {
	n := b.Storeys
	count := maxModes
	if n < count {
		count = n
	}

	omega := math.Sqrt(b.StoreyStiffness / b.StoreyMass)
	out := make([]Mode, 0, count)
	for mode := 1; mode <= count; mode++ {
		f := float64(mode) * omega / (2 * math.Pi)
		shape := make([]float64, n)
		var num, den float64
		for j := 1; j <= n; j++ {
			phi := math.Sin(float64(mode) * math.Pi * float64(j) / (2 * float64(n)))
			shape[j-1] = phi
			num += phi * b.StoreyMass
			den += phi * phi * b.StoreyMass
		}
		participation := 0.0
		if den > 0 {
			participation = num / den
		}
		out = append(out, Mode{
			Number:        mode,
			Frequency:     f,
			Period:        1 / f,
			Shape:         shape,
			Participation: participation,
		})
	}
	return out
}

// drifts derives inter-storey drifts from the lateral displacement of a
// uniformly loaded cantilever of the building's flexural rigidity,
// amplified by the dynamic factor. Falls back to shear-building drifts
// when no flexural rigidity is given.
func drifts(b Building, baseShear, amplification float64) []float64 {
	n := b.Storeys
	h := b.StoreyHeight
	total := float64(n) * h
	out := make([]float64, n)

	if b.FlexuralRigidity > 0 {
		q := baseShear / total
		prev := 0.0
		for j := 1; j <= n; j++ {
			x := float64(j) * h
			d := q * x * x * (6*total*total - 4*total*x + x*x) / (24 * b.FlexuralRigidity)
			out[j-1] = (d - prev) * amplification
			prev = d
		}
		return out
	}

	// Storey shear over storey stiffness, triangular force distribution.
	sumH := 0.0
	for j := 1; j <= n; j++ {
		sumH += float64(j) * h
	}
	shear := baseShear
	for j := 1; j <= n; j++ {
		out[j-1] = shear / b.StoreyStiffness * amplification
		shear -= baseShear * float64(j) * h / sumH
	}
	return out
}

// criticalElements tags the corner columns of the lower storeys with a
// stress ratio interpolated between the drift utilisation and the storey
// shear profile. Lower storeys carry more shear and rate higher.
func criticalElements(b Building, driftRatios []float64) []CriticalElement {
	util := 0.0
	for _, r := range driftRatios {
		if u := r / driftLimit; u > util {
			util = u
		}
	}
	if util <= 0 {
		return nil
	}
	if util > 1 {
		util = 1
	}

	n := b.Storeys
	sumLevels := float64(n*(n+1)) / 2

	reported := 3
	if n < reported {
		reported = n
	}
	out := make([]CriticalElement, 0, reported*4)
	corners := []string{"south-west", "south-east", "north-west", "north-east"}
	for j := 1; j <= reported; j++ {
		// Fraction of the base shear resisted at this storey under a
		// triangular force distribution.
		above := 0.0
		for i := j; i <= n; i++ {
			above += float64(i)
		}
		ratio := util * above / sumLevels
		for _, c := range corners {
			out = append(out, CriticalElement{
				Storey:      j,
				Location:    fmt.Sprintf("%s corner column", c),
				StressRatio: ratio,
			})
		}
	}
	return out
}
