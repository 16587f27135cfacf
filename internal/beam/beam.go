// Package beam solves single-span beams under distributed and concentrated
// loading using closed-form elastic formulas, and samples full shear,
// moment and deflection diagrams.
package beam

import (
	"fmt"
	"math"
)

// Support identifies the support condition of a span.
type Support string

const (
	// Simple is a simply supported span (pin and roller).
	Simple Support = "simple"
	// FixedFixed is fixed at both ends.
	FixedFixed Support = "fixed-fixed"
	// Cantilever is fixed at x=0 and free at x=L.
	Cantilever Support = "cantilever"
	// Continuous approximates an interior span of a continuous beam.
	Continuous Support = "continuous"
	// FixedPinned is pinned at x=0 and fixed at x=L.
	FixedPinned Support = "fixed-pinned"
)

// DefaultDeflectionLimit is the span fraction used for the allowable
// deflection when the caller does not supply one.
const DefaultDeflectionLimit = 360.0

// Span describes a beam segment to solve. Units are SI base: m, N/m, Pa, m⁴.
type Span struct {
	Length         float64 // L
	UniformLoad    float64 // w, downward positive
	ElasticModulus float64 // E
	Inertia        float64 // I about the bending axis
	Depth          float64 // h, used for bending stress via c = h/2
	Support        Support
}

// Result holds the peak response of a solved span.
type Result struct {
	MaxDeflection float64 // m, downward positive
	MaxMoment     float64 // N·m, largest absolute value
	MaxShear      float64 // N, largest absolute value
	MaxStress     float64 // Pa, extreme-fiber bending stress
	ReactionLeft  float64 // N
	ReactionRight float64 // N

	// SupportMoment is the fixing moment at a restrained end, zero for
	// simply supported spans. Hogging is negative.
	SupportMoment float64
}

// NewSpan builds a span and checks its physical preconditions.
func NewSpan(length, w, e, inertia, depth float64, support Support) (*Span, error) {
	s := &Span{
		Length:         length,
		UniformLoad:    w,
		ElasticModulus: e,
		Inertia:        inertia,
		Depth:          depth,
		Support:        support,
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Span) check() error {
	if s.Length <= 0 {
		return fmt.Errorf("invalid span length %g", s.Length)
	}
	if s.ElasticModulus <= 0 || s.Inertia <= 0 {
		return fmt.Errorf("invalid stiffness: E=%g, I=%g", s.ElasticModulus, s.Inertia)
	}
	if s.Depth <= 0 {
		return fmt.Errorf("invalid section depth %g", s.Depth)
	}
	switch s.Support {
	case Simple, FixedFixed, Cantilever, Continuous, FixedPinned:
	default:
		return fmt.Errorf("unknown support condition %q", s.Support)
	}
	return nil
}

// Solve evaluates the closed-form peak response for the span's support
// condition under its uniform load.
func (s *Span) Solve() (*Result, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	w, l := s.UniformLoad, s.Length
	ei := s.ElasticModulus * s.Inertia
	r := &Result{}

	switch s.Support {
	case Simple:
		r.MaxDeflection = 5 * w * math.Pow(l, 4) / (384 * ei)
		r.MaxMoment = w * l * l / 8
		r.MaxShear = w * l / 2
		r.ReactionLeft = w * l / 2
		r.ReactionRight = w * l / 2

	case FixedFixed:
		r.MaxDeflection = w * math.Pow(l, 4) / (384 * ei)
		r.MaxMoment = w * l * l / 12
		r.MaxShear = w * l / 2
		r.ReactionLeft = w * l / 2
		r.ReactionRight = w * l / 2
		r.SupportMoment = -w * l * l / 12

	case Cantilever:
		r.MaxDeflection = w * math.Pow(l, 4) / (8 * ei)
		r.MaxMoment = w * l * l / 2
		r.MaxShear = w * l
		r.ReactionLeft = w * l
		r.ReactionRight = 0
		r.SupportMoment = -w * l * l / 2

	case Continuous:
		// Interior span approximation: both the midspan moment and the
		// deflection are reduced relative to a simple span.
		r.MaxDeflection = 0.8 * 5 * w * math.Pow(l, 4) / (384 * ei)
		r.MaxMoment = w * l * l / 10
		r.MaxShear = w * l / 2
		r.ReactionLeft = w * l / 2
		r.ReactionRight = w * l / 2

	case FixedPinned:
		// Pinned at the left, fixed at the right.
		r.MaxDeflection = w * math.Pow(l, 4) / (185 * ei)
		r.MaxMoment = w * l * l / 8
		r.MaxShear = 5 * w * l / 8
		r.ReactionLeft = 3 * w * l / 8
		r.ReactionRight = 5 * w * l / 8
		r.SupportMoment = -w * l * l / 8
	}

	r.MaxStress = r.MaxMoment * (s.Depth / 2) / s.Inertia
	return r, nil
}

// Utilization summarizes demand-to-capacity ratios for a solved span.
type Utilization struct {
	Bending    float64
	Deflection float64
	Governing  float64
}

// Utilization computes bending and deflection ratios against an allowable
// stress and an allowable deflection. A zero allowableDeflection defaults
// to span/360.
func (s *Span) Utilization(r *Result, allowableStress, allowableDeflection float64) (Utilization, error) {
	if allowableStress <= 0 {
		return Utilization{}, fmt.Errorf("invalid allowable stress %g", allowableStress)
	}
	if allowableDeflection <= 0 {
		allowableDeflection = s.Length / DefaultDeflectionLimit
	}

	u := Utilization{
		Bending:    r.MaxStress / allowableStress,
		Deflection: r.MaxDeflection / allowableDeflection,
	}
	u.Governing = math.Max(u.Bending, u.Deflection)
	return u, nil
}
