package beam

import (
	"fmt"
	"math"
	"sort"
)

// PointLoad is a concentrated downward force on the span.
type PointLoad struct {
	Magnitude float64 // N
	Position  float64 // m from the left support
}

// MomentLoad is a concentrated applied moment on the span, counter-clockwise
// positive.
type MomentLoad struct {
	Magnitude float64 // N·m
	Position  float64 // m from the left support
}

// Diagrams holds shear, moment and deflection sampled at equally spaced
// stations, plus the peak response. All slices have the same length.
type Diagrams struct {
	X          []float64 // station positions (m)
	Shear      []float64 // N
	Moment     []float64 // N·m
	Deflection []float64 // m, downward positive

	Peaks Result
}

// Diagrams samples the span response at the given number of stations.
// Concentrated loads follow standard statics sign conventions: shear steps
// down by a point load's magnitude past its position, moment steps up by an
// applied moment's magnitude past its position. Concentrated loads are only
// supported on simply supported spans; the framed-building solver passes
// none.
func (s *Span) Diagrams(stations int, points []PointLoad, moments []MomentLoad) (*Diagrams, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if stations < 2 {
		return nil, fmt.Errorf("need at least 2 stations, got %d", stations)
	}
	hasConcentrated := len(points) > 0 || len(moments) > 0
	if hasConcentrated && s.Support != Simple {
		return nil, fmt.Errorf("concentrated loads require a simply supported span, got %q", s.Support)
	}
	for _, p := range points {
		if p.Position < 0 || p.Position > s.Length {
			return nil, fmt.Errorf("point load position %g outside span [0, %g]", p.Position, s.Length)
		}
	}
	for _, m := range moments {
		if m.Position < 0 || m.Position > s.Length {
			return nil, fmt.Errorf("moment load position %g outside span [0, %g]", m.Position, s.Length)
		}
	}

	points = append([]PointLoad(nil), points...)
	sort.Slice(points, func(i, j int) bool { return points[i].Position < points[j].Position })

	d := &Diagrams{
		X:          make([]float64, stations),
		Shear:      make([]float64, stations),
		Moment:     make([]float64, stations),
		Deflection: make([]float64, stations),
	}
	w, l := s.UniformLoad, s.Length
	dx := l / float64(stations-1)

	rl, rr := s.reactions(points, moments)

	for i := 0; i < stations; i++ {
		x := float64(i) * dx
		d.X[i] = x
		d.Shear[i] = s.shearAt(x, rl, points)
		d.Moment[i] = s.momentAt(x, rl, points, moments)
	}

	if hasConcentrated {
		s.integrateDeflection(d)
	} else {
		for i, x := range d.X {
			d.Deflection[i] = s.uniformDeflectionAt(x)
		}
	}

	d.Peaks = Result{ReactionLeft: rl, ReactionRight: rr}
	for i := range d.X {
		d.Peaks.MaxShear = math.Max(d.Peaks.MaxShear, math.Abs(d.Shear[i]))
		d.Peaks.MaxMoment = math.Max(d.Peaks.MaxMoment, math.Abs(d.Moment[i]))
		d.Peaks.MaxDeflection = math.Max(d.Peaks.MaxDeflection, math.Abs(d.Deflection[i]))
	}
	d.Peaks.MaxStress = d.Peaks.MaxMoment * (s.Depth / 2) / s.Inertia
	switch s.Support {
	case FixedFixed:
		d.Peaks.SupportMoment = -w * l * l / 12
	case Cantilever:
		d.Peaks.SupportMoment = -w * l * l / 2
	case FixedPinned:
		d.Peaks.SupportMoment = -w * l * l / 8
	}

	return d, nil
}

// reactions returns the left and right support reactions. For the
// cantilever the entire load goes to the fixed (left) end.
func (s *Span) reactions(points []PointLoad, moments []MomentLoad) (rl, rr float64) {
	w, l := s.UniformLoad, s.Length
	var totalP, momentAboutRight, totalM float64
	for _, p := range points {
		totalP += p.Magnitude
		momentAboutRight += p.Magnitude * (l - p.Position)
	}
	for _, m := range moments {
		totalM += m.Magnitude
	}

	switch s.Support {
	case Cantilever:
		return w*l + totalP, 0
	case FixedPinned:
		return 3 * w * l / 8, 5 * w * l / 8
	case Simple, Continuous, FixedFixed:
		rl = (w*l*l/2 + momentAboutRight - totalM) / l
		rr = w*l + totalP - rl
		return rl, rr
	}
	return 0, 0
}

// shearAt evaluates V(x) from the left reaction and the loads left of x.
func (s *Span) shearAt(x, rl float64, points []PointLoad) float64 {
	w, l := s.UniformLoad, s.Length

	switch s.Support {
	case Cantilever:
		return w * (l - x)
	case FixedPinned:
		return 3*w*l/8 - w*x
	}

	v := rl - w*x
	for _, p := range points {
		if p.Position <= x {
			v -= p.Magnitude
		}
	}
	return v
}

// momentAt evaluates M(x), sagging positive.
func (s *Span) momentAt(x, rl float64, points []PointLoad, moments []MomentLoad) float64 {
	w, l := s.UniformLoad, s.Length

	switch s.Support {
	case Cantilever:
		return -w * (l - x) * (l - x) / 2
	case FixedFixed:
		return -w*l*l/12 + w*l*x/2 - w*x*x/2
	case FixedPinned:
		return 3*w*l*x/8 - w*x*x/2
	case Continuous:
		// Scaled simple-span curve matching the wL²/10 interior peak.
		return 0.8 * w * x * (l - x) / 2
	}

	m := rl*x - w*x*x/2
	for _, p := range points {
		if p.Position <= x {
			m -= p.Magnitude * (x - p.Position)
		}
	}
	for _, ml := range moments {
		if ml.Position <= x {
			m += ml.Magnitude
		}
	}
	return m
}

// uniformDeflectionAt evaluates the closed-form deflected shape under the
// uniform load alone, downward positive.
func (s *Span) uniformDeflectionAt(x float64) float64 {
	w, l := s.UniformLoad, s.Length
	ei := s.ElasticModulus * s.Inertia

	switch s.Support {
	case Simple:
		return w * x * (l*l*l - 2*l*x*x + x*x*x) / (24 * ei)
	case Continuous:
		return 0.8 * w * x * (l*l*l - 2*l*x*x + x*x*x) / (24 * ei)
	case FixedFixed:
		return w * x * x * (l - x) * (l - x) / (24 * ei)
	case Cantilever:
		return w * x * x * (6*l*l - 4*l*x + x*x) / (24 * ei)
	case FixedPinned:
		return w * x * (l*l*l - 3*l*x*x + 2*x*x*x) / (48 * ei)
	}
	return 0
}

// integrateDeflection computes the deflected shape by double trapezoidal
// integration of curvature M/EI, then removes the rigid rotation so both
// supports stay at zero. Only called for simply supported spans.
func (s *Span) integrateDeflection(d *Diagrams) {
	n := len(d.X)
	ei := s.ElasticModulus * s.Inertia

	slope := make([]float64, n)
	disp := make([]float64, n)
	for i := 1; i < n; i++ {
		h := d.X[i] - d.X[i-1]
		slope[i] = slope[i-1] + h*(d.Moment[i-1]+d.Moment[i])/(2*ei)
		disp[i] = disp[i-1] + h*(slope[i-1]+slope[i])/2
	}

	l := d.X[n-1]
	for i := 0; i < n; i++ {
		// Upward displacement with the support line subtracted; flip to
		// downward positive.
		d.Deflection[i] = -(disp[i] - d.X[i]*disp[n-1]/l)
	}
}
