package catalog

import "math"

// SectionProfile is an immutable catalog entry describing the elastic
// properties of a cross-section. Lengths in m, areas in m², moments of
// inertia in m⁴, moduli in m³.
type SectionProfile struct {
	Name  string
	Depth float64 // overall section depth h
	Area  float64

	// Second moments of area about the strong (x) and weak (y) axes.
	Ix float64
	Iy float64

	// Elastic and plastic section moduli about the strong axis.
	Sx float64
	Zx float64

	// Torsional constant.
	J float64

	// Shear areas for the two principal directions.
	ShearAreaY float64
	ShearAreaZ float64

	// Plate thicknesses, zero for solid sections.
	FlangeThickness float64
	WebThickness    float64
}

// RadiusOfGyration returns sqrt(Ix/A) about the strong axis.
func (s SectionProfile) RadiusOfGyration() float64 {
	if s.Area <= 0 || s.Ix <= 0 {
		return 0
	}
	return math.Sqrt(s.Ix / s.Area)
}

// RectangularSection builds a solid rectangular profile from width b and
// depth h, the shape used for cast-in-place beams and columns.
func RectangularSection(name string, b, h float64) SectionProfile {
	return SectionProfile{
		Name:       name,
		Depth:      h,
		Area:       b * h,
		Ix:         b * h * h * h / 12,
		Iy:         h * b * b * b / 12,
		Sx:         b * h * h / 6,
		Zx:         b * h * h / 4,
		J:          torsionRect(b, h),
		ShearAreaY: 5.0 / 6.0 * b * h,
		ShearAreaZ: 5.0 / 6.0 * b * h,
	}
}

// torsionRect approximates the St. Venant constant of a solid rectangle.
func torsionRect(b, h float64) float64 {
	if b > h {
		b, h = h, b
	}
	return h * b * b * b * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b*b*b/(12.0*h*h*h*h)))
}

// builtinSections are the stock rolled and cast shapes registered by Default.
var builtinSections = []SectionProfile{
	{
		Name:            "IPE 200",
		Depth:           0.200,
		Area:            2.85e-3,
		Ix:              1.94e-4,
		Iy:              1.42e-6,
		Sx:              1.94e-4 / 0.100,
		Zx:              2.21e-4,
		J:               6.98e-8,
		ShearAreaY:      1.40e-3,
		ShearAreaZ:      1.80e-3,
		FlangeThickness: 0.0085,
		WebThickness:    0.0056,
	},
	{
		Name:            "IPE 300",
		Depth:           0.300,
		Area:            5.38e-3,
		Ix:              8.36e-5,
		Iy:              6.04e-6,
		Sx:              5.57e-4,
		Zx:              6.28e-4,
		J:               2.01e-7,
		ShearAreaY:      2.57e-3,
		ShearAreaZ:      3.37e-3,
		FlangeThickness: 0.0107,
		WebThickness:    0.0071,
	},
	{
		Name:            "HEA 240",
		Depth:           0.230,
		Area:            7.68e-3,
		Ix:              7.76e-5,
		Iy:              2.77e-5,
		Sx:              6.75e-4,
		Zx:              7.45e-4,
		J:               4.16e-7,
		ShearAreaY:      2.52e-3,
		ShearAreaZ:      5.76e-3,
		FlangeThickness: 0.0120,
		WebThickness:    0.0075,
	},
	{
		Name:            "W12x26",
		Depth:           0.310,
		Area:            4.95e-3,
		Ix:              8.49e-5,
		Iy:              7.12e-6,
		Sx:              5.48e-4,
		Zx:              6.08e-4,
		J:               1.24e-7,
		ShearAreaY:      1.81e-3,
		ShearAreaZ:      3.25e-3,
		FlangeThickness: 0.0097,
		WebThickness:    0.0058,
	},
	RectangularSection("RC 300x500", 0.300, 0.500),
	RectangularSection("RC 300x600", 0.300, 0.600),
	RectangularSection("RC 400x400", 0.400, 0.400),
}
