// Package model defines the building parameter record consumed by the
// analysis packages, its YAML loader and its validation rules.
package model

// UnitSystem tags which measurement system a record's numeric fields use.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// BuildingParameters describes a rectangular framed building. All values
// are SI base units (m, Pa) unless Units says otherwise; the engine only
// operates on metric records.
type BuildingParameters struct {
	// Overall geometry (m)
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Storeys int `yaml:"storeys"`

	// Structural grid
	ColumnsAlongLength int `yaml:"columns_along_length"`
	ColumnsAlongWidth  int `yaml:"columns_along_width"`
	BeamsAlongLength   int `yaml:"beams_along_length"`
	BeamsAlongWidth    int `yaml:"beams_along_width"`

	// Slab (m, Pa)
	SlabThickness float64 `yaml:"slab_thickness"`
	SlabLoad      float64 `yaml:"slab_load"` // dead surface load
	LiveLoad      float64 `yaml:"live_load"` // live surface load

	// Member dimensions (m)
	BeamWidth   float64 `yaml:"beam_width"`
	BeamHeight  float64 `yaml:"beam_height"`
	ColumnWidth float64 `yaml:"column_width"`
	ColumnDepth float64 `yaml:"column_depth"`

	// Material. ElasticModulus overrides the catalog value when non-zero.
	ElasticModulus float64 `yaml:"elastic_modulus"`
	Material       string  `yaml:"material"`

	DesignCode string     `yaml:"design_code"`
	Units      UnitSystem `yaml:"units"`
}

// StoreyHeight returns the clear height of a single storey.
func (p BuildingParameters) StoreyHeight() float64 {
	if p.Storeys < 1 {
		return 0
	}
	return p.Height / float64(p.Storeys)
}

// FootprintArea returns the plan area of the building.
func (p BuildingParameters) FootprintArea() float64 {
	return p.Length * p.Width
}
