package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads building parameters from a YAML file.
func Load(path string) (*BuildingParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}

	params := DefaultParameters()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("parsing parameter YAML: %w", err)
	}

	return &params, nil
}

// DefaultParameters returns a parameter set with the fields that are
// almost always left implicit in input files pre-filled.
func DefaultParameters() BuildingParameters {
	return BuildingParameters{
		Storeys:    1,
		Material:   "C25/30",
		DesignCode: "ASCE7-16",
		Units:      UnitsMetric,
	}
}
