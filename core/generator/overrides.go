package generator

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/fleetmock/core/model"
)

// VesselTemplate pins fields of a generated vessel. Zero values keep the
// sampled value.
type VesselTemplate struct {
	VesselType  string `yaml:"vessel_type"`
	FuelType    string `yaml:"main_engine_fuel_type"`
	SafetyScore int    `yaml:"safety_score"`
	DWT         int    `yaml:"dwt"`
}

// Overrides maps vessel ids to templates.
type Overrides struct {
	Vessels map[int]VesselTemplate `yaml:"vessels"`
}

// Validate rejects templates that would produce invalid vessels.
func (o Overrides) Validate() error {
	var errs []error
	for id, t := range o.Vessels {
		if t.FuelType != "" && !model.FuelType(t.FuelType).Valid() {
			errs = append(errs, fmt.Errorf("vessel %d: unknown fuel type %q", id, t.FuelType))
		}
		if t.SafetyScore < 0 || t.SafetyScore > 5 {
			errs = append(errs, fmt.Errorf("vessel %d: safety score %d outside 1..5", id, t.SafetyScore))
		}
		if t.DWT < 0 {
			errs = append(errs, fmt.Errorf("vessel %d: negative dwt", id))
		}
	}
	return errors.Join(errs...)
}

// ParseOverrides decodes a YAML overrides document.
func ParseOverrides(data []byte) (Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, fmt.Errorf("decode overrides: %w", err)
	}
	if err := o.Validate(); err != nil {
		return Overrides{}, err
	}
	return o, nil
}

// LoadOverrides reads an overrides file. An empty path yields no overrides.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}
	return ParseOverrides(data)
}
