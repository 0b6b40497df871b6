package config

import "fmt"

// GeneratorConfig controls vessel sampling and fleet selection.
type GeneratorConfig struct {
	NumVessels int `json:"num_vessels"`
	FleetSize  int `json:"fleet_size"`
	// Seed makes runs reproducible. 0 draws a time based seed.
	Seed      uint64 `json:"seed"`
	OutputDir string `json:"output_dir"`
	// OverridesFile optionally pins fields of individual vessels.
	OverridesFile string `json:"overrides_file"`
	// DWT is drawn from a triangular distribution.
	DWTMin  float64 `json:"dwt_min"`
	DWTMax  float64 `json:"dwt_max"`
	DWTMode float64 `json:"dwt_mode"`
}

// Default generator sizes.
const (
	DefaultNumVessels = 60
	DefaultFleetSize  = 24
)

// SetDefaults applies fallback values for optional fields. A missing fleet
// size never exceeds the number of vessels.
func (c *GeneratorConfig) SetDefaults() {
	if c.NumVessels <= 0 {
		c.NumVessels = DefaultNumVessels
	}
	if c.FleetSize <= 0 {
		c.FleetSize = min(DefaultFleetSize, c.NumVessels)
	}
	if c.OutputDir == "" {
		c.OutputDir = "src/data"
	}
	if c.DWTMin == 0 {
		c.DWTMin = 30000
	}
	if c.DWTMax == 0 {
		c.DWTMax = 300000
	}
	if c.DWTMode == 0 {
		c.DWTMode = 100000
	}
}

// Validate checks the configuration ranges.
func (c GeneratorConfig) Validate() error {
	if c.NumVessels <= 0 {
		return fmt.Errorf("num_vessels must be positive")
	}
	if c.FleetSize <= 0 || c.FleetSize > c.NumVessels {
		return fmt.Errorf("fleet_size must be within 1..%d, got %d", c.NumVessels, c.FleetSize)
	}
	if c.DWTMin <= 0 {
		return fmt.Errorf("dwt_min must be positive")
	}
	if c.DWTMin >= c.DWTMax {
		return fmt.Errorf("dwt_min >= dwt_max")
	}
	if c.DWTMode < c.DWTMin || c.DWTMode > c.DWTMax {
		return fmt.Errorf("dwt_mode outside [dwt_min, dwt_max]")
	}
	return nil
}
