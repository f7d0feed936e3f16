package materials

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid material config")

// Config holds the mix ratios per cubic meter of concrete and the unit costs.
type Config struct {
	CementKgPerM3   float64 `json:"cement_kg_per_m3" yaml:"cement_kg_per_m3"`
	SandM3PerM3     float64 `json:"sand_m3_per_m3" yaml:"sand_m3_per_m3"`
	GravelM3PerM3   float64 `json:"gravel_m3_per_m3" yaml:"gravel_m3_per_m3"`
	WaterLPerM3     float64 `json:"water_l_per_m3" yaml:"water_l_per_m3"`
	SteelKgPerM3Min float64 `json:"steel_kg_per_m3_min" yaml:"steel_kg_per_m3_min"`
	SteelKgPerM3Max float64 `json:"steel_kg_per_m3_max" yaml:"steel_kg_per_m3_max"`
	CostPerM3       float64 `json:"cost_per_m3_concrete" yaml:"cost_per_m3_concrete"`
	CostPerKgSteel  float64 `json:"cost_per_kg_steel" yaml:"cost_per_kg_steel"`
}

func DefaultConfig() Config {
	return Config{
		CementKgPerM3:   300,
		SandM3PerM3:     0.5,
		GravelM3PerM3:   0.8,
		WaterLPerM3:     150,
		SteelKgPerM3Min: 80,
		SteelKgPerM3Max: 100,
		CostPerM3:       100,
		CostPerKgSteel:  1.5,
	}
}

// Validate rejects negative ratios and an inverted steel range.
func (c Config) Validate() error {
	vals := []float64{
		c.CementKgPerM3, c.SandM3PerM3, c.GravelM3PerM3, c.WaterLPerM3,
		c.SteelKgPerM3Min, c.SteelKgPerM3Max, c.CostPerM3, c.CostPerKgSteel,
	}
	for _, v := range vals {
		if v < 0 {
			return fmt.Errorf("%w: negative value", ErrInvalidConfig)
		}
	}
	if c.SteelKgPerM3Min > c.SteelKgPerM3Max {
		return fmt.Errorf("%w: steel min above max", ErrInvalidConfig)
	}
	return nil
}
