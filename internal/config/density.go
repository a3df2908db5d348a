package config

import "fmt"

// DensityPreset names an obstacle probability.
type DensityPreset string

const (
	DensityEmpty  DensityPreset = "empty"
	DensitySparse DensityPreset = "sparse"
	DensityNormal DensityPreset = "normal"
	DensityDense  DensityPreset = "dense"
)

// DensityPresets returns all presets from emptiest to densest.
func DensityPresets() []DensityPreset {
	return []DensityPreset{DensityEmpty, DensitySparse, DensityNormal, DensityDense}
}

// ProbabilityForPreset returns the obstacle probability of a preset.
func ProbabilityForPreset(preset DensityPreset) (float64, bool) {
	switch preset {
	case DensityEmpty:
		return 0.0, true
	case DensitySparse:
		return 0.2, true
	case DensityNormal:
		return 0.4, true
	case DensityDense:
		return 0.5, true
	default:
		return 0, false
	}
}

// ApplyDensityPreset sets the obstacle probability from a preset.
// An empty preset leaves the config unchanged.
func ApplyDensityPreset(cfg *Config, preset DensityPreset) error {
	if preset == "" {
		return nil
	}
	p, ok := ProbabilityForPreset(preset)
	if !ok {
		return fmt.Errorf("unknown density %q (want one of %v)", preset, DensityPresets())
	}
	cfg.Grid.ObstacleProbability = p
	return nil
}
