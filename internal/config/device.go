package config

// SizeClass buckets terminal dimensions the way a mobile build buckets
// device screens. It drives the single unit scale all collectible
// pattern geometry is multiplied by.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

// Classification thresholds in terminal cells.
const (
	mediumMinW = 60
	mediumMinH = 20
	largeMinW  = 120
	largeMinH  = 35
)

// String returns the name of the size class.
func (c SizeClass) String() string {
	switch c {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// DevicesConfig maps size classes to pattern unit scales.
type DevicesConfig struct {
	SmallUnit  float64 `yaml:"small_unit"`
	MediumUnit float64 `yaml:"medium_unit"`
	LargeUnit  float64 `yaml:"large_unit"`
}

// Classify buckets a terminal size into a SizeClass.
func Classify(screenW, screenH int) SizeClass {
	if screenW >= largeMinW && screenH >= largeMinH {
		return SizeLarge
	}
	if screenW >= mediumMinW && screenH >= mediumMinH {
		return SizeMedium
	}
	return SizeSmall
}

// Unit returns the pattern unit scale for a size class.
func (d DevicesConfig) Unit(c SizeClass) float64 {
	var unit float64
	switch c {
	case SizeLarge:
		unit = d.LargeUnit
	case SizeMedium:
		unit = d.MediumUnit
	default:
		unit = d.SmallUnit
	}
	if unit <= 0 {
		unit = 1.0
	}
	return unit
}
