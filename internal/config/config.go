// Package config provides YAML-based game configuration loading,
// device-size classification and difficulty management for flapmax.
package config

import (
	"fmt"

	"github.com/maxvk/flapmax/internal/game/pattern"
)

// GameConfig contains all tunable parameters for a game session.
type GameConfig struct {
	Physics      PhysicsConfig      `yaml:"physics"`
	Obstacles    ObstaclesConfig    `yaml:"obstacles"`
	Hero         HeroConfig         `yaml:"hero"`
	Stamina      StaminaConfig      `yaml:"stamina"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	Devices      DevicesConfig      `yaml:"devices"`
	Difficulty   DifficultyConfig   `yaml:"difficulty"`
}

// PhysicsConfig defines per-tick physics parameters.
// World coordinates have Y growing upward, so gravity is negative.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Acceleration per tick, negative
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Upward velocity set on flap, positive
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal fall velocity, positive magnitude
	ScrollSpeed  float64 `yaml:"scroll_speed"`   // Base leftward world scroll per tick
}

// ObstaclesConfig defines pole segment parameters.
type ObstaclesConfig struct {
	PoleWidth   float64 `yaml:"pole_width"`
	Spacing     float64 `yaml:"spacing"`      // Horizontal distance between segments
	GapHeight   float64 `yaml:"gap_height"`   // Fixed vertical gap between pole pair
	Margin      float64 `yaml:"margin"`       // Keep-out zone above floor / below ceiling
	FloorHeight float64 `yaml:"floor_height"` // Height of the scrolling floor band
}

// HeroConfig defines the player hitbox.
type HeroConfig struct {
	X      float64 `yaml:"x"` // Fixed horizontal position (left edge)
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StaminaConfig defines the flap-gating resource.
type StaminaConfig struct {
	Max            float64 `yaml:"max"`
	DepletePerTick float64 `yaml:"deplete_per_tick"`
	FlapCost       float64 `yaml:"flap_cost"`
}

// CollectiblesConfig defines coin/burger spawn behavior.
type CollectiblesConfig struct {
	CoinRadius         float64  `yaml:"coin_radius"`
	BurgerRadius       float64  `yaml:"burger_radius"`
	GuaranteedSegments int      `yaml:"guaranteed_segments"` // Opening segments with a guaranteed coin pattern
	BurgerEvery        int      `yaml:"burger_every"`        // Every Nth segment spawns a burger instead of coins
	SkipChance         int      `yaml:"skip_chance"`         // 1-in-N chance a regular segment spawns nothing
	OpeningPatterns    []string `yaml:"opening_patterns"`    // Pattern names for guaranteed opening spawns
	Patterns           []string `yaml:"patterns"`            // Pattern names for regular spawns
}

// OpeningSet resolves the opening pattern names, falling back to the
// built-in opening set when the list is empty.
func (c CollectiblesConfig) OpeningSet() ([]pattern.Pattern, error) {
	if len(c.OpeningPatterns) == 0 {
		return pattern.Opening(), nil
	}
	return parsePatterns(c.OpeningPatterns)
}

// FullSet resolves the regular pattern names, falling back to the full
// built-in set when the list is empty.
func (c CollectiblesConfig) FullSet() ([]pattern.Pattern, error) {
	if len(c.Patterns) == 0 {
		return pattern.All(), nil
	}
	return parsePatterns(c.Patterns)
}

func parsePatterns(names []string) ([]pattern.Pattern, error) {
	out := make([]pattern.Pattern, 0, len(names))
	for _, name := range names {
		p, err := pattern.Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
// The gap height never scales; it is a fixed invariant of the segment.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to scroll speed at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Segment spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks parameters that do not depend on the screen size.
// Screen-dependent checks (gap vs available height) happen when the
// session starts and the world dimensions are known.
func (c GameConfig) Validate() error {
	if c.Physics.Gravity >= 0 {
		return fmt.Errorf("config: gravity must be negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.FlapImpulse <= 0 {
		return fmt.Errorf("config: flap_impulse must be positive, got %v", c.Physics.FlapImpulse)
	}
	if c.Physics.ScrollSpeed <= 0 {
		return fmt.Errorf("config: scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	}
	if c.Obstacles.GapHeight <= 0 || c.Obstacles.PoleWidth <= 0 || c.Obstacles.Spacing <= 0 {
		return fmt.Errorf("config: obstacle dimensions must be positive")
	}
	if c.Stamina.Max <= 0 || c.Stamina.DepletePerTick < 0 || c.Stamina.FlapCost < 0 {
		return fmt.Errorf("config: invalid stamina parameters")
	}
	if c.Collectibles.BurgerEvery <= 0 {
		return fmt.Errorf("config: burger_every must be positive, got %d", c.Collectibles.BurgerEvery)
	}
	if c.Collectibles.SkipChance <= 0 {
		return fmt.Errorf("config: skip_chance must be positive, got %d", c.Collectibles.SkipChance)
	}
	if _, err := c.Collectibles.OpeningSet(); err != nil {
		return err
	}
	if _, err := c.Collectibles.FullSet(); err != nil {
		return err
	}
	return nil
}
