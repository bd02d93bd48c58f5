package config

import (
	_ "embed"
)

//go:embed defaults/flapmax.yaml
var defaultGameYAML []byte

// Default returns the default game configuration.
func Default() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:      -0.045,
			FlapImpulse:  0.55,
			MaxFallSpeed: 0.9,
			ScrollSpeed:  0.45,
		},
		Obstacles: ObstaclesConfig{
			PoleWidth:   5,
			Spacing:     34,
			GapHeight:   9,
			Margin:      2,
			FloorHeight: 2,
		},
		Hero: HeroConfig{
			X:      12,
			Width:  2,
			Height: 2,
		},
		Stamina: StaminaConfig{
			Max:            20,
			DepletePerTick: 0.01,
			FlapCost:       0.2,
		},
		Collectibles: CollectiblesConfig{
			CoinRadius:         0.5,
			BurgerRadius:       0.8,
			GuaranteedSegments: 2,
			BurgerEvery:        5,
			SkipChance:         10,
		},
		Devices: DevicesConfig{
			SmallUnit:  1.0,
			MediumUnit: 1.5,
			LargeUnit:  2.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.8,
				SpacingReduction: 10,
			},
		},
	}
}
