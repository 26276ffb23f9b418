package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in configuration. It mirrors
// defaults/platformer.yaml and is used when the embedded file cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:    800,
			MaxFrameDT: 0.1,
			FallLimit:  2000,
		},
		Player: PlayerConfig{
			Width:         40,
			Height:        50,
			BaseSpeed:     200,
			SpeedBoost:    120,
			JumpSpeed:     400,
			HighJumpSpeed: 650,
			StompBounce:   0.9,
			StompMargin:   4,
			MaxHealth:     3,
		},
		Enemy: EnemyConfig{
			Width:  28,
			Height: 45,
			Speed:  60,
		},
		Bullet: BulletConfig{
			Width:        10,
			Height:       4,
			Speed:        500,
			Cooldown:     0.2,
			MuzzleOffset: 18,
		},
		Items: ItemsConfig{
			BonusSize:       20,
			PowerUpSize:     20,
			PowerUpDuration: 5,
		},
		World: WorldConfig{
			MinX: 0,
			MaxX: 3000,
			MinY: 0,
			MaxY: 2000,
		},
		Scoring: ScoringConfig{
			BulletKill: 100,
			Stomp:      150,
			Bonus:      50,
		},
		View: ViewConfig{
			CellWidth:  10,
			CellHeight: 25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 2,
			},
			Scaling: ScalingConfig{
				EnemySpeedMultiplier: 1.0,
			},
		},
	}
}
