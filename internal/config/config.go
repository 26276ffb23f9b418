// Package config provides YAML-based configuration loading and difficulty
// presets for the platformer.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains every tunable of the simulation.
type PlatformerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Items      ItemsConfig      `yaml:"items"`
	World      WorldConfig      `yaml:"world"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	View       ViewConfig       `yaml:"view"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines global integration parameters.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`      // units/s², positive is down
	MaxFrameDT float64 `yaml:"max_frame_dt"` // upper clamp for dt in seconds
	FallLimit  float64 `yaml:"fall_limit"`   // player y past which it respawns
}

// PlayerConfig defines player size, movement and health.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedBoost    float64 `yaml:"speed_boost"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	HighJumpSpeed float64 `yaml:"high_jump_speed"`
	StompBounce   float64 `yaml:"stomp_bounce"` // fraction of jump_speed
	StompMargin   float64 `yaml:"stomp_margin"` // tolerance above enemy top
	MaxHealth     int     `yaml:"max_health"`
}

// EnemyConfig defines enemy size and patrol speed.
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	Cooldown     float64 `yaml:"cooldown"`      // seconds between shots
	MuzzleOffset float64 `yaml:"muzzle_offset"` // horizontal offset from player center
}

// ItemsConfig defines collectible sizes and power-up duration.
type ItemsConfig struct {
	BonusSize       float64 `yaml:"bonus_size"`
	PowerUpSize     float64 `yaml:"powerup_size"`
	PowerUpDuration float64 `yaml:"powerup_duration"`
}

// WorldConfig is the box outside of which bullets are culled.
type WorldConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	BulletKill int `yaml:"bullet_kill"`
	Stomp      int `yaml:"stomp"`
	Bonus      int `yaml:"bonus"`
}

// ViewConfig maps world units to terminal cells.
type ViewConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyConfig defines optional enemy speed progression across levels.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = base speed, 1.0 = max scaling
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // level index or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemySpeedMultiplier float64 `yaml:"enemy_speed_multiplier"` // added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// Validate reports every out-of-range value in the config.
func (c PlatformerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.max_frame_dt", c.Physics.MaxFrameDT)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.base_speed", c.Player.BaseSpeed)
	positive("player.jump_speed", c.Player.JumpSpeed)
	positive("player.high_jump_speed", c.Player.HighJumpSpeed)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)
	positive("bullet.speed", c.Bullet.Speed)
	positive("items.bonus_size", c.Items.BonusSize)
	positive("items.powerup_size", c.Items.PowerUpSize)
	positive("items.powerup_duration", c.Items.PowerUpDuration)
	positive("view.cell_width", c.View.CellWidth)
	positive("view.cell_height", c.View.CellHeight)

	if c.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player.max_health must be positive, got %d", c.Player.MaxHealth))
	}
	if c.Player.SpeedBoost < 0 || c.Enemy.Speed < 0 || c.Bullet.Cooldown < 0 {
		errs = append(errs, errors.New("speed_boost, enemy.speed and bullet.cooldown must not be negative"))
	}
	if c.World.MinX >= c.World.MaxX || c.World.MinY >= c.World.MaxY {
		errs = append(errs, fmt.Errorf("world bounds are inverted: x [%v, %v], y [%v, %v]",
			c.World.MinX, c.World.MaxX, c.World.MinY, c.World.MaxY))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid platformer config: %w", errors.Join(errs...))
	}
	return nil
}
