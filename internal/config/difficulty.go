package config

// DifficultyManager scales enemy patrol speed as the player progresses.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level in [0, 1] for the given level index
// and score. Disabled progression always yields 0 so base values apply.
func (d *DifficultyManager) Level(levelIndex, score int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(levelIndex) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed returns the patrol speed for the given progress.
func (d *DifficultyManager) EnemySpeed(base float64, levelIndex, score int) float64 {
	return base * (1.0 + d.Level(levelIndex, score)*d.cfg.Scaling.EnemySpeedMultiplier)
}

func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
