package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parsePlatformer(defaultPlatformerYAML)
	if err != nil {
		t.Fatalf("parsePlatformer(embedded) error = %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadPlatformerCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 1000\nplayer:\n  max_health: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() error = %v", err)
	}
	if cfg.Physics.Gravity != 1000 {
		t.Errorf("Gravity = %v, expected 1000", cfg.Physics.Gravity)
	}
	if cfg.Player.MaxHealth != 7 {
		t.Errorf("MaxHealth = %d, expected 7", cfg.Player.MaxHealth)
	}
	if cfg.Player.JumpSpeed != 400 {
		t.Errorf("JumpSpeed = %v, expected default 400", cfg.Player.JumpSpeed)
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(bad); err == nil {
		t.Error("expected validation error for negative width")
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(garbage); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestValidateWorldBounds(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.World.MinX, cfg.World.MaxX = 10, 5
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject inverted world bounds")
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		maxHealth  int
		duration   float64
		difficulty bool
	}{
		{DifficultyEasy, 5, 8, false},
		{DifficultyNormal, 3, 5, false},
		{DifficultyHard, 2, 3, true},
		{DifficultyFixed, 3, 5, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, tc.preset)
			if cfg.Player.MaxHealth != tc.maxHealth {
				t.Errorf("MaxHealth = %d, expected %d", cfg.Player.MaxHealth, tc.maxHealth)
			}
			if cfg.Items.PowerUpDuration != tc.duration {
				t.Errorf("PowerUpDuration = %v, expected %v", cfg.Items.PowerUpDuration, tc.duration)
			}
			if cfg.Difficulty.Enabled != tc.difficulty {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.difficulty)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected normal", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultPlatformerConfig().Difficulty

	dm := NewDifficultyManager(cfg)
	if got := dm.EnemySpeed(60, 2, 0); got != 60 {
		t.Errorf("disabled EnemySpeed = %v, expected 60", got)
	}

	cfg.Enabled = true
	dm = NewDifficultyManager(cfg)
	tests := []struct {
		level    int
		expected float64
	}{
		{0, 60},
		{1, 90},
		{2, 120},
		{5, 120},
	}
	for _, tc := range tests {
		if got := dm.EnemySpeed(60, tc.level, 0); got != tc.expected {
			t.Errorf("EnemySpeed(level %d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}
