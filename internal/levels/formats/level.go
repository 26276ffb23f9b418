// Package formats provides pluggable level file parsers. Every parser
// produces the same Level value; resolving names such as power-up kinds is
// left to the levels package.
package formats

import (
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Level is a parsed level file.
type Level struct {
	ID        string
	Name      string
	Start     core.Vec2
	GoalX     float64
	Platforms []core.Rect
	Enemies   []Enemy
	Bonuses   []core.Vec2
	PowerUps  []PowerUp
}

// Enemy is a patrolling enemy spawn.
type Enemy struct {
	Pos       core.Vec2
	Left      float64
	Right     float64
	Dir       float64 // initial direction, -1 or +1
	Stompable bool
	Hover     bool // exempt from gravity
}

// PowerUp is a power-up spawn with its kind still in textual form.
type PowerUp struct {
	Pos  core.Vec2
	Kind string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml", ".tmx"}
}

// IsLevelFile reports whether path has a supported level extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// normalizeDir maps an authored direction to -1 or +1. Zero means right.
func normalizeDir(d float64) float64 {
	if d < 0 {
		return -1
	}
	return 1
}

// idFromPath derives a level ID from a file name when the file omits one.
func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
