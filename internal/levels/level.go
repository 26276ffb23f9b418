// Package levels holds immutable level templates, the ordered registry the
// game session walks through, and loading from level files.
package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// PowerUpKind identifies the effect of a power-up.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpSpeed
	PowerUpInvincibility
	PowerUpHighJump
)

var powerUpNames = map[PowerUpKind]string{
	PowerUpHealth:        "health",
	PowerUpSpeed:         "speed",
	PowerUpInvincibility: "invincibility",
	PowerUpHighJump:      "highjump",
}

// String returns the lowercase name used in level files.
func (k PowerUpKind) String() string {
	if name, ok := powerUpNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PowerUpKind(%d)", int(k))
}

// ParsePowerUpKind resolves a level-file name. Matching ignores case,
// dashes and underscores, so "high_jump" and "HighJump" both work.
func ParsePowerUpKind(s string) (PowerUpKind, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for k, name := range powerUpNames {
		if name == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown power-up kind %q", s)
}

// EnemySpawn is the initial state of one enemy.
type EnemySpawn struct {
	Pos       core.Vec2
	Left      float64 // patrol bound, minimum x
	Right     float64 // patrol bound, maximum x
	Dir       float64 // initial direction, -1 or +1
	Stompable bool
	Hover     bool
}

// BonusSpawn is the position of a collectible bonus.
type BonusSpawn struct {
	Pos core.Vec2
}

// PowerUpSpawn is the position and kind of a power-up.
type PowerUpSpawn struct {
	Pos  core.Vec2
	Kind PowerUpKind
}

// Level is an immutable level template. Sessions copy the spawn lists into
// working rosters on every load.
type Level struct {
	ID        string
	Name      string
	Start     core.Vec2
	GoalX     float64
	Platforms []core.Rect
	Enemies   []EnemySpawn
	Bonuses   []BonusSpawn
	PowerUps  []PowerUpSpawn
	FilePath  string
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}
