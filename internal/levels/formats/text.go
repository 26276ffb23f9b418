package formats

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// textLevel is the document shape shared by the YAML and TOML formats.
type textLevel struct {
	ID        string        `yaml:"id" toml:"id"`
	Name      string        `yaml:"name" toml:"name"`
	Start     textPoint     `yaml:"start" toml:"start"`
	GoalX     float64       `yaml:"goal_x" toml:"goal_x"`
	Platforms []textRect    `yaml:"platforms" toml:"platforms"`
	Enemies   []textEnemy   `yaml:"enemies" toml:"enemies"`
	Bonuses   []textPoint   `yaml:"bonuses" toml:"bonuses"`
	PowerUps  []textPowerUp `yaml:"powerups" toml:"powerups"`
}

type textPoint struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

type textRect struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

type textEnemy struct {
	X         float64 `yaml:"x" toml:"x"`
	Y         float64 `yaml:"y" toml:"y"`
	Left      float64 `yaml:"left" toml:"left"`
	Right     float64 `yaml:"right" toml:"right"`
	Dir       float64 `yaml:"dir" toml:"dir"`
	Stompable bool    `yaml:"stompable" toml:"stompable"`
	Hover     bool    `yaml:"hover" toml:"hover"`
}

type textPowerUp struct {
	X    float64 `yaml:"x" toml:"x"`
	Y    float64 `yaml:"y" toml:"y"`
	Kind string  `yaml:"kind" toml:"kind"`
}

func (t textLevel) toLevel() Level {
	lvl := Level{
		ID:        t.ID,
		Name:      t.Name,
		Start:     core.Vec2{X: t.Start.X, Y: t.Start.Y},
		GoalX:     t.GoalX,
		Platforms: make([]core.Rect, 0, len(t.Platforms)),
		Enemies:   make([]Enemy, 0, len(t.Enemies)),
		Bonuses:   make([]core.Vec2, 0, len(t.Bonuses)),
		PowerUps:  make([]PowerUp, 0, len(t.PowerUps)),
	}
	for _, p := range t.Platforms {
		lvl.Platforms = append(lvl.Platforms, core.NewRect(p.X, p.Y, p.W, p.H))
	}
	for _, e := range t.Enemies {
		lvl.Enemies = append(lvl.Enemies, Enemy{
			Pos:       core.Vec2{X: e.X, Y: e.Y},
			Left:      e.Left,
			Right:     e.Right,
			Dir:       normalizeDir(e.Dir),
			Stompable: e.Stompable,
			Hover:     e.Hover,
		})
	}
	for _, b := range t.Bonuses {
		lvl.Bonuses = append(lvl.Bonuses, core.Vec2{X: b.X, Y: b.Y})
	}
	for _, p := range t.PowerUps {
		lvl.PowerUps = append(lvl.PowerUps, PowerUp{Pos: core.Vec2{X: p.X, Y: p.Y}, Kind: p.Kind})
	}
	return lvl
}
