package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// PlayerView is the renderable part of the player.
type PlayerView struct {
	Rect        core.Rect
	FacingRight bool
	Alive       bool
	OnGround    bool
	Health      int
	MaxHealth   int
	Score       int
	SpeedBoost  float64 // seconds remaining
	Invincible  float64
	HighJump    float64
}

// EnemyView is a living enemy.
type EnemyView struct {
	Rect        core.Rect
	Stompable   bool
	MovingRight bool
}

// PowerUpView is an uncollected power-up.
type PowerUpView struct {
	Rect core.Rect
	Kind levels.PowerUpKind
}

// View is a read-only snapshot of everything a renderer needs. Inert
// entities are omitted.
type View struct {
	State      SessionState
	LevelIndex int
	LevelCount int
	LevelName  string
	GoalX      float64
	CameraX    float64 // world x at the left edge of the viewport
	ViewportW  float64 // viewport width in world units

	Player    PlayerView
	Enemies   []EnemyView
	Bonuses   []core.Rect
	PowerUps  []PowerUpView
	Bullets   []core.Rect
	Platforms []core.Rect
}

// viewportWidth converts the runtime screen width to world units.
func (g *Game) viewportWidth() float64 {
	return float64(g.runtime.ScreenW) * g.cfg.View.CellWidth
}

// View builds the render snapshot for the current state. The camera keeps
// the player's x at the middle of the viewport.
func (g *Game) View() View {
	p := &g.player
	vw := g.viewportWidth()

	v := View{
		State:      g.state,
		LevelIndex: g.levelIndex,
		LevelCount: g.registry.Len(),
		LevelName:  g.level.Title(),
		GoalX:      g.level.GoalX,
		CameraX:    p.Pos.X - vw/2,
		ViewportW:  vw,
		Player: PlayerView{
			Rect:        p.Rect(),
			FacingRight: p.FacingRight,
			Alive:       p.Alive,
			OnGround:    p.OnGround,
			Health:      p.Health,
			MaxHealth:   g.cfg.Player.MaxHealth,
			Score:       p.Score,
			SpeedBoost:  p.SpeedBoost.Remaining(),
			Invincible:  p.Invincible.Remaining(),
			HighJump:    p.HighJump.Remaining(),
		},
		Platforms: append([]core.Rect(nil), g.level.Platforms...),
	}

	for _, e := range g.enemies {
		if e.Alive {
			v.Enemies = append(v.Enemies, EnemyView{Rect: e.Rect(), Stompable: e.Stompable, MovingRight: e.Vel.X > 0})
		}
	}
	for _, b := range g.bonuses {
		if !b.Collected {
			v.Bonuses = append(v.Bonuses, b.Rect())
		}
	}
	for _, pu := range g.powerups {
		if !pu.Collected {
			v.PowerUps = append(v.PowerUps, PowerUpView{Rect: pu.Rect(), Kind: pu.Kind})
		}
	}
	for _, b := range g.bullets {
		if b.Alive {
			v.Bullets = append(v.Bullets, b.Rect())
		}
	}
	return v
}
