package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// Player is the single controllable character of a session.
type Player struct {
	Body
	OnGround    bool
	FacingRight bool
	Alive       bool
	Health      int
	Score       int
	PrevY       float64 // y before this tick's movement, for stomp checks

	SpeedBoost Countdown
	Invincible Countdown
	HighJump   Countdown
}

// placeAt moves the player to pos at rest. Health, score and timers are
// left alone.
func (p *Player) placeAt(pos core.Vec2) {
	p.Pos = pos
	p.Vel = core.Vec2{}
	p.PrevY = pos.Y
	p.OnGround = false
}

// prevBottom is the bottom edge before this tick's movement.
func (p *Player) prevBottom() float64 {
	return p.PrevY + p.Size.Y
}

func (p *Player) clearTimers() {
	p.SpeedBoost.Clear()
	p.Invincible.Clear()
	p.HighJump.Clear()
}

// Enemy paces between its patrol bounds. Dead enemies stay in the roster
// and are skipped by every phase.
type Enemy struct {
	Body
	Left        float64
	Right       float64
	PatrolSpeed float64
	Alive       bool
	Stompable   bool
}

// patrol advances x, clamping to a bound and turning around on overshoot,
// then returns the gravity-only vertical candidate.
func (e *Enemy) patrol(dt float64) core.Vec2 {
	e.Pos.X += e.Vel.X * dt
	if e.Pos.X < e.Left {
		e.Pos.X = e.Left
		e.Vel.X = e.PatrolSpeed
	}
	if e.Pos.X > e.Right {
		e.Pos.X = e.Right
		e.Vel.X = -e.PatrolSpeed
	}
	return e.Fall(dt)
}

// Bullet is a player projectile.
type Bullet struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  core.Vec2
	Alive bool
}

// Rect returns the bullet's bounding box.
func (b Bullet) Rect() core.Rect {
	return core.RectAt(b.Pos, b.Size.X, b.Size.Y)
}

// Bonus is a one-shot score pickup.
type Bonus struct {
	Pos       core.Vec2
	Size      float64
	Collected bool
}

// Rect returns the bonus bounding box.
func (b Bonus) Rect() core.Rect {
	return core.RectAt(b.Pos, b.Size, b.Size)
}

// PowerUp is a one-shot pickup that applies an effect to the player.
type PowerUp struct {
	Pos       core.Vec2
	Size      float64
	Kind      levels.PowerUpKind
	Collected bool
}

// Rect returns the power-up bounding box.
func (p PowerUp) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size, p.Size)
}
