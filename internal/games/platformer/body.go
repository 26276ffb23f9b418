package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Body is a kinematic box. Pos is the top-left corner.
type Body struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Size    core.Vec2
	Gravity float64
}

// Rect returns the bounding box at the current position.
func (b Body) Rect() core.Rect {
	return core.RectAt(b.Pos, b.Size.X, b.Size.Y)
}

// RectAt returns the bounding box the body would have at p.
func (b Body) RectAt(p core.Vec2) core.Rect {
	return core.RectAt(p, b.Size.X, b.Size.Y)
}

// Bottom returns the y of the bottom edge at the current position.
func (b Body) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Integrate applies gravity to the vertical velocity and returns the
// candidate position after dt. The body itself does not move.
func (b *Body) Integrate(dt float64) core.Vec2 {
	b.Vel.Y += b.Gravity * dt
	return b.Pos.Add(b.Vel.Scale(dt))
}

// Fall is Integrate restricted to the vertical axis, for bodies that have
// already moved horizontally this tick.
func (b *Body) Fall(dt float64) core.Vec2 {
	b.Vel.Y += b.Gravity * dt
	return core.Vec2{X: b.Pos.X, Y: b.Pos.Y + b.Vel.Y*dt}
}

func vec(x, y float64) core.Vec2 {
	return core.Vec2{X: x, Y: y}
}
