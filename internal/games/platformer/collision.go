package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// landingSlack absorbs rounding in (top - h) + h when a body rests on a
// platform, so a resting body still counts as coming from above.
const landingSlack = 1e-9

// landingTop finds the platform the body lands on when moving to cand.
// A platform qualifies when the candidate box overlaps it, the body is
// falling and its previous bottom was at or above the platform top. Among
// qualifying platforms the highest top wins, independent of list order.
func landingTop(b Body, cand core.Vec2, platforms []core.Rect) (float64, bool) {
	if b.Vel.Y <= 0 {
		return 0, false
	}

	box := b.RectAt(cand)
	prevBottom := b.Bottom()

	var (
		best  float64
		found bool
	)
	for _, p := range platforms {
		if !box.Overlaps(p) || prevBottom > p.Y+landingSlack {
			continue
		}
		if !found || p.Y < best {
			best = p.Y
			found = true
		}
	}
	return best, found
}

// land resolves cand against the platforms. On landing the candidate is
// snapped onto the platform top and vertical velocity is zeroed. Only
// top surfaces collide; sides and undersides are passable.
func (b *Body) land(cand core.Vec2, platforms []core.Rect) (core.Vec2, bool) {
	top, ok := landingTop(*b, cand, platforms)
	if !ok {
		return cand, false
	}
	cand.Y = top - b.Size.Y
	b.Vel.Y = 0
	return cand, true
}
