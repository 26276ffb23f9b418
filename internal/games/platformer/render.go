package platformer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// Visual characters for rendering
const (
	PlatformChar    = '▀'
	PlayerChar      = '█'
	EnemyChar       = '▓'
	StompableChar   = '▒'
	BonusChar       = '$'
	BulletChar      = '•'
	GoalChar        = '⚑'
	HeartFull       = '♥'
	HeartEmpty      = '♡'
	hudRows         = 1
	minRenderWidth  = 20
	minRenderHeight = 6
)

var powerUpGlyphs = map[levels.PowerUpKind]rune{
	levels.PowerUpHealth:        '+',
	levels.PowerUpSpeed:         'S',
	levels.PowerUpInvincibility: '*',
	levels.PowerUpHighJump:      '^',
}

var powerUpColors = map[levels.PowerUpKind]core.Color{
	levels.PowerUpHealth:        core.ColorBrightGreen,
	levels.PowerUpSpeed:         core.ColorBrightCyan,
	levels.PowerUpInvincibility: core.ColorBrightYellow,
	levels.PowerUpHighJump:      core.ColorBrightBlue,
}

// projector maps world rectangles onto screen cells.
type projector struct {
	camX, camY float64
	cw, ch     float64
	top        int
}

func (pr projector) cells(r core.Rect) (x, y, w, h int) {
	x0 := math.Floor((r.X - pr.camX) / pr.cw)
	x1 := math.Ceil((r.Right() - pr.camX) / pr.cw)
	y0 := math.Floor((r.Y - pr.camY) / pr.ch)
	y1 := math.Ceil((r.Bottom() - pr.camY) / pr.ch)
	w = max(int(x1-x0), 1)
	h = max(int(y1-y0), 1)
	return int(x0), int(y0) + pr.top, w, h
}

// Render draws the current state into dst. Row 0 is the HUD; the rest is
// the world seen through the camera.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minRenderWidth || dst.Height() < minRenderHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	v := g.View()
	pr := g.projectorFor(v, dst)

	renderHUD(dst, v)

	for _, p := range v.Platforms {
		x, y, w, _ := pr.cells(p)
		dst.FillArea(x, y, w, 1, PlatformChar, core.ColorGreen)
	}

	gx, _, _, _ := pr.cells(core.NewRect(v.GoalX, 0, 1, 1))
	for row := hudRows; row < dst.Height(); row += 2 {
		dst.SetColored(gx, row, GoalChar, core.ColorBrightMagenta)
	}

	for _, b := range v.Bonuses {
		x, y, w, h := pr.cells(b)
		dst.FillArea(x, y, w, h, BonusChar, core.ColorYellow)
	}

	for _, pu := range v.PowerUps {
		x, y, w, h := pr.cells(pu.Rect)
		dst.FillArea(x, y, w, h, powerUpGlyphs[pu.Kind], powerUpColors[pu.Kind])
	}

	for _, e := range v.Enemies {
		x, y, w, h := pr.cells(e.Rect)
		if e.Stompable {
			dst.FillArea(x, y, w, h, StompableChar, core.ColorMagenta)
		} else {
			dst.FillArea(x, y, w, h, EnemyChar, core.ColorRed)
		}
	}

	renderPlayer(dst, pr, v.Player)

	for _, b := range v.Bullets {
		x, y, _, _ := pr.cells(b)
		dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
	}

	switch v.State {
	case StateDead:
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", v.Player.Score), "R restart  Esc menu", core.ColorBrightRed)
	case StateWon:
		renderOverlay(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d", v.Player.Score), "R play again  Esc menu", core.ColorBrightGreen)
	}
}

// projectorFor anchors the lowest platform at the bottom row and scrolls
// up or down only when the player would leave the view.
func (g *Game) projectorFor(v View, dst *core.Screen) projector {
	cw, ch := g.cfg.View.CellWidth, g.cfg.View.CellHeight
	viewH := float64(dst.Height()-hudRows) * ch

	worldBottom := 0.0
	for _, p := range v.Platforms {
		worldBottom = max(worldBottom, p.Bottom())
	}

	camY := worldBottom - viewH
	if top := v.Player.Rect.Y - ch; top < camY {
		camY = top
	}
	if bottom := v.Player.Rect.Bottom() + ch; bottom > camY+viewH {
		camY = bottom - viewH
	}

	return projector{
		camX: v.CameraX,
		camY: camY,
		cw:   cw,
		ch:   ch,
		top:  hudRows,
	}
}

func renderPlayer(dst *core.Screen, pr projector, p PlayerView) {
	color := core.ColorBrightBlue
	switch {
	case !p.Alive:
		color = core.ColorGray
	case p.Invincible > 0:
		color = core.ColorBrightYellow
	case p.SpeedBoost > 0:
		color = core.ColorBrightCyan
	}

	x, y, w, h := pr.cells(p.Rect)
	dst.FillArea(x, y, w, h, PlayerChar, color)
	if p.FacingRight {
		dst.SetColored(x+w-1, y, '▶', color)
	} else {
		dst.SetColored(x, y, '◀', color)
	}
}

func renderHUD(dst *core.Screen, v View) {
	var hearts strings.Builder
	for i := range v.Player.MaxHealth {
		if i < v.Player.Health {
			hearts.WriteRune(HeartFull)
		} else {
			hearts.WriteRune(HeartEmpty)
		}
	}
	dst.DrawTextColored(0, 0, hearts.String(), core.ColorBrightRed)

	x := v.Player.MaxHealth + 2
	text := fmt.Sprintf("Score %05d  Level %d/%d %s", v.Player.Score, v.LevelIndex+1, v.LevelCount, v.LevelName)
	dst.DrawText(x, 0, text)
	x += len([]rune(text)) + 2

	timers := []struct {
		label string
		left  float64
		color core.Color
	}{
		{"SPD", v.Player.SpeedBoost, core.ColorBrightCyan},
		{"INV", v.Player.Invincible, core.ColorBrightYellow},
		{"JMP", v.Player.HighJump, core.ColorBrightBlue},
	}
	for _, t := range timers {
		if t.left <= 0 {
			continue
		}
		s := fmt.Sprintf("%s %.1f", t.label, t.left)
		dst.DrawTextColored(x, 0, s, t.color)
		x += len(s) + 2
	}
}

func renderOverlay(dst *core.Screen, title, line, hint string, color core.Color) {
	w := max(len(title), len(line), len(hint)) + 6
	h := 7
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.FillArea(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, color)
	dst.DrawTextCenteredColored(y+2, title, color)
	dst.DrawTextCentered(y+3, line)
	dst.DrawTextCenteredColored(y+5, hint, core.ColorGray)
}
