package platformer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

const frame = 1.0 / 60.0

// flatLevel is a long floor at y=400 with the player resting on it.
func flatLevel(id string, goal float64) levels.Level {
	return levels.Level{
		ID:        id,
		Name:      id,
		Start:     vec(100, 350),
		GoalX:     goal,
		Platforms: []core.Rect{core.NewRect(0, 400, 5000, 40)},
	}
}

func newTestGame(t *testing.T, lvls ...levels.Level) *Game {
	t.Helper()
	return newTestGameWithConfig(t, config.DefaultPlatformerConfig(), lvls...)
}

func newTestGameWithConfig(t *testing.T, cfg config.PlatformerConfig, lvls ...levels.Level) *Game {
	t.Helper()
	reg, err := levels.NewRegistry("test", lvls)
	require.NoError(t, err)
	g := New(reg, cfg)
	g.Reset(core.DefaultConfig())
	return g
}

// enemyAt builds a living enemy with the default size.
func enemyAt(x, y float64, stompable bool) Enemy {
	return Enemy{
		Body: Body{
			Pos:  vec(x, y),
			Size: vec(28, 45),
		},
		Left:        x - 50,
		Right:       x + 50,
		PatrolSpeed: 60,
		Alive:       true,
		Stompable:   stompable,
	}
}

func settle(g *Game, ticks int) {
	for range ticks {
		g.Step(Intent{}, frame)
	}
}

func newTestGameFromRegistry(t *testing.T, reg *levels.Registry) *Game {
	t.Helper()
	g := New(reg, config.DefaultPlatformerConfig())
	g.Reset(core.DefaultConfig())
	return g
}
