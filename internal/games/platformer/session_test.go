package platformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	_ "github.com/vovakirdan/tui-platformer/internal/levels/packs"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func twoLevels() (levels.Level, levels.Level) {
	a := flatLevel("a", 1050)
	a.Enemies = []levels.EnemySpawn{{Pos: vec(600, 355), Left: 550, Right: 650, Dir: 1}}
	a.Bonuses = []levels.BonusSpawn{{Pos: vec(400, 370)}}

	b := flatLevel("b", 2000)
	b.Start = vec(200, 350)
	b.Enemies = []levels.EnemySpawn{
		{Pos: vec(800, 355), Left: 700, Right: 900, Dir: -1, Stompable: true},
		{Pos: vec(1200, 355), Left: 1100, Right: 1300, Dir: 1},
	}
	b.PowerUps = []levels.PowerUpSpawn{{Pos: vec(500, 370), Kind: levels.PowerUpSpeed}}
	return a, b
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestPhaseOrder(t *testing.T) {
	assert.Equal(t, []string{
		"player", "shoot", "bullets", "enemies", "bullet-hits",
		"enemy-contact", "bonuses", "powerups", "progression",
	}, PhaseNames())
}

func TestLevelTransitionKeepsScoreAndHealth(t *testing.T) {
	a, b := twoLevels()
	g := newTestGame(t, a, b)

	g.enemies[0].Alive = false
	g.bonuses[0].Collected = true
	g.bullets = append(g.bullets, Bullet{Pos: vec(900, 300), Vel: vec(500, 0), Size: vec(10, 4), Alive: true})
	g.player.Score = 250
	g.player.Health = 2
	g.player.SpeedBoost.Reset(4)
	g.player.Invincible.Reset(4)
	g.player.HighJump.Reset(4)
	g.player.Pos = vec(1049, 350)
	g.player.OnGround = true

	res := g.Step(Intent{MoveRight: true}, 0.1)

	assert.Equal(t, 1, res.Level)
	assert.Equal(t, StatePlaying, res.State)
	assert.Equal(t, 250, res.Score)
	assert.Equal(t, 2, res.Health)
	assert.Equal(t, b.Start, g.player.Pos)
	assert.Equal(t, core.Vec2{}, g.player.Vel)
	assert.False(t, g.player.SpeedBoost.Active())
	assert.False(t, g.player.Invincible.Active())
	assert.False(t, g.player.HighJump.Active())
	assert.Empty(t, g.bullets)
	assert.Empty(t, g.bonuses)

	require.Len(t, g.enemies, 2)
	for _, e := range g.enemies {
		assert.True(t, e.Alive)
	}
	assert.Equal(t, vec(800, 355), g.enemies[0].Pos)
	assert.Equal(t, -60.0, g.enemies[0].Vel.X)
	require.Len(t, g.powerups, 1)
	assert.False(t, g.powerups[0].Collected)

	require.Len(t, res.Events, 1)
	assert.Equal(t, EventLevelAdvanced, res.Events[0].Kind)
	assert.Equal(t, "b", res.Events[0].Detail)
}

func TestGoalLineIsExclusive(t *testing.T) {
	a, b := twoLevels()
	g := newTestGame(t, a, b)
	g.player.Pos = vec(1030, 350)

	g.Step(Intent{MoveRight: true}, 0.1) // lands exactly on 1050
	assert.Equal(t, 0, g.LevelIndex())
	assert.InDelta(t, 1050.0, g.player.Pos.X, 1e-9)
}

func TestFinalGoalWinsAndFreezes(t *testing.T) {
	g := newTestGame(t, flatLevel("only", 1050))
	g.player.Pos = vec(1049, 350)
	g.player.Score = 300

	res := g.Step(Intent{MoveRight: true}, 0.1)
	require.Equal(t, StateWon, res.State)
	assert.Equal(t, 0, res.Level, "index stays on the last level")
	assert.Equal(t, []EventKind{EventWon}, eventKinds(res.Events))

	before := g.Snapshot()
	for range 30 {
		res = g.Step(Intent{MoveRight: true, JumpPressed: true, ShootPressed: true}, frame)
		assert.Empty(t, res.Events)
	}
	after := g.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash())
	assert.Equal(t, StateWon, g.State())
	assert.Equal(t, 300, g.Score())
}

func TestClassicMeadowAdvancesToRidge(t *testing.T) {
	reg, err := registry.Load("classic")
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	g := newTestGameFromRegistry(t, reg)
	g.player.Pos = vec(1049, 300)
	g.player.Vel = core.Vec2{}

	res := g.Step(Intent{MoveRight: true}, 0.1)

	assert.Equal(t, 1, res.Level)
	assert.Equal(t, "02-ridge", g.level.ID)
	assert.Equal(t, vec(100, 100), g.player.Pos)
}

func TestDeathAndRestartAtSameLevel(t *testing.T) {
	a, b := twoLevels()
	g := newTestGame(t, a, b)
	g.loadLevel(1)
	g.player.Health = 1
	g.player.Score = 400
	g.enemies = []Enemy{enemyAt(200, 355, false)}

	res := g.Step(Intent{}, frame)
	require.Equal(t, StateDead, res.State)
	assert.Equal(t, []EventKind{EventPlayerDied}, eventKinds(res.Events))
	assert.Equal(t, 0, res.Health)

	frozen := g.Snapshot().Hash()
	g.Step(Intent{MoveRight: true}, frame)
	assert.Equal(t, frozen, g.Snapshot().Hash(), "dead sessions do not simulate")

	res = g.Step(Intent{RestartPressed: true}, frame)
	assert.Equal(t, StatePlaying, res.State)
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, 3, res.Health)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, b.Start, g.player.Pos)
	assert.True(t, g.player.Alive)
	assert.Equal(t, []EventKind{EventRestart}, eventKinds(res.Events))
	require.Len(t, g.enemies, 2, "roster rebuilt from the level")
}

func TestRestartAfterWinGoesToFirstLevel(t *testing.T) {
	a, b := twoLevels()
	g := newTestGame(t, a, b)
	g.loadLevel(1)
	g.player.Pos = vec(1999, 350)

	res := g.Step(Intent{MoveRight: true}, 0.1)
	require.Equal(t, StateWon, res.State)
	assert.Equal(t, 1, res.Level)

	res = g.Step(Intent{RestartPressed: true}, frame)
	assert.Equal(t, StatePlaying, res.State)
	assert.Equal(t, 0, res.Level)
	assert.Equal(t, a.Start, g.player.Pos)
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, flatLevel("a", 4000))
	g.player.Score = 50
	g.player.Pos = vec(500, 350)

	res := g.Step(Intent{RestartPressed: true}, frame)

	assert.Equal(t, StatePlaying, res.State)
	assert.Equal(t, 50, res.Score)
	assert.InDelta(t, 500.0, g.player.Pos.X, 1e-9)
	assert.Equal(t, uint64(1), g.Ticks())
	assert.NotContains(t, eventKinds(res.Events), EventRestart)
}

func TestStepEventsAreFresh(t *testing.T) {
	g := newTestGame(t, flatLevel("a", 4000))

	first := g.Step(Intent{ShootPressed: true}, frame)
	require.Equal(t, []EventKind{EventShot}, eventKinds(first.Events))

	second := g.Step(Intent{}, frame)
	assert.Empty(t, second.Events)
	assert.Equal(t, EventShot, first.Events[0].Kind, "earlier results are not overwritten")
}

// script is a fixed input sequence used for determinism checks.
func script(i int) Intent {
	return Intent{
		MoveRight:    i%90 < 60,
		MoveLeft:     i%90 >= 75,
		JumpPressed:  i%45 == 0,
		ShootPressed: i%20 == 0,
		AimUpHeld:    i%60 == 0,
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func(frames int, variant bool) uint64 {
		reg, err := registry.Load("classic")
		require.NoError(t, err)
		g := newTestGameFromRegistry(t, reg)
		for i := range frames {
			in := script(i)
			if variant && i == frames-1 {
				in = Intent{MoveLeft: true}
			}
			g.Step(in, frame)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	assert.Equal(t, run(600, false), run(600, false))
	assert.NotEqual(t, run(120, false), run(120, true))
}

func TestSnapshotHashTracksState(t *testing.T) {
	a := newTestGame(t, flatLevel("one", 2000))
	b := newTestGame(t, flatLevel("one", 2000))
	assert.Equal(t, a.Snapshot().Hash(), b.Snapshot().Hash())

	a.Step(Intent{MoveRight: true}, frame)
	b.Step(Intent{}, frame)
	assert.NotEqual(t, a.Snapshot().Hash(), b.Snapshot().Hash())

	snap := a.Snapshot()
	assert.Equal(t, snap.Hash(), a.Snapshot().Hash(), "hashing does not change the snapshot")
}

func TestClassicPackSurvivesLongRun(t *testing.T) {
	reg, err := registry.Load("classic")
	require.NoError(t, err)
	g := newTestGameFromRegistry(t, reg)

	for i := range 3000 {
		res := g.Step(script(i), frame)
		require.GreaterOrEqual(t, res.Level, 0)
		require.Less(t, res.Level, reg.Len())
		require.GreaterOrEqual(t, res.Health, 0)
		require.LessOrEqual(t, res.Health, 3)
		if res.State.Terminal() {
			g.Step(Intent{RestartPressed: true}, frame)
		}
	}
}

func TestViewCameraAndInertEntities(t *testing.T) {
	a, _ := twoLevels()
	g := newTestGame(t, a)
	g.Resize(80, 24)

	v := g.View()
	assert.Equal(t, 800.0, v.ViewportW)
	assert.Equal(t, -300.0, v.CameraX)
	assert.Len(t, v.Enemies, 1)
	assert.Len(t, v.Bonuses, 1)

	g.enemies[0].Alive = false
	g.bonuses[0].Collected = true
	v = g.View()
	assert.Empty(t, v.Enemies)
	assert.Empty(t, v.Bonuses)
	assert.Equal(t, "a", v.LevelName)
}

func TestRenderDrawsHUDAndWorld(t *testing.T) {
	a, _ := twoLevels()
	g := newTestGame(t, a)
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	hud := scr.Row(0)
	assert.Contains(t, hud, string(HeartFull))
	assert.Contains(t, hud, "Score 00000")
	assert.Contains(t, hud, "Level 1/1")
	assert.Contains(t, scr.String(), string(PlayerChar))
	assert.Contains(t, scr.String(), string(PlatformChar))
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, flatLevel("a", 4000))
	scr := core.NewScreen(80, 24)

	g.state = StateDead
	g.Render(scr)
	assert.Contains(t, scr.String(), "GAME OVER")

	scr.Clear()
	g.state = StateWon
	g.Render(scr)
	assert.Contains(t, scr.String(), "YOU WIN!")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, flatLevel("a", 4000))
	scr := core.NewScreen(10, 3)

	g.Render(scr)
	assert.True(t, strings.Contains(scr.String(), "too"))
}
