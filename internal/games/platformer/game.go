// Package platformer implements the side-scrolling platformer simulation:
// kinematics, platform landing, entity interactions, timed power-ups and
// level progression. It is pure logic; the platform layer supplies input
// intents and frame times and draws the result.
package platformer

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// Game is one platformer session over a level registry.
// It is not safe for concurrent use.
type Game struct {
	cfg        config.PlatformerConfig
	runtime    core.RuntimeConfig
	registry   *levels.Registry
	difficulty *config.DifficultyManager

	state      SessionState
	levelIndex int
	level      levels.Level
	tick       uint64

	player   Player
	enemies  []Enemy
	bonuses  []Bonus
	powerups []PowerUp
	bullets  []Bullet

	shootCooldown Countdown
	events        []Event
}

// New creates a session over reg. Reset must be called before Step.
func New(reg *levels.Registry, cfg config.PlatformerConfig) *Game {
	return &Game{
		cfg:        cfg,
		registry:   reg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		runtime:    core.DefaultConfig(),
	}
}

// ID returns the level pack identifier.
func (g *Game) ID() string {
	return g.registry.ID()
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Platformer: " + g.registry.ID()
}

// Config returns the simulation config in use.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// Reset starts a fresh session at the first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tick = 0
	g.startSession(0)
}

// Resize updates the viewport used for the camera.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
}

// startSession puts a full-health, zero-score player at the start of level
// index and reloads every roster.
func (g *Game) startSession(index int) {
	g.player = Player{
		Body: Body{
			Size:    core.Vec2{X: g.cfg.Player.Width, Y: g.cfg.Player.Height},
			Gravity: g.cfg.Physics.Gravity,
		},
		FacingRight: true,
		Alive:       true,
		Health:      g.cfg.Player.MaxHealth,
	}
	g.loadLevel(index)
	g.state = StatePlaying
}

// loadLevel makes index current, moves the player to its start and
// rebuilds the rosters from the template. Score and health carry over.
func (g *Game) loadLevel(index int) {
	lvl, ok := g.registry.At(index)
	if !ok {
		index = 0
		lvl = g.registry.First()
	}
	g.levelIndex = index
	g.level = lvl

	g.player.placeAt(lvl.Start)
	g.player.clearTimers()
	g.shootCooldown.Clear()

	enemySpeed := g.difficulty.EnemySpeed(g.cfg.Enemy.Speed, index, g.player.Score)
	g.enemies = make([]Enemy, 0, len(lvl.Enemies))
	for _, s := range lvl.Enemies {
		gravity := g.cfg.Physics.Gravity
		if s.Hover {
			gravity = 0
		}
		g.enemies = append(g.enemies, Enemy{
			Body: Body{
				Pos:     s.Pos,
				Vel:     core.Vec2{X: s.Dir * enemySpeed},
				Size:    core.Vec2{X: g.cfg.Enemy.Width, Y: g.cfg.Enemy.Height},
				Gravity: gravity,
			},
			Left:        s.Left,
			Right:       s.Right,
			PatrolSpeed: enemySpeed,
			Alive:       true,
			Stompable:   s.Stompable,
		})
	}

	g.bonuses = make([]Bonus, 0, len(lvl.Bonuses))
	for _, s := range lvl.Bonuses {
		g.bonuses = append(g.bonuses, Bonus{Pos: s.Pos, Size: g.cfg.Items.BonusSize})
	}

	g.powerups = make([]PowerUp, 0, len(lvl.PowerUps))
	for _, s := range lvl.PowerUps {
		g.powerups = append(g.powerups, PowerUp{Pos: s.Pos, Size: g.cfg.Items.PowerUpSize, Kind: s.Kind})
	}

	g.bullets = g.bullets[:0]
}

// restart leaves a terminal state. Dead restarts the level where the
// player died; Won restarts the first level.
func (g *Game) restart() {
	index := g.levelIndex
	if g.state == StateWon {
		index = 0
	}
	g.startSession(index)
	g.emit(EventRestart)
}

// Step advances the session by one tick of dt seconds. dt is clamped to
// [0, physics.max_frame_dt]; NaN counts as zero.
func (g *Game) Step(in Intent, dt float64) StepResult {
	g.events = g.events[:0]

	if math.IsNaN(dt) {
		dt = 0
	}
	dt = core.ClampF(dt, 0, g.cfg.Physics.MaxFrameDT)

	if in.RestartPressed && g.state.Terminal() {
		g.restart()
		return g.result()
	}

	if g.state == StatePlaying {
		g.tick++
		g.runPhases(&tickContext{in: in, dt: dt})
	}
	g.sweepBullets()

	return g.result()
}

// State returns the current session state.
func (g *Game) State() SessionState {
	return g.state
}

// LevelIndex returns the index of the current level.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// LevelCount returns the number of levels in the session.
func (g *Game) LevelCount() int {
	return g.registry.Len()
}

// Score returns the player's score.
func (g *Game) Score() int {
	return g.player.Score
}

// Ticks returns the number of simulated ticks since Reset.
func (g *Game) Ticks() uint64 {
	return g.tick
}

func (g *Game) result() StepResult {
	return StepResult{
		State:  g.state,
		Score:  g.player.Score,
		Health: g.player.Health,
		Level:  g.levelIndex,
		Events: slices.Clone(g.events),
	}
}

func (g *Game) emit(kind EventKind) {
	g.emitDetail(kind, "")
}

func (g *Game) emitDetail(kind EventKind, detail string) {
	g.events = append(g.events, Event{
		Kind:   kind,
		Level:  g.levelIndex,
		Score:  g.player.Score,
		Detail: detail,
	})
}

// sweepBullets drops dead bullets. It runs once per tick after every
// interaction so no phase iterates a shrinking slice.
func (g *Game) sweepBullets() {
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool {
		return !b.Alive
	})
}
