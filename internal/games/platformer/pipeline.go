package platformer

import "github.com/vovakirdan/tui-platformer/internal/levels"

type tickContext struct {
	in Intent
	dt float64
}

type phase struct {
	name string
	run  func(*Game, *tickContext)
}

// tickPhases is the fixed per-tick order. Bullets move before enemies,
// shots resolve before contact, and every stomp is checked before any
// damage. Once the session leaves Playing the remaining phases are skipped.
var tickPhases = []phase{
	{"player", (*Game).movePlayer},
	{"shoot", (*Game).shoot},
	{"bullets", (*Game).moveBullets},
	{"enemies", (*Game).moveEnemies},
	{"bullet-hits", (*Game).resolveBulletHits},
	{"enemy-contact", (*Game).resolveEnemyContact},
	{"bonuses", (*Game).collectBonuses},
	{"powerups", (*Game).collectPowerUps},
	{"progression", (*Game).checkProgression},
}

// PhaseNames returns the tick phases in execution order.
func PhaseNames() []string {
	names := make([]string, len(tickPhases))
	for i, p := range tickPhases {
		names[i] = p.name
	}
	return names
}

func (g *Game) runPhases(tc *tickContext) {
	for _, p := range tickPhases {
		if g.state != StatePlaying {
			return
		}
		p.run(g, tc)
	}
}

// movePlayer applies input, ticks timers, integrates and lands the player.
func (g *Game) movePlayer(tc *tickContext) {
	p := &g.player
	p.PrevY = p.Pos.Y

	dir := tc.in.horizontal()
	speed := g.cfg.Player.BaseSpeed
	if p.SpeedBoost.Active() {
		speed += g.cfg.Player.SpeedBoost
	}
	p.Vel.X = dir * speed
	if dir != 0 {
		p.FacingRight = dir > 0
	}

	if p.OnGround && tc.in.JumpPressed {
		jump := g.cfg.Player.JumpSpeed
		if p.HighJump.Active() {
			jump = g.cfg.Player.HighJumpSpeed
		}
		p.Vel.Y = -jump
		p.OnGround = false
	}

	p.SpeedBoost.Tick(tc.dt)
	p.Invincible.Tick(tc.dt)
	p.HighJump.Tick(tc.dt)

	cand := p.Integrate(tc.dt)
	cand, p.OnGround = p.land(cand, g.level.Platforms)

	if cand.Y > g.cfg.Physics.FallLimit {
		p.placeAt(g.level.Start)
		return
	}
	p.Pos = cand
}

// shoot spawns a bullet on a shoot edge once the cooldown has expired.
// Aiming up fires from the top of the player's head; otherwise the bullet
// leaves at mid height in the facing direction.
func (g *Game) shoot(tc *tickContext) {
	g.shootCooldown.Tick(tc.dt)
	if !tc.in.ShootPressed || g.shootCooldown.Active() {
		return
	}

	p := &g.player
	bc := g.cfg.Bullet
	centerX := p.Pos.X + p.Size.X/2

	b := Bullet{Size: vec(bc.Width, bc.Height), Alive: true}
	if tc.in.AimUpHeld {
		b.Pos = vec(centerX, p.Pos.Y)
		b.Vel = vec(0, -bc.Speed)
	} else {
		dir := 1.0
		if !p.FacingRight {
			dir = -1
		}
		b.Pos = vec(centerX+dir*bc.MuzzleOffset, p.Pos.Y+p.Size.Y/2)
		b.Vel = vec(dir*bc.Speed, 0)
	}

	g.bullets = append(g.bullets, b)
	g.shootCooldown.Reset(bc.Cooldown)
	g.emit(EventShot)
}

// moveBullets advances bullets and kills those outside the world box.
func (g *Game) moveBullets(tc *tickContext) {
	w := g.cfg.World
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Alive {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(tc.dt))
		if b.Pos.X < w.MinX || b.Pos.X > w.MaxX || b.Pos.Y < w.MinY || b.Pos.Y > w.MaxY {
			b.Alive = false
		}
	}
}

// moveEnemies patrols and lands every living enemy. Enemies have no
// fall-limit respawn.
func (g *Game) moveEnemies(tc *tickContext) {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		cand := e.patrol(tc.dt)
		cand, _ = e.land(cand, g.level.Platforms)
		e.Pos = cand
	}
}

// resolveBulletHits lets each bullet kill at most one enemy. The first
// living enemy in roster order wins a tie; replays depend on that order,
// so the scan must stay in roster order.
func (g *Game) resolveBulletHits(*tickContext) {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Alive {
			continue
		}
		box := b.Rect()
		for j := range g.enemies {
			e := &g.enemies[j]
			if !e.Alive || !box.Overlaps(e.Rect()) {
				continue
			}
			e.Alive = false
			b.Alive = false
			if g.player.Alive {
				g.player.Score += g.cfg.Scoring.BulletKill
			}
			g.emit(EventBulletKill)
			break
		}
	}
}

// resolveEnemyContact checks stomps against every enemy first, then applies
// at most one hit if nothing was stomped and the player is vulnerable.
// A hit costs one health and sends the player back to the level start.
func (g *Game) resolveEnemyContact(*tickContext) {
	p := &g.player
	stomped := false

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive || !e.Stompable || p.Vel.Y <= 0 {
			continue
		}
		if !p.Rect().Overlaps(e.Rect()) {
			continue
		}
		if p.prevBottom() > e.Pos.Y+g.cfg.Player.StompMargin {
			continue
		}
		e.Alive = false
		p.Vel.Y = -g.cfg.Player.JumpSpeed * g.cfg.Player.StompBounce
		p.Score += g.cfg.Scoring.Stomp
		stomped = true
		g.emit(EventStomp)
	}

	if stomped || p.Invincible.Active() {
		return
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive || !p.Rect().Overlaps(e.Rect()) {
			continue
		}
		p.Health--
		p.placeAt(g.level.Start)
		if p.Health <= 0 {
			p.Health = 0
			p.Alive = false
			g.state = StateDead
			g.emit(EventPlayerDied)
		} else {
			g.emit(EventPlayerHit)
		}
		return
	}
}

// collectBonuses awards score for each bonus touched this tick.
func (g *Game) collectBonuses(*tickContext) {
	box := g.player.Rect()
	for i := range g.bonuses {
		b := &g.bonuses[i]
		if b.Collected || !box.Overlaps(b.Rect()) {
			continue
		}
		b.Collected = true
		g.player.Score += g.cfg.Scoring.Bonus
		g.emit(EventBonus)
	}
}

// collectPowerUps applies power-up effects. Timed effects restart at the
// full duration rather than stacking.
func (g *Game) collectPowerUps(*tickContext) {
	p := &g.player
	box := p.Rect()
	d := g.cfg.Items.PowerUpDuration

	for i := range g.powerups {
		pu := &g.powerups[i]
		if pu.Collected || !box.Overlaps(pu.Rect()) {
			continue
		}
		pu.Collected = true

		switch pu.Kind {
		case levels.PowerUpHealth:
			p.Health = min(p.Health+1, g.cfg.Player.MaxHealth)
		case levels.PowerUpSpeed:
			p.SpeedBoost.Reset(d)
		case levels.PowerUpInvincibility:
			p.Invincible.Reset(d)
		case levels.PowerUpHighJump:
			p.HighJump.Reset(d)
		}
		g.emitDetail(EventPowerUp, pu.Kind.String())
	}
}

// checkProgression advances past the goal line, or wins after the last
// level. The level index never leaves the registry's range.
func (g *Game) checkProgression(*tickContext) {
	if g.player.Pos.X <= g.level.GoalX {
		return
	}

	next := g.levelIndex + 1
	if !g.registry.Has(next) {
		g.state = StateWon
		g.emit(EventWon)
		return
	}

	g.loadLevel(next)
	g.emitDetail(EventLevelAdvanced, g.level.ID)
}
