package platformer

import "math"

// Snapshot captures the simulation state as integers for determinism
// checks. Floats are stored as their IEEE-754 bits.
type Snapshot struct {
	Tick       uint64
	State      string
	LevelIndex int
	Score      int
	Health     int
	Alive      bool
	OnGround   bool

	// X, Y, VX, VY, PrevY, speed, invincible, high jump
	PlayerData [8]uint64

	// Each enemy is 5 values: X, Y, VX, VY, Alive
	EnemyData []uint64
	// Each bullet is 5 values: X, Y, VX, VY, Alive
	BulletData []uint64
	// One value per bonus, then one per power-up: 1 if collected
	CollectedData []uint64

	Cooldown uint64
}

func bits(f float64) uint64 {
	return math.Float64bits(f)
}

func flag(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := &g.player
	snap := Snapshot{
		Tick:       g.tick,
		State:      string(g.state),
		LevelIndex: g.levelIndex,
		Score:      p.Score,
		Health:     p.Health,
		Alive:      p.Alive,
		OnGround:   p.OnGround,
		PlayerData: [8]uint64{
			bits(p.Pos.X), bits(p.Pos.Y), bits(p.Vel.X), bits(p.Vel.Y), bits(p.PrevY),
			bits(p.SpeedBoost.Remaining()), bits(p.Invincible.Remaining()), bits(p.HighJump.Remaining()),
		},
		EnemyData:     make([]uint64, 0, len(g.enemies)*5),
		BulletData:    make([]uint64, 0, len(g.bullets)*5),
		CollectedData: make([]uint64, 0, len(g.bonuses)+len(g.powerups)),
		Cooldown:      bits(g.shootCooldown.Remaining()),
	}

	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData, bits(e.Pos.X), bits(e.Pos.Y), bits(e.Vel.X), bits(e.Vel.Y), flag(e.Alive))
	}
	for _, b := range g.bullets {
		snap.BulletData = append(snap.BulletData, bits(b.Pos.X), bits(b.Pos.Y), bits(b.Vel.X), bits(b.Vel.Y), flag(b.Alive))
	}
	for _, b := range g.bonuses {
		snap.CollectedData = append(snap.CollectedData, flag(b.Collected))
	}
	for _, pu := range g.powerups {
		snap.CollectedData = append(snap.CollectedData, flag(pu.Collected))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)     //#nosec G115 -- hash computation
	h = h*31 + flag(snap.Alive)
	h = h*31 + flag(snap.OnGround)

	for _, v := range snap.PlayerData {
		h = h*31 + v
	}
	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	for _, v := range snap.BulletData {
		h = h*31 + v
	}
	for _, v := range snap.CollectedData {
		h = h*31 + v
	}
	return h*31 + snap.Cooldown
}
