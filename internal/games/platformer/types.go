package platformer

import "fmt"

// SessionState is the top-level state of a game session.
type SessionState string

const (
	StatePlaying SessionState = "playing"
	StateDead    SessionState = "dead" // player out of health, waiting for restart
	StateWon     SessionState = "won"  // advanced past the final level
)

// Terminal reports whether the session is frozen until a restart.
func (s SessionState) Terminal() bool {
	return s == StateDead || s == StateWon
}

// Intent is the per-frame input sample. Fields ending in Pressed are edges:
// true only on the frame the key went down.
type Intent struct {
	MoveLeft       bool
	MoveRight      bool
	JumpPressed    bool
	JumpHeld       bool // sampled for hosts; jumps have a fixed height
	ShootPressed   bool
	AimUpHeld      bool
	RestartPressed bool
}

// horizontal returns the signed horizontal input in {-1, 0, +1}.
func (in Intent) horizontal() float64 {
	var x float64
	if in.MoveLeft {
		x--
	}
	if in.MoveRight {
		x++
	}
	return x
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventShot EventKind = iota
	EventBulletKill
	EventStomp
	EventPlayerHit
	EventPlayerDied
	EventBonus
	EventPowerUp
	EventLevelAdvanced
	EventWon
	EventRestart
)

var eventNames = [...]string{
	EventShot:          "shot",
	EventBulletKill:    "bullet-kill",
	EventStomp:         "stomp",
	EventPlayerHit:     "player-hit",
	EventPlayerDied:    "player-died",
	EventBonus:         "bonus",
	EventPowerUp:       "powerup",
	EventLevelAdvanced: "level-advanced",
	EventWon:           "won",
	EventRestart:       "restart",
}

func (k EventKind) String() string {
	if int(k) >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event records one notable occurrence. Detail carries the power-up kind
// or level ID where relevant.
type Event struct {
	Kind   EventKind
	Level  int
	Score  int
	Detail string
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State  SessionState
	Score  int
	Health int
	Level  int
	Events []Event
}
