package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// DefaultHoldWindow is how long a press keeps a movement action held.
// It must outlast the terminal's initial key-repeat delay.
const DefaultHoldWindow = 180 * time.Millisecond

// GameKeyMap defines the gameplay key bindings.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Up      key.Binding // jumps and aims up
	Shoot   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Shoot, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Up},
		{k.Shoot, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "jump"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "jump, aim up"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("j", "z", "x"),
			key.WithHelp("j/z", "shoot"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Controls turns key presses into per-tick intents. Terminals report
// presses and auto-repeats but no releases, so a press latches its action
// for the hold window after the most recent repeat.
type Controls struct {
	keys   GameKeyMap
	window time.Duration
	held   map[core.Action]time.Time // action -> latch expiry
	edges  core.InputFrame
}

// NewControls creates controls with the default bindings.
func NewControls(window time.Duration) *Controls {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &Controls{
		keys:   DefaultGameKeyMap(),
		window: window,
		held:   make(map[core.Action]time.Time),
		edges:  core.NewInputFrame(),
	}
}

// Keys returns the bindings, e.g. for a help bar.
func (c *Controls) Keys() GameKeyMap {
	return c.keys
}

// Press records a key press at now and returns the action it maps to.
// Quit and Back are returned for the caller to act on and are not latched.
func (c *Controls) Press(msg tea.KeyMsg, now time.Time) core.Action {
	switch {
	case key.Matches(msg, c.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, c.keys.Back):
		return core.ActionBack
	case key.Matches(msg, c.keys.Left):
		delete(c.held, core.ActionRight)
		c.hold(core.ActionLeft, now)
		return core.ActionLeft
	case key.Matches(msg, c.keys.Right):
		delete(c.held, core.ActionLeft)
		c.hold(core.ActionRight, now)
		return core.ActionRight
	case key.Matches(msg, c.keys.Up):
		c.edges.Set(core.ActionJump)
		c.hold(core.ActionAimUp, now)
		return core.ActionJump
	case key.Matches(msg, c.keys.Jump):
		c.edges.Set(core.ActionJump)
		return core.ActionJump
	case key.Matches(msg, c.keys.Shoot):
		c.edges.Set(core.ActionShoot)
		return core.ActionShoot
	case key.Matches(msg, c.keys.Restart):
		c.edges.Set(core.ActionRestart)
		return core.ActionRestart
	}
	return core.ActionNone
}

func (c *Controls) hold(a core.Action, now time.Time) {
	c.held[a] = now.Add(c.window)
}

func (c *Controls) holding(a core.Action, now time.Time) bool {
	until, ok := c.held[a]
	if !ok {
		return false
	}
	if !now.Before(until) {
		delete(c.held, a)
		return false
	}
	return true
}

// Intent samples the controls at now. Edge actions are consumed.
func (c *Controls) Intent(now time.Time) platformer.Intent {
	in := platformer.Intent{
		MoveLeft:       c.holding(core.ActionLeft, now),
		MoveRight:      c.holding(core.ActionRight, now),
		JumpPressed:    c.edges.Has(core.ActionJump),
		AimUpHeld:      c.holding(core.ActionAimUp, now),
		ShootPressed:   c.edges.Has(core.ActionShoot),
		RestartPressed: c.edges.Has(core.ActionRestart),
	}
	in.JumpHeld = in.JumpPressed || in.AimUpHeld
	c.edges.Clear()
	return in
}

// Reset drops all latched and pending actions.
func (c *Controls) Reset() {
	clear(c.held)
	c.edges.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
