package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// ModelOptions tunes a play model.
type ModelOptions struct {
	Player     string        // recorded with saved runs
	Logger     *log.Logger   // session events; discarded when nil
	HoldWindow time.Duration // key latch window, DefaultHoldWindow when zero
	AllowBack  bool          // esc in Dead/Won returns to a menu instead of quitting
}

// Model is the Bubble Tea model that runs one platformer session.
type Model struct {
	game     *platformer.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	controls *Controls
	help     help.Model
	opts     ModelOptions

	lastTick   time.Time
	last       platformer.StepResult
	runSaved   bool // run stored for the current Dead/Won state
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *platformer.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	game.Reset(cfg)
	game.Resize(cfg.ScreenW, playRows(cfg.ScreenH))

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:    store,
		logger:   logger,
		config:   cfg,
		controls: NewControls(opts.HoldWindow),
		help:     h,
		opts:     opts,
		last:     platformer.StepResult{State: game.State(), Score: game.Score(), Level: game.LevelIndex()},
	}
}

// playRows leaves the bottom row for the help bar.
func playRows(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "pack", m.game.ID(), "levels", m.game.LevelCount())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.controls.Press(msg, time.Now()) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if !m.last.State.Terminal() {
			return m, nil
		}
		if m.opts.AllowBack {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize keeps the session running and only moves the camera.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.game.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the
// previous tick. The engine clamps long stalls.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := m.config.TickDT()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	prev := m.last.State
	m.last = m.game.Step(m.controls.Intent(now), dt)
	m.logEvents(m.last.Events)

	if m.last.State.Terminal() && !prev.Terminal() {
		m.controls.Reset()
	}
	if !m.last.State.Terminal() {
		m.runSaved = false
	} else if !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) logEvents(events []platformer.Event) {
	for _, e := range events {
		switch e.Kind {
		case platformer.EventLevelAdvanced:
			m.logger.Info("level advanced", "level", e.Level+1, "id", e.Detail, "score", e.Score)
		case platformer.EventPlayerHit:
			m.logger.Info("player hit", "level", e.Level+1, "health", m.last.Health)
		case platformer.EventPlayerDied:
			m.logger.Info("player died", "level", e.Level+1, "score", e.Score)
		case platformer.EventWon:
			m.logger.Info("pack completed", "score", e.Score)
		case platformer.EventRestart:
			m.logger.Info("restart", "level", e.Level+1)
		case platformer.EventPowerUp:
			m.logger.Debug("power-up", "kind", e.Detail)
		case platformer.EventShot:
			// too frequent to log
		default:
			m.logger.Debug(e.Kind.String(), "score", e.Score)
		}
	}
}

// saveRun records the finished run. Storage errors are logged and the
// session continues.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	outcome := storage.OutcomeDied
	if m.last.State == platformer.StateWon {
		outcome = storage.OutcomeWon
	}
	id, err := m.store.SaveRun(storage.Run{
		PackID:       m.game.ID(),
		Player:       m.opts.Player,
		Score:        m.last.Score,
		LevelReached: m.last.Level + 1,
		Outcome:      outcome,
		Ticks:        m.game.Ticks(),
	})
	if err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", m.last.Score, "outcome", outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.controls.Keys()))
}

// Result returns the most recent step result.
func (m Model) Result() platformer.StepResult {
	return m.last
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game *platformer.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
