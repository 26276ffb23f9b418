package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel chains menu, game and run browser inside one program, for
// hosts like SSH that cannot restart programs between screens. Child
// models quit when they are done; the session swallows those quits and
// switches screens instead.
type SessionModel struct {
	store    *storage.Store
	rt       core.RuntimeConfig
	gameCfg  config.PlatformerConfig
	player   string
	logger   *log.Logger
	screen   sessionScreen
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	loadErr  error
	quitting bool
}

// NewSessionModel starts a session on the pack menu.
func NewSessionModel(store *storage.Store, rt core.RuntimeConfig, gameCfg config.PlatformerConfig, player string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:   store,
		rt:      rt,
		gameCfg: gameCfg,
		player:  player,
		logger:  logger,
		menu:    NewMenuModel(store, rt),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return nil
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.rt.ScreenW, m.rt.ScreenH = ws.Width, ws.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenGame:
		var next tea.Model
		next, cmd = m.game.Update(msg)
		m.game, _ = next.(Model)
		switch {
		case m.game.IsQuitting():
			return m.quit()
		case m.game.BackToMenu():
			return m.showMenu()
		}

	case screenScores:
		var next tea.Model
		next, cmd = m.scores.Update(msg)
		m.scores, _ = next.(ScoreboardModel)
		switch {
		case m.scores.IsQuitting():
			return m.quit()
		case m.scores.IsGoingBack():
			return m.showMenu()
		}

	default:
		var next tea.Model
		next, cmd = m.menu.Update(msg)
		m.menu, _ = next.(MenuModel)
		switch {
		case m.menu.IsQuitting():
			return m.quit()
		case m.menu.WantsScoreboard():
			m.screen = screenScores
			m.scores = NewScoreboardModel(m.store, m.rt.ScreenW, m.rt.ScreenH)
			return m, nil
		case m.menu.Selected() != nil:
			return m.startGame(m.menu.Selected().PackID)
		}
	}
	return m, cmd
}

func (m SessionModel) startGame(packID string) (tea.Model, tea.Cmd) {
	reg, err := registry.Load(packID)
	if err != nil {
		m.logger.Error("cannot load pack", "pack", packID, "err", err)
		m.loadErr = err
		m.menu = NewMenuModel(m.store, m.rt)
		return m, nil
	}
	m.loadErr = nil
	m.game = NewModel(platformer.New(reg, m.gameCfg), m.store, m.rt, ModelOptions{
		Player:    m.player,
		Logger:    m.logger,
		AllowBack: true,
	})
	m.screen = screenGame
	return m, m.game.Init()
}

// showMenu rebuilds the menu so high scores include the run just saved.
// Ticks still queued for the old game reach the menu and are dropped.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.rt)
	return m, nil
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	if m.loadErr != nil {
		return m.menu.View() + "\n" + centerStyled(errorStyle.Render("error: "+m.loadErr.Error()), m.rt.ScreenW)
	}
	return m.menu.View()
}
