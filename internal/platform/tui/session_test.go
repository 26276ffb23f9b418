package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func send(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	boardPacks()
	rt := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}
	return NewSessionModel(openStore(t), rt, config.DefaultPlatformerConfig(), "ann", nil)
}

func TestSessionMovesBetweenScreens(t *testing.T) {
	m := newTestSession(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores || cmd != nil {
		t.Fatalf("tab: screen = %v cmd = %v, expected run browser and no quit", m.screen, cmd)
	}
	if !strings.Contains(m.View(), "RUNS") {
		t.Error("run browser should be shown")
	}

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || cmd != nil || m.quitting {
		t.Fatalf("esc from runs: screen = %v cmd = %v", m.screen, cmd)
	}
	if m.menu.WantsScoreboard() {
		t.Error("menu should be rebuilt on return")
	}

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("enter: screen = %v, expected game", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	m, _ = send(t, m, TickMsg(time.Now()))
	if m.screen != screenGame || m.quitting {
		t.Error("ticks keep the game running")
	}

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.quitting || cmd == nil {
		t.Error("q in game should end the session")
	}
	if m.View() != "" {
		t.Error("a finished session renders nothing")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := newTestSession(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.rt.ScreenW != 120 || m.rt.ScreenH != 40 {
		t.Errorf("runtime size = %dx%d, expected 120x40", m.rt.ScreenW, m.rt.ScreenH)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scores.height != 40 {
		t.Errorf("run browser height = %d, expected the resized 40", m.scores.height)
	}
}

func TestMenuListsPacksWithBestScore(t *testing.T) {
	boardPacks()
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) < 2 || m.items[0].PackID != "aa-board" {
		t.Fatalf("items = %+v", m.items)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	if m.cursor != min(2, len(m.items)-1) {
		t.Errorf("cursor = %d after two downs", m.cursor)
	}

	if got := packLine(MenuItem{Title: "Alpha"}, 20); got != "Alpha" {
		t.Errorf("packLine without score = %q", got)
	}
	if got := packLine(MenuItem{Title: "Alpha", HighScore: 300}, 20); got != "Alpha       best 300" {
		t.Errorf("packLine = %q", got)
	}
	if !strings.Contains(m.View(), "Alpha") {
		t.Error("menu should list pack titles")
	}
}
