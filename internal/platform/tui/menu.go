package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	packBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// MenuItem is one level pack offered by the menu.
type MenuItem struct {
	PackID      string
	Title       string
	Description string
	HighScore   int
}

// MenuModel picks a level pack. It quits its program once the user has
// chosen a pack, asked for the run browser, or left.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	width      int
	selected   *MenuItem
	scoreboard bool
	quitting   bool
}

// NewMenuModel lists every registered pack with its best score when a
// store is available.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	packs := registry.List()
	items := make([]MenuItem, len(packs))
	for i, p := range packs {
		items[i] = MenuItem{PackID: p.ID, Title: p.Title, Description: p.Description}
		if store != nil {
			items[i].HighScore, _ = store.HighScore(p.ID)
		}
	}
	return MenuModel{items: items, width: cfg.ScreenW}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				m.selected = &item
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.scoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// packLine formats one menu row; the best score is omitted until a run
// has scored.
func packLine(item MenuItem, width int) string {
	if item.HighScore <= 0 {
		return item.Title
	}
	best := fmt.Sprintf("best %d", item.HighScore)
	gap := max(width-len(item.Title)-len(best), 2)
	return item.Title + strings.Repeat(" ", gap) + best
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	rowWidth := 0
	for _, item := range m.items {
		rowWidth = max(rowWidth, len(item.Title)+12)
	}

	var rows []string
	for i, item := range m.items {
		line := packLine(item, rowWidth)
		if i == m.cursor {
			rows = append(rows, activeStyle.Render("> "+line))
			if item.Description != "" {
				rows = append(rows, dimStyle.Render("  "+item.Description))
			}
			continue
		}
		rows = append(rows, "  "+line)
	}
	if len(rows) == 0 {
		rows = append(rows, dimStyle.Render("No level packs registered."))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		centerStyled(titleStyle.Render("P L A T F O R M E R"), m.width),
		"",
		centerStyled(packBox.Render(strings.Join(rows, "\n")), m.width),
		"",
		centerStyled(dimStyle.Render("up/down pick  enter play  tab runs  q quit"), m.width),
	)
}

// Selected returns the chosen pack, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the run browser.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

func centerStyled(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunMenu shows the menu as its own program. selected is nil when the user
// quit or asked for the run browser.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (selected *MenuItem, scoreboard bool, err error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, false, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return nil, false, nil
	}
	return m.Selected(), m.WantsScoreboard(), nil
}
