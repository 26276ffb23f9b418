package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const maxRuns = 100

// runView selects which runs the browser lists.
type runView int

const (
	viewBest   runView = iota // per pack, best score first
	viewRecent                // every pack, newest first
)

func (v runView) String() string {
	if v == viewRecent {
		return "recent"
	}
	return "best"
}

// outcomeFilter narrows the listed runs by how they ended.
type outcomeFilter int

const (
	filterAll outcomeFilter = iota
	filterWon
	filterDied
	filterCount
)

func (f outcomeFilter) String() string {
	switch f {
	case filterWon:
		return string(storage.OutcomeWon)
	case filterDied:
		return string(storage.OutcomeDied)
	default:
		return "all"
	}
}

func (f outcomeFilter) keep(r storage.Run) bool {
	switch f {
	case filterWon:
		return r.Outcome == storage.OutcomeWon
	case filterDied:
		return r.Outcome == storage.OutcomeDied
	default:
		return true
	}
}

// ScoreboardKeyMap defines the run browser bindings.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	View     key.Binding
	Filter   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPack, k.View, k.Filter, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.View, k.Filter, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the default run browser bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		NextPack: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next pack")),
		PrevPack: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev pack")),
		View:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses recorded runs. The best view ranks one pack's
// runs by score; the recent view lists the newest runs of every pack.
// Both honor the outcome filter, and the header always shows the
// selected pack's aggregate stats.
type ScoreboardModel struct {
	store  *storage.Store
	packs  []registry.PackInfo
	pack   int
	view   runView
	filter outcomeFilter

	runs  []storage.Run
	stats *storage.PackStats
	err   error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a run browser on the first registered pack.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		packs:  registry.List(),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newRunTable(m.view, height)
	m.reload()
	return m
}

func (m ScoreboardModel) packID() string {
	if len(m.packs) == 0 {
		return ""
	}
	return m.packs[m.pack].ID
}

// reload fetches runs and stats for the current pack and view.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil && m.packID() != "" {
		if m.view == viewRecent {
			m.runs, m.err = m.store.RecentRuns(maxRuns)
		} else {
			m.runs, m.err = m.store.TopScores(m.packID(), maxRuns)
		}
		if m.err == nil {
			m.stats, m.err = m.store.PackStats(m.packID())
		}
	}
	m.table.SetRows(runRows(m.runs, m.view, m.filter))
	m.table.GotoTop()
}

func runColumns(v runView) []table.Column {
	if v == viewRecent {
		return []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Pack", Width: 10},
			{Title: "Score", Width: 7},
			{Title: "Level", Width: 5},
			{Title: "Result", Width: 6},
			{Title: "Player", Width: 12},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 5},
		{Title: "Result", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 12},
	}
}

func newRunTable(v runView, height int) table.Model {
	t := table.New(
		table.WithColumns(runColumns(v)),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// runRows formats the runs that pass the filter. Ranks count only the
// rows shown.
func runRows(runs []storage.Run, v runView, f outcomeFilter) []table.Row {
	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		if !f.keep(r) {
			continue
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		date := r.CreatedAt.Format("Jan 02 15:04")
		score := fmt.Sprint(r.Score)
		level := fmt.Sprint(r.LevelReached)
		if v == viewRecent {
			rows = append(rows, table.Row{date, r.PackID, score, level, string(r.Outcome), player})
			continue
		}
		rank := fmt.Sprintf("#%d", len(rows)+1)
		rows = append(rows, table.Row{rank, score, level, string(r.Outcome), player, date})
	}
	return rows
}

// statsLine summarizes a pack's aggregate stats for the header.
func statsLine(s *storage.PackStats) string {
	if s == nil || s.Runs == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("runs %d  wins %d  best %d  avg %.0f  furthest level %d",
		s.Runs, s.Wins, s.HighScore, s.AvgScore, s.BestLevel)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextPack):
			m.cyclePack(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevPack):
			m.cyclePack(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.table = newRunTable(m.view, m.height)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % filterCount
			m.table.SetRows(runRows(m.runs, m.view, m.filter))
			m.table.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(m.height-9, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cyclePack(step int) {
	if len(m.packs) == 0 {
		return
	}
	m.pack = (m.pack + step + len(m.packs)) % len(m.packs)
	m.reload()
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)

	var b strings.Builder
	b.WriteString(title.Render("RUNS"))
	if len(m.packs) > 0 {
		b.WriteString(title.Render(fmt.Sprintf(" · %s", m.packs[m.pack].Title)))
	}
	b.WriteString(dim.Render(fmt.Sprintf("  [%s, %s]", m.view, m.filter)))
	b.WriteString("\n")
	b.WriteString(dim.Render(statsLine(m.stats)))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(box.Render("cannot read runs: " + m.err.Error()))
	case len(m.table.Rows()) == 0:
		b.WriteString(box.Render(dim.Italic(true).Render("No matching runs.")))
	default:
		b.WriteString(box.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the browser as its own program and reports whether
// the user went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
