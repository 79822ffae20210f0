package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/borno/internal/registry"
	"github.com/vovakirdan/borno/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the stage list sidebar
	sidebarWidth       = 20
	maxRuns            = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextStage key.Binding
	PrevStage key.Binding
	Mode      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextStage, k.PrevStage, k.Mode, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextStage, k.PrevStage, k.Mode},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextStage: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next stage"),
		),
		PrevStage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev stage"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "best/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists stored runs per stage, best first or newest first.
type ScoreboardModel struct {
	stages   []registry.GameInfo
	cursor   int
	store    *storage.Store
	runs     []storage.RunRecord
	recent   bool // Newest first instead of best first
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model. If stageID names a
// registered stage it is selected first.
func NewScoreboardModel(store *storage.Store, stageID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		stages: registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, s := range m.stages {
		if s.ID == stageID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable builds the runs table sized to the current terminal.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Kills", Width: 6},
		{Title: "Hits", Width: 5},
		{Title: "Time", Width: 7},
		{Title: "Clear", Width: 5},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// stageID returns the selected stage, or empty if none are registered.
func (m ScoreboardModel) stageID() string {
	if len(m.stages) == 0 {
		return ""
	}
	return m.stages[m.cursor].ID
}

// loadRuns reloads the table for the selected stage and mode.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.err = nil, nil
	if m.store != nil && len(m.stages) > 0 {
		if m.recent {
			m.runs, m.err = m.store.RecentRuns(m.stageID(), maxRuns)
		} else {
			m.runs, m.err = m.store.TopRuns(m.stageID(), maxRuns)
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows.
func runRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		cleared := ""
		if r.Cleared {
			cleared = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.Hits),
			formatElapsed(r.Elapsed),
			cleared,
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatElapsed renders seconds as m:ss.
func formatElapsed(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextStage):
			if len(m.stages) > 0 {
				m.cursor = (m.cursor + 1) % len(m.stages)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevStage):
			if len(m.stages) > 0 {
				m.cursor = (m.cursor + len(m.stages) - 1) % len(m.stages)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Mode):
			m.recent = !m.recent
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "BEST RUNS"
	if m.recent {
		title = "RECENT RUNS"
	}
	if len(m.stages) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.stages[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.tableContent())

	if m.width >= minWidthForSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", panel))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(panel)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the stages with the selection marked.
func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Stages\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, s := range m.stages {
		line := "  " + truncate(s.Title, sidebarWidth-6)
		if i == m.cursor {
			line = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
				Render("> " + truncate(s.Title, sidebarWidth-6))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1).
		Render(sb.String())
}

// renderTabs shows the stages as one line, or just the selection with
// arrows when they do not fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.stages) == 0 {
		return ""
	}
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.stages))
	plain := 0
	for i, s := range m.stages {
		name := truncate(s.Title, 10)
		plain += len(name) + 3
		if i == m.cursor {
			tabs[i] = activeStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}
	if plain > m.width-4 {
		return fmt.Sprintf("< %s >", m.stages[m.cursor].Title)
	}
	return strings.Join(tabs, " ")
}

// tableContent renders the table, an error or an empty message.
func (m ScoreboardModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.err.Error())
	case m.store == nil:
		return emptyStyle.Render("No score database available.")
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nClear a stage to set a record!")
	}
	return m.table.View()
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// centerText pads s so it sits in the middle of width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, stageID string, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, stageID, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
