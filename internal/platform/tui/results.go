package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reversi/internal/storage"
)

// Results board layout constants
const (
	maxResults = 100 // Max results to load per tab
)

// resultTab is one mode filter on the results board.
type resultTab struct {
	Title string
	Mode  string // Empty for every mode
}

var resultTabs = []resultTab{
	{Title: "All", Mode: ""},
	{Title: "vs Friend", Mode: "friend"},
	{Title: "vs CPU", Mode: "cpu"},
}

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the finished-games board.
type ResultsModel struct {
	tab       int
	store     *storage.Store
	results   []storage.Result
	stats     *storage.Stats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ResultsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewResultsModel creates a new results board model.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	h := help.New()
	h.Width = width

	m := ResultsModel{
		store:  store,
		keys:   DefaultResultsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Mode", Width: 7},
		{Title: "Black", Width: 5},
		{Title: "White", Width: 5},
		{Title: "Winner", Width: 6},
		{Title: "Moves", Width: 5},
		{Title: "Time", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)), // Title, tabs, stats, help and borders
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

// load fetches results and stats for the current tab.
func (m *ResultsModel) load() {
	m.results, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		mode := resultTabs[m.tab].Mode
		m.results, m.loadErr = m.store.RecentResults(mode, maxResults)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetStats(mode)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded results.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = resultRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// resultRow formats one result for the table.
func resultRow(r storage.Result) table.Row {
	return table.Row{
		r.CreatedAt.Local().Format("Jan 02 15:04"),
		r.Mode,
		fmt.Sprintf("%d", r.Black),
		fmt.Sprintf("%d", r.White),
		r.Winner,
		fmt.Sprintf("%d", r.Moves),
		fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
	}
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(resultTabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(resultTabs) - 1) % len(resultTabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("RESULTS"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the mode filter tabs.
func (m ResultsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(resultTabs))
	for i, t := range resultTabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t.Title)
		} else {
			tabs[i] = tabStyle.Render(t.Title)
		}
	}
	return strings.Join(tabs, " ")
}

// statsLine summarizes the current tab.
func (m ResultsModel) statsLine() string {
	if m.stats == nil || m.stats.Games == 0 {
		return "No games yet"
	}
	s := m.stats
	return fmt.Sprintf("Games %d  Black %d  White %d  Draws %d  Avg moves %.1f",
		s.Games, s.BlackWins, s.WhiteWins, s.Draws, s.AvgMoves)
}

// renderTableContent renders the table or a placeholder.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Results are unavailable:\nno database is open.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No finished games yet.\nPlay one to see it here!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}

// RunResults runs the results board.
// Returns true if user wants to go back to menu, false if quitting.
func RunResults(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewResultsModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ResultsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
