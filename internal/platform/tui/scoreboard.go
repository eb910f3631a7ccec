package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const maxScoreRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextSize key.Binding
	PrevSize key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevSize, k.NextSize, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevSize, k.NextSize, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevSize: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "smaller board"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "bigger board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing high scores per
// board size.
type ScoreboardModel struct {
	store     *storage.Store
	boardSize int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
}

// NewScoreboardModel creates a scoreboard starting at the given board size.
func NewScoreboardModel(store *storage.Store, boardSize, width, height int) ScoreboardModel {
	if boardSize < config.MinBoardSize || boardSize > config.MaxBoardSize {
		boardSize = 4
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:     store,
		boardSize: boardSize,
		keys:      DefaultScoreboardKeyMap(),
		help:      h,
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable builds the bubbles table with score columns.
func (m ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Max tile", Width: 10},
		{Title: "Date", Width: 18},
	}

	height := m.height - 8
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	return t
}

// loadScores refreshes the table rows for the current board size.
func (m *ScoreboardModel) loadScores() {
	var rows []table.Row
	if m.store != nil {
		entries, err := m.store.TopScores(m.boardSize, maxScoreRows)
		if err == nil {
			for i, e := range entries {
				rows = append(rows, table.Row{
					strconv.Itoa(i + 1),
					strconv.Itoa(e.Score),
					strconv.Itoa(e.MaxTile),
					e.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(5, msg.Height-8))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevSize):
			if m.boardSize > config.MinBoardSize {
				m.boardSize--
				m.loadScores()
			}
			return m, nil
		case key.Matches(msg, m.keys.NextSize):
			if m.boardSize < config.MaxBoardSize {
				m.boardSize++
				m.loadScores()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("High scores - %dx%d board", m.boardSize, m.boardSize))

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = helpStyle.Render("No scores recorded yet for this board size.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive scoreboard.
func RunScoreboard(store *storage.Store, boardSize, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, boardSize, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
