// Package tui provides the Bubble Tea integration: the game view, key
// mapping, the scoreboard and SSH server support via Wish.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Model is the Bubble Tea model driving one game session. The game is
// turn-based: exactly one move is applied per key event, and bubbletea's
// update loop serializes events, so inputs are processed one at a time.
type Model struct {
	session *game.Session
	store   *storage.Store
	keys    *KeyMapper
	snap    game.Snapshot

	width    int
	height   int
	paused   bool
	tooSmall bool
	quitting bool

	// scoreSaved guards the once-per-game history insert on game over.
	scoreSaved bool
}

// NewModel creates a model for the given session. The store may be nil to
// play without persistence.
func NewModel(session *game.Session, store *storage.Store, width, height int) Model {
	m := Model{
		session: session,
		store:   store,
		keys:    NewKeyMapper(),
		snap:    session.Snapshot(),
		width:   width,
		height:  height,
	}
	m.checkSize()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.checkSize()
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, dir := m.keys.MapKey(msg)

	switch action {
	case ActionQuit:
		m.saveFinishedGame()
		m.quitting = true
		return m, tea.Quit

	case ActionPause:
		m.paused = !m.paused

	case ActionRestart:
		m.saveFinishedGame()
		m.snap = m.session.Reset()
		m.paused = false
		m.scoreSaved = false

	case ActionMove:
		if m.paused || m.tooSmall {
			return m, nil
		}
		m.snap = m.session.ApplyMove(dir)
		if m.snap.Over {
			m.saveFinishedGame()
		}
	}

	return m, nil
}

// saveFinishedGame records a finished game in the score history once.
// Best-effort: the game continues regardless of storage failures.
func (m *Model) saveFinishedGame() {
	if m.scoreSaved || m.store == nil || !m.snap.Over || m.snap.Score == 0 {
		return
	}
	//nolint:errcheck // best-effort save
	m.store.SaveScore(m.snap.Size, m.snap.Score, m.snap.MaxTile)
	m.scoreSaved = true
}

// checkSize updates the too-small flag for the current terminal size.
func (m *Model) checkSize() {
	minW, minH := minViewSize(m.session.Size())
	m.tooSmall = m.width > 0 && m.height > 0 && (m.width < minW || m.height < minH)
}

// Snapshot exposes the last rendered snapshot, used by tests.
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return renderTooSmall(m.width, m.height)
	}

	sections := []string{
		renderHUD(m.snap),
		renderBoard(m.snap.Board),
	}
	if status := renderStatus(m.snap, m.paused, m.session.Target()); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, renderHelp())

	view := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(session *game.Session, store *storage.Store, width, height int) error {
	model := NewModel(session, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
