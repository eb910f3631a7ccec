package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/game"
)

const (
	cellWidth  = 7
	cellHeight = 3
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)

	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Bold(true)

	wonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(0, 2)

	overStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 2)

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			Border(lipgloss.NormalBorder()).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// tileColors maps tile values to 256-color foregrounds, roughly following the
// classic palette from pale to fiery.
var tileColors = map[int]lipgloss.Color{
	2:    lipgloss.Color("252"),
	4:    lipgloss.Color("230"),
	8:    lipgloss.Color("216"),
	16:   lipgloss.Color("214"),
	32:   lipgloss.Color("209"),
	64:   lipgloss.Color("202"),
	128:  lipgloss.Color("221"),
	256:  lipgloss.Color("220"),
	512:  lipgloss.Color("214"),
	1024: lipgloss.Color("208"),
	2048: lipgloss.Color("226"),
}

// tileStyle returns the style for a tile value. Values beyond 2048 share one
// bright style.
func tileStyle(value int) lipgloss.Style {
	color, ok := tileColors[value]
	if !ok {
		color = lipgloss.Color("201")
	}
	return lipgloss.NewStyle().
		Width(cellWidth).
		Height(cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Foreground(color)
}

// renderBoard draws the grid of tiles.
func renderBoard(board game.Board) string {
	rows := make([]string, 0, len(board))
	for _, row := range board {
		cells := make([]string, 0, len(row))
		for _, val := range row {
			if val == 0 {
				cells = append(cells, emptyCellStyle.Render("·"))
				continue
			}
			cells = append(cells, tileStyle(val).Render(strconv.Itoa(val)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHUD draws the score line above the board.
func renderHUD(snap game.Snapshot) string {
	score := fmt.Sprintf("%s %s", hudLabelStyle.Render("Score"), hudValueStyle.Render(strconv.Itoa(snap.Score)))
	best := fmt.Sprintf("%s %s", hudLabelStyle.Render("Best"), hudValueStyle.Render(strconv.Itoa(snap.Best)))
	maxTile := fmt.Sprintf("%s %s", hudLabelStyle.Render("Max"), hudValueStyle.Render(strconv.Itoa(snap.MaxTile)))
	return lipgloss.JoinHorizontal(lipgloss.Top, score, "   ", best, "   ", maxTile)
}

// renderStatus draws the banner below the board for won/over/paused states.
func renderStatus(snap game.Snapshot, paused bool, target int) string {
	switch {
	case paused:
		return pausedStyle.Render("PAUSED - press P to resume")
	case snap.Over:
		return overStyle.Render(fmt.Sprintf("GAME OVER - max tile %d - press R to restart", snap.MaxTile))
	case snap.Won:
		return wonStyle.Render(fmt.Sprintf("%d reached! Keep going or press R to restart", target))
	}
	return ""
}

// renderHelp draws the key legend.
func renderHelp() string {
	return helpStyle.Render("arrows/hjkl/wasd move · r restart · p pause · q quit")
}

// minViewSize returns the minimum terminal size needed for a board.
func minViewSize(boardSize int) (w, h int) {
	w = boardSize*cellWidth + 4          // board + border/padding
	h = boardSize*cellHeight + 2 + 2 + 2 // board + border + HUD + status
	return w, h
}

// renderTooSmall tells the player to resize the terminal.
func renderTooSmall(width, height int) string {
	msg := "Window too small\nPlease resize terminal"
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
