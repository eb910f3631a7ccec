package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// Action represents a semantic input derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionRestart
	ActionPause
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. When the action is
// ActionMove, the returned direction is valid.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (Action, game.Direction) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit, 0
	case "left", "h", "a":
		return ActionMove, game.DirLeft
	case "right", "l", "d":
		return ActionMove, game.DirRight
	case "up", "k", "w":
		return ActionMove, game.DirUp
	case "down", "j", "s":
		return ActionMove, game.DirDown
	case "r":
		return ActionRestart, 0
	case "p", "esc":
		return ActionPause, 0
	}

	return ActionNone, 0
}
