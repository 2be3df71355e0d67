package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldWindow is how long a steering key counts as held after its last
// press or auto-repeat. Terminals only report presses, never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// It also emulates level-triggered steering on top of key repeat.
type KeyMapper struct {
	holdWindow time.Duration
	held       map[core.Action]time.Time
}

// NewKeyMapper creates a key mapper. A non-positive window uses DefaultHoldWindow.
func NewKeyMapper(holdWindow time.Duration) *KeyMapper {
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &KeyMapper{
		holdWindow: holdWindow,
		held:       make(map[core.Action]time.Time),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter", "x":
		return core.ActionPadFire, false
	case "up", "w", "k":
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Press records a key received at now into frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if action == core.ActionNone {
		return false
	}

	frame.Set(action)
	switch action {
	case core.ActionLeft:
		km.held[core.ActionLeft] = now
		delete(km.held, core.ActionRight)
	case core.ActionRight:
		km.held[core.ActionRight] = now
		delete(km.held, core.ActionLeft)
	}
	return false
}

// ApplyHeld marks every steering key still inside its hold window as held.
func (km *KeyMapper) ApplyHeld(now time.Time, frame *core.InputFrame) {
	for a, last := range km.held {
		if now.Sub(last) > km.holdWindow {
			delete(km.held, a)
			continue
		}
		frame.Hold(a)
	}
}

// Release forgets all held keys.
func (km *KeyMapper) Release() {
	for a := range km.held {
		delete(km.held, a)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
