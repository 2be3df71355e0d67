package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(0)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPadFire, false},
		{"x", runeKey('x'), core.ActionPadFire, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestHoldWindow(t *testing.T) {
	km := NewKeyMapper(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()

	km.Press(tea.KeyMsg{Type: tea.KeyLeft}, t0, &frame)
	if !frame.Has(core.ActionLeft) {
		t.Error("a press should set the edge-triggered action")
	}

	km.ApplyHeld(t0.Add(50*time.Millisecond), &frame)
	if !frame.IsHeld(core.ActionLeft) {
		t.Error("Left should be held inside the hold window")
	}

	frame.Clear()
	km.ApplyHeld(t0.Add(150*time.Millisecond), &frame)
	if frame.IsHeld(core.ActionLeft) {
		t.Error("Left should be released after the hold window")
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	km := NewKeyMapper(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()

	km.Press(tea.KeyMsg{Type: tea.KeyLeft}, t0, &frame)
	km.Press(tea.KeyMsg{Type: tea.KeyRight}, t0.Add(10*time.Millisecond), &frame)
	frame.Clear()

	km.ApplyHeld(t0.Add(20*time.Millisecond), &frame)
	if frame.IsHeld(core.ActionLeft) {
		t.Error("pressing Right should release Left")
	}
	if !frame.IsHeld(core.ActionRight) {
		t.Error("Right should be held")
	}

	km.Release()
	frame.Clear()
	km.ApplyHeld(t0.Add(30*time.Millisecond), &frame)
	if frame.IsHeld(core.ActionRight) {
		t.Error("Release() should drop every held key")
	}
}

func TestFireIsNotHeld(t *testing.T) {
	km := NewKeyMapper(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()

	km.Press(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, t0, &frame)
	frame.Clear()
	km.ApplyHeld(t0.Add(10*time.Millisecond), &frame)
	if frame.FirePressed() || frame.IsHeld(core.ActionFire) {
		t.Error("fire is edge-triggered and must not repeat from the hold window")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(0)

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
