package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move ship left
	ActionRight          // Right arrow, D - move ship right
	ActionFire           // Space - keyboard fire button
	ActionPadFire        // X, Enter - controller south button
	ActionUp             // Up, W, K - menu navigation
	ActionDown           // Down, S, J - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - pause in play, back to menu otherwise
	ActionRestart        // R - restart from the end screen
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape in play - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPadFire:
		return "PadFire"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// FireActions lists every action that counts as a press of the fire button.
var FireActions = []Action{ActionFire, ActionPadFire}

// InputFrame is the input sampled once for a single simulation tick.
//
// Actions are edge-triggered (pressed since the previous tick) while Held is
// level-triggered (still down). Movement reads Held and Axis, firing reads Actions.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool

	// Axis is the raw horizontal stick reading in [-1, 1], before the dead zone.
	Axis float64

	// DevicePresent reports whether a qualifying input device is connected.
	DevicePresent bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as just pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was just pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsHeld returns true if the given action is held down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// FirePressed reports whether any fire button was just pressed.
func (f InputFrame) FirePressed() bool {
	for _, a := range FireActions {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets edge-triggered actions, held state and axis for the next frame.
// Device presence is a connection state and survives the clear.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Axis = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Axis = f.Axis
	clone.DevicePresent = f.DevicePresent
	return clone
}

// DeadZone filters a stick reading: values with magnitude below threshold read
// as zero, values above are rescaled linearly so the output still spans [-1, 1].
func DeadZone(v, threshold float64) float64 {
	if threshold >= 1 {
		return 0
	}
	switch {
	case v >= threshold:
		return ClampF((v-threshold)/(1-threshold), 0, 1)
	case v <= -threshold:
		return ClampF((v+threshold)/(1-threshold), -1, 0)
	default:
		return 0
	}
}
