package components

import (
	cfg "github.com/automoto/kidclunk/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the smoothed movement axes and this frame's look deltas.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Horizontal and Vertical are in [-1, 1]; keyboard input is smoothed,
	// analog sticks are used as read.
	Horizontal float64
	Vertical   float64

	// LookX and LookY are in look axis units. Positive LookY is up.
	LookX float64
	LookY float64

	// Cursor position on the previous frame, valid while CursorTracked.
	CursorX, CursorY int
	CursorTracked    bool
}

var Input = donburi.NewComponentType[InputData]()
