package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. The cursor is released while paused.
type PauseData struct {
	IsPaused      bool
	QuitRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()
