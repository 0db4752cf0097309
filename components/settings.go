package components

import "github.com/yohamta/donburi"

// SettingsData holds the player settings that are saved between sessions.
type SettingsData struct {
	MouseSensitivity float64 // degrees/sec per look axis unit
	InvertY          bool
	Debug            bool
}

var Settings = donburi.NewComponentType[SettingsData]()
