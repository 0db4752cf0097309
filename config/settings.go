package config

// SettingsConfig bounds the player-adjustable settings
type SettingsConfig struct {
	MinSensitivity float64
	MaxSensitivity float64
	StorageKey     string
	AppName        string
	// InvertY is the starting invert state before saved settings load
	InvertY bool
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		MinSensitivity: 50,
		MaxSensitivity: 2000,
		StorageKey:     "settings",
		AppName:        "kidclunk",
	}
}
