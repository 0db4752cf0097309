package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MouseSensitivity float64 `json:"mouseSensitivity"`
	InvertY          bool    `json:"invertY"`
	Debug            bool    `json:"debug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing has
// been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	settings.MouseSensitivity = clampSensitivity(settings.MouseSensitivity)
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.StorageKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the live settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		MouseSensitivity: s.MouseSensitivity,
		InvertY:          s.InvertY,
		Debug:            s.Debug,
	})
}

// ApplySavedSettingsGlobal applies saved settings to the global config before
// any scene is built, so new rigs pick up the saved sensitivity.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.MouseSensitivity > 0 {
		cfg.Character.Look.MouseSensitivity = saved.MouseSensitivity
	}
	cfg.Settings.InvertY = saved.InvertY
	cfg.Debug.Overlay = cfg.Debug.Overlay || saved.Debug
}

func clampSensitivity(v float64) float64 {
	if v == 0 {
		return 0
	}
	if v < cfg.Settings.MinSensitivity {
		return cfg.Settings.MinSensitivity
	}
	if v > cfg.Settings.MaxSensitivity {
		return cfg.Settings.MaxSensitivity
	}
	return v
}
