package systems

import (
	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the in-game settings keys: debug overlay, invert Y
// and mouse sensitivity. Any change is pushed to the player rig and saved.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleInvertY).JustPressed {
		settings.InvertY = !settings.InvertY
		changed = true
	}
	if GetAction(input, cfg.ActionSensitivityUp).JustPressed {
		settings.MouseSensitivity = clampSensitivity(settings.MouseSensitivity + cfg.Input.SensitivityStep)
		changed = true
	}
	if GetAction(input, cfg.ActionSensitivityDown).JustPressed {
		settings.MouseSensitivity = clampSensitivity(settings.MouseSensitivity - cfg.Input.SensitivityStep)
		changed = true
	}
	if !changed {
		return
	}

	if entry, ok := components.Character.First(ecs.World); ok {
		components.Character.Get(entry).Rig.Look.SetSensitivity(settings.MouseSensitivity)
	}
	SaveCurrentSettings(settings)
}

// GetOrCreateSettings returns the singleton settings component, seeded from
// the global config on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			MouseSensitivity: cfg.Character.Look.MouseSensitivity,
			InvertY:          cfg.Settings.InvertY,
			Debug:            cfg.Debug.Overlay,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
