package systems

import (
	"github.com/automoto/pixel-platformer/archetypes"
	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay and mute toggles. Every change is
// written back to disk.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		SetMuted(settings.Muted)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the saved settings on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		data := components.SettingsData{
			Debug: cfg.Debug.ShowCollision,
			Muted: IsMuted(),
		}
		if saved := LoadSettings(); saved != nil {
			data.Debug = saved.Debug || data.Debug
			data.Muted = saved.Muted
			SetMuted(saved.Muted)
		}
		components.Settings.SetValue(entry, data)
	}
	return components.Settings.Get(entry)
}
