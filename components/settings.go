package components

import "github.com/yohamta/donburi"

// SettingsData holds the toggles that survive restarts.
type SettingsData struct {
	Debug bool // collision overlay
	Muted bool
}

var Settings = donburi.NewComponentType[SettingsData]()
