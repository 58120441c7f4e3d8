package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/pixel-platformer/components"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey = "settings"
	progressKey = "progress"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted bool `json:"muted"`
	Debug bool `json:"debug"`
}

// SavedProgress records how far the player has got.
type SavedProgress struct {
	Reached int `json:"reached"` // highest level index entered
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() *SavedSettings {
	var s SavedSettings
	if !loadItem(settingsKey, &s) {
		return nil
	}
	return &s
}

// SaveCurrentSettings stores the toggles in the Settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	saveItem(settingsKey, SavedSettings{Muted: s.Muted, Debug: s.Debug})
}

// LoadProgress returns the saved progress, or nil if there is none.
func LoadProgress() *SavedProgress {
	var p SavedProgress
	if !loadItem(progressKey, &p) {
		return nil
	}
	return &p
}

// SaveProgress records reached unless an equal or higher level is already
// stored.
func SaveProgress(reached int) {
	if p := LoadProgress(); p != nil && p.Reached >= reached {
		return
	}
	saveItem(progressKey, SavedProgress{Reached: reached})
}

func loadItem(key string, v any) bool {
	if gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
	}
}
