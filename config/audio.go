package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundTrampoline
	// Pickups and hazards
	SoundCoin
	SoundSpikes
	SoundLevelComplete
	// Editor sounds
	SoundEditorSave
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths, relative to the sounds directory
type SoundConfig struct {
	BackgroundMusic   string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.4,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		BackgroundMusic: "background_music.ogg",
		SFXPaths: map[SoundID]string{
			SoundJump:          "sfx_jump.ogg",
			SoundTrampoline:    "sfx_jump-high.ogg",
			SoundCoin:          "sfx_coin.ogg",
			SoundSpikes:        "sfx_disappear.ogg",
			SoundLevelComplete: "sfx_magic.ogg",
			SoundEditorSave:    "sfx_select.ogg",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSpikes: 1.2,
		},
	}
}
