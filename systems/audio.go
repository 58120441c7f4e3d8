package systems

import (
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/pixel-platformer/assets"
	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared by every scene
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and points the loader at the sound
// directory of fsys. Later calls are ignored.
func InitAudio(fsys fs.FS) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys, cfg.Assets.SoundsDir)
	})
}

// PreloadAllSFX decodes all sound effects up front to avoid lag on first
// play. Files that fail to load are reported once and stay silent.
func PreloadAllSFX() {
	if globalAudioLoader == nil {
		return
	}
	for _, name := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(name); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio plays the sound effects queued this frame.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalAudioLoader == nil || globalMuted || globalSFXVolume <= 0 {
		return
	}

	name, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(name)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts playing looping music from the sound directory.
func PlayMusic(name string) {
	if globalAudioLoader == nil || globalMusicKey == name {
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}

	player, err := globalAudioLoader.LoadMusic(name)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	player.SetVolume(musicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = name
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
}

// SetMuted silences music and sound effects without forgetting the volumes.
func SetMuted(muted bool) {
	globalMuted = muted
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(musicVolume())
	}
}

// IsMuted reports whether audio is muted.
func IsMuted() bool {
	return globalMuted
}

func musicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
