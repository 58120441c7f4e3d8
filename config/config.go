package config

import "image/color"

// Config holds window-level settings.
type Config struct {
	Width  int
	Height int
	Title  string
}

// WorldConfig contains the play field and level layout values
type WorldConfig struct {
	// Play field
	ScreenWidth  float64
	ScreenHeight float64
	TickRate     int // simulation steps per second

	// Grid
	TileSize float64
	Rows     int
	Cols     int

	// Spatial hash cell size for the per-level resolv space
	CellSize int

	// Fixed start position (top-left of the player sprite) for every level
	StartX float64
	StartY float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed       float64 // px per tick while a direction key is held
	JumpSpeed       float64 // upward velocity applied on jump
	TrampolineSpeed float64 // upward velocity applied by a trampoline

	// Physics
	Gravity      float64
	MaxFallSpeed float64

	// Trampolines only fire when the player's feet are within this many pixels
	// of the trampoline's top edge.
	TrampolineTolerance float64

	// Dimensions
	SpriteWidth      float64
	SpriteHeight     float64
	CollisionOffsetX float64
	CollisionOffsetY float64
	CollisionWidth   float64
	CollisionHeight  float64

	// Animation
	WalkFrameDelay int // ticks between walk frames
	WalkFrames     int
}

// EditorConfig contains level editor layout values
type EditorConfig struct {
	Width           int
	Height          int
	CellSize        int
	GridOffsetX     int
	PaletteColumn   int // first palette column, in cells
	PaletteRows     int // tiles per palette column
	GridLineColor   color.RGBA
	SelectionColor  color.RGBA
	PaletteBorder   color.RGBA
	BackgroundColor color.RGBA
}

// BannerConfig contains the "Level N" banner shown on level start
type BannerConfig struct {
	FadeSeconds float32
	HoldSeconds float32
	TextColor   color.RGBA
	Y           float64
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	Shadow    color.RGBA
}

// DebugConfig contains debug overlay values
type DebugConfig struct {
	ShowCollision bool
	SolidColor    color.RGBA
	SpecialColor  color.RGBA
	PlayerColor   color.RGBA
	SpriteColor   color.RGBA
	StrokeWidth   float32
}

// AssetsConfig locates the art and sound files inside the assets directory.
// Paths are slash-separated and relative to that directory.
type AssetsConfig struct {
	Dir          string // default assets directory, overridden by -assets
	TilesDir     string
	PlayerFrames string // fmt pattern, numbered from 1
	PlayerCount  int
	Background   string
	SoundsDir    string
}

// Global configuration instances
var C *Config
var Assets AssetsConfig
var World WorldConfig
var Player PlayerConfig
var Editor EditorConfig
var Banner BannerConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightGrey    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	C = &Config{
		Width:  960,
		Height: 960,
		Title:  "Pixel Platformer",
	}

	World = WorldConfig{
		ScreenWidth:  960,
		ScreenHeight: 960,
		TickRate:     60,

		TileSize: 64,
		Rows:     15,
		Cols:     15,
		CellSize: 16,

		StartX: 55,
		StartY: 672,
	}

	Player = PlayerConfig{
		WalkSpeed:       5.0,
		JumpSpeed:       15.0,
		TrampolineSpeed: 20.0,

		Gravity:      0.8,
		MaxFallSpeed: 10.0,

		TrampolineTolerance: 10.0,

		// 50x80 collision box centred in a 70x100 sprite
		SpriteWidth:      70,
		SpriteHeight:     100,
		CollisionOffsetX: 10,
		CollisionOffsetY: 10,
		CollisionWidth:   50,
		CollisionHeight:  80,

		WalkFrameDelay: 5,
		WalkFrames:     4,
	}

	Editor = EditorConfig{
		Width:           1500,
		Height:          960,
		CellSize:        32,
		GridOffsetX:     340,
		PaletteColumn:   36,
		PaletteRows:     30,
		GridLineColor:   LightGrey,
		SelectionColor:  Red,
		PaletteBorder:   Black,
		BackgroundColor: White,
	}

	Assets = AssetsConfig{
		Dir:          "data",
		TilesDir:     "Sprites/Tiles/Default",
		PlayerFrames: "Sprites/Characters/Default/character_green_%d.png",
		PlayerCount:  4,
		Background:   "Sprites/Backgrounds/Default/background_clouds.png",
		SoundsDir:    "Sounds",
	}

	Banner = BannerConfig{
		FadeSeconds: 0.6,
		HoldSeconds: 1.0,
		TextColor:   White,
		Y:           200,
	}

	HUD = HUDConfig{
		Margin:    16,
		TextColor: White,
		Shadow:    BlackOverlay,
	}

	Debug = DebugConfig{
		ShowCollision: false,
		SolidColor:    Grey,
		SpecialColor:  Cyan,
		PlayerColor:   Blue,
		SpriteColor:   Red,
		StrokeWidth:   1,
	}
}
