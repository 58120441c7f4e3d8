package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pixel-platformer/archetypes"
	"github.com/automoto/pixel-platformer/assets"
	"github.com/automoto/pixel-platformer/core"
	"github.com/automoto/pixel-platformer/systems"
	"github.com/automoto/pixel-platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene is one screen of a binary, driven by its ebiten.Game.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type PlatformerScene struct {
	ecs        *ecs.ECS
	controller *core.LevelController
	art        *assets.Art
	startLevel int
	reached    int
	once       sync.Once
}

// NewPlatformerScene creates the game scene. startLevel is the level played
// first; reached is the saved progress it continues from.
func NewPlatformerScene(controller *core.LevelController, art *assets.Art, startLevel, reached int) *PlatformerScene {
	return &PlatformerScene{
		controller: controller,
		art:        art,
		startLevel: startLevel,
		reached:    reached,
	}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so every later system sees this tick's keys
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateBanner)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(archetypes.Default, systems.DrawBackground)
	ecs.AddRenderer(archetypes.Default, systems.DrawTiles)
	ecs.AddRenderer(archetypes.Default, systems.DrawSpecials)
	ecs.AddRenderer(archetypes.Default, systems.DrawPlayer)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	ecs.AddRenderer(archetypes.Default, systems.DrawHUD)

	ps.ecs = ecs

	factory.CreateArt(ps.ecs, ps.art)
	factory.CreateBanner(ps.ecs)
	if _, err := factory.CreateLevel(ps.ecs, ps.controller, ps.startLevel, ps.reached); err != nil {
		panic("failed to start level: " + err.Error())
	}

	session := systems.CurrentSession(ps.ecs)
	systems.ShowBanner(ps.ecs, systems.LevelTitle(session.LevelIndex))
}
