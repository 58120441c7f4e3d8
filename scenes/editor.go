package scenes

import (
	"sync"

	"github.com/automoto/pixel-platformer/archetypes"
	"github.com/automoto/pixel-platformer/components"
	"github.com/automoto/pixel-platformer/shared/leveldata"
	"github.com/automoto/pixel-platformer/systems"
	"github.com/automoto/pixel-platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EditorScene paints a level grid and appends it to a level file.
type EditorScene struct {
	ecs     *ecs.ECS
	grid    leveldata.Grid
	palette []*ebiten.Image
	path    string
	once    sync.Once
}

// NewEditorScene opens a copy of grid (nil for an empty level) for editing.
// Saves go to path.
func NewEditorScene(grid leveldata.Grid, palette []*ebiten.Image, path string) *EditorScene {
	return &EditorScene{grid: grid, palette: palette, path: path}
}

func (es *EditorScene) Update() error {
	es.once.Do(es.configure)

	if ebiten.IsWindowBeingClosed() {
		es.Close()
		return ebiten.Termination
	}

	es.ecs.Update()
	return nil
}

func (es *EditorScene) Draw(screen *ebiten.Image) {
	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

// Close saves the level if it was painted since the last save.
func (es *EditorScene) Close() {
	if es.ecs == nil {
		return
	}
	entry, ok := components.Editor.First(es.ecs.World)
	if !ok {
		return
	}
	if ed := components.Editor.Get(entry); ed.Dirty {
		systems.SaveEditorLevel(ed)
	}
}

func (es *EditorScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateEditor)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(archetypes.Default, systems.DrawEditor)

	es.ecs = ecs

	factory.CreateEditor(es.ecs, es.grid, es.palette, es.path)
}
