package factory

import (
	"github.com/automoto/pixel-platformer/archetypes"
	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEditor spawns the editor entity. A nil grid starts an empty level;
// otherwise the editor works on a copy of grid.
func CreateEditor(ecs *ecs.ECS, grid leveldata.Grid, palette []*ebiten.Image, path string) *donburi.Entry {
	entry := archetypes.Editor.Spawn(ecs)

	if grid == nil {
		grid = leveldata.NewGrid(cfg.World.Rows, cfg.World.Cols)
	} else {
		grid = grid.Clone()
	}

	components.Editor.SetValue(entry, components.EditorData{
		Grid:    grid,
		Palette: palette,
		Path:    path,
	})
	return entry
}
