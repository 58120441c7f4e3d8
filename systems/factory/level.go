package factory

import (
	"github.com/automoto/pixel-platformer/archetypes"
	"github.com/automoto/pixel-platformer/components"
	"github.com/automoto/pixel-platformer/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity with a session started at levelIndex.
// Out-of-range indices fall back to the first level.
func CreateLevel(ecs *ecs.ECS, controller *core.LevelController, levelIndex, reached int) (*donburi.Entry, error) {
	level := archetypes.Level.Spawn(ecs)

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= controller.LevelCount() {
		levelIndex = 0
	}

	session, err := controller.Start(levelIndex)
	if err != nil {
		return nil, err
	}

	components.Level.SetValue(level, components.LevelData{
		Controller: controller,
		Session:    session,
		Reached:    max(reached, levelIndex),
	})

	return level, nil
}
