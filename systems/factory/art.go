package factory

import (
	"github.com/automoto/pixel-platformer/archetypes"
	"github.com/automoto/pixel-platformer/assets"
	"github.com/automoto/pixel-platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateArt(ecs *ecs.ECS, art *assets.Art) *donburi.Entry {
	entry := archetypes.Art.Spawn(ecs)
	components.Art.SetValue(entry, components.ArtData{Art: art})
	return entry
}
