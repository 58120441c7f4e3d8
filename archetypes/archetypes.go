package archetypes

import (
	"github.com/automoto/pixel-platformer/components"
	"github.com/automoto/pixel-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

var (
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Art = newArchetype(
		components.Art,
	)
	Banner = newArchetype(
		tags.Banner,
		components.Banner,
	)
	Settings = newArchetype(
		tags.Settings,
		components.Settings,
	)
	Editor = newArchetype(
		tags.Editor,
		components.Editor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
