package factory

import (
	"github.com/automoto/pixel-platformer/archetypes"
	"github.com/automoto/pixel-platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBanner spawns an idle banner; systems.ShowBanner starts it.
func CreateBanner(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Banner.Spawn(ecs)
	components.Banner.SetValue(entry, components.BannerData{Done: true})
	return entry
}
