package systems

import (
	"image/color"

	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the level's collision space and the
// player's sprite rectangle.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	s := CurrentSession(e)
	if s == nil {
		return
	}

	for _, obj := range s.Grid.Space().Objects() {
		// Determine color based on tags
		c := cfg.Debug.SolidColor
		if obj.HasTags(core.TagSpecial) {
			c = cfg.Debug.SpecialColor
		} else if obj.HasTags(core.TagPlayer) {
			c = cfg.Debug.PlayerColor
		}
		strokeRect(screen, core.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, c)
	}

	strokeRect(screen, s.Actor.Sprite(), cfg.Debug.SpriteColor)
	strokeRect(screen, s.Actor.Collision(), cfg.Debug.PlayerColor)
}

func strokeRect(screen *ebiten.Image, r core.Rect, c color.RGBA) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Debug.StrokeWidth, c, false)
}
