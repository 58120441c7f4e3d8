package systems

import (
	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowBanner starts the fade in, hold and fade out of text. A banner already
// on screen is replaced.
func ShowBanner(e *ecs.ECS, text string) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	banner.Text = text
	banner.Fade = newBannerFade()
	banner.Alpha = 0
	banner.Done = false
}

func newBannerFade() *gween.Sequence {
	fade := cfg.Banner.FadeSeconds
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, fade, ease.OutQuad),
		gween.New(1, 1, cfg.Banner.HoldSeconds, ease.Linear),
		gween.New(1, 0, fade, ease.InQuad),
	)
	return seq
}

// UpdateBanner advances the banner fade by one tick.
func UpdateBanner(e *ecs.ECS) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Done || banner.Fade == nil {
		return
	}

	alpha, _, finished := banner.Fade.Update(1 / float32(cfg.World.TickRate))
	banner.Alpha = alpha
	if finished {
		banner.Alpha = 0
		banner.Done = true
	}
}
