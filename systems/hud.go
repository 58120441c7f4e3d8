package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the level counter and coin total in the top-left corner,
// and the level banner while it is fading.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	s := level.Session

	face := fonts.Regular.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin) + face.Metrics().Ascent.Ceil()

	lines := []string{
		fmt.Sprintf("Level %d/%d", s.LevelIndex+1, level.Controller.LevelCount()),
		fmt.Sprintf("Coins: %d", s.Actor.Coins),
	}
	if IsMuted() {
		lines = append(lines, "Muted")
	}
	for i, line := range lines {
		drawShadowed(screen, line, face, x, y+i*lineHeight, cfg.HUD.TextColor)
	}

	drawBanner(e, screen)
}

func drawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Done || banner.Alpha <= 0 {
		return
	}

	face := fonts.Title.Get()
	x := centerTextX(banner.Text, face, cfg.World.ScreenWidth)
	c := withAlpha(cfg.Banner.TextColor, banner.Alpha)
	drawShadowed(screen, banner.Text, face, x, int(cfg.Banner.Y), c)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int, c color.RGBA) {
	shadow := cfg.HUD.Shadow
	shadow.A = uint8(float32(shadow.A) * float32(c.A) / 255)
	text.Draw(screen, s, face, x+2, y+2, shadow)
	text.Draw(screen, s, face, x, y, c)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	textWidth := font.MeasureString(face, s).Ceil()
	return int((screenWidth - float64(textWidth)) / 2)
}

// withAlpha scales a straight-alpha colour to the premultiplied form ebiten
// expects for a fade of alpha in [0,1].
func withAlpha(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
