package systems

import (
	"image/color"

	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// Sky colour behind the tiles when no background image was loaded
var skyColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}

func getArt(e *ecs.ECS) *components.ArtData {
	entry, ok := components.Art.First(e.World)
	if !ok {
		return nil
	}
	return components.Art.Get(entry)
}

// CurrentSession returns the session being played, or nil before the level
// entity exists.
func CurrentSession(e *ecs.ECS) *core.Session {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Session
}

// DrawBackground stretches the background image over the play field.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	art := getArt(e)
	if art == nil || art.Background == nil {
		screen.Fill(skyColor)
		return
	}

	b := art.Background.Bounds()
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(cfg.World.ScreenWidth/float64(b.Dx()), cfg.World.ScreenHeight/float64(b.Dy()))
	screen.DrawImage(art.Background, drawOp)
}

// DrawTiles draws the solid and decorative tiles of the current level.
func DrawTiles(e *ecs.ECS, screen *ebiten.Image) {
	art, s := getArt(e), CurrentSession(e)
	if art == nil || s == nil {
		return
	}
	for _, t := range s.Grid.Tiles {
		drawTile(screen, art, t.ID, t.Display)
	}
}

// DrawSpecials draws the special tiles still live in the current level.
func DrawSpecials(e *ecs.ECS, screen *ebiten.Image) {
	art, s := getArt(e), CurrentSession(e)
	if art == nil || s == nil {
		return
	}
	for _, sp := range s.Specials.Live() {
		drawTile(screen, art, sp.ID, sp.Display)
	}
}

func drawTile(screen *ebiten.Image, art *components.ArtData, id int, at core.Rect) {
	img := art.Tile(id)
	if img == nil {
		return
	}
	b := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(at.W/float64(b.Dx()), at.H/float64(b.Dy()))
	drawOp.GeoM.Translate(at.X, at.Y)
	screen.DrawImage(img, drawOp)
}

// DrawPlayer draws the current walk frame in the sprite rectangle, or a
// plain box when the player frames are missing.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	art, s := getArt(e), CurrentSession(e)
	if s == nil {
		return
	}
	a := s.Actor
	sprite := a.Sprite()

	var img *ebiten.Image
	if art != nil {
		img = art.PlayerFrame(a.Frame, a.Facing)
	}
	if img == nil {
		vector.FillRect(screen, float32(sprite.X), float32(sprite.Y), float32(sprite.W), float32(sprite.H), cfg.Debug.PlayerColor, false)
		return
	}

	b := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(sprite.W/float64(b.Dx()), sprite.H/float64(b.Dy()))
	drawOp.GeoM.Translate(sprite.X, sprite.Y)
	screen.DrawImage(img, drawOp)
}
