package assets

import (
	"fmt"
	"image"
	"io/fs"
	"log"

	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/tileset"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/draw"
)

// Art holds the ebiten images drawn by the game and the editor.
type Art struct {
	Tiles       []*ebiten.Image // index id-1, pre-scaled to the tile size
	PlayerRight []*ebiten.Image // cropped to the visible pixels
	PlayerLeft  []*ebiten.Image
	Background  *ebiten.Image // nil when the file is missing
}

// LoadCatalog reads the tile directory of an assets tree.
func LoadCatalog(fsys fs.FS) (*tileset.Catalog, error) {
	catalog, err := tileset.Load(fsys, cfg.Assets.TilesDir)
	if err != nil {
		return nil, fmt.Errorf("load tiles: %w", err)
	}
	return catalog, nil
}

// LoadArt converts the catalog to ebiten images scaled to size pixels and
// loads the player frames and background. Missing player or background files
// are logged and leave the corresponding fields empty.
func LoadArt(fsys fs.FS, catalog *tileset.Catalog, size int) *Art {
	art := &Art{
		Tiles: Thumbnails(catalog, size, draw.NearestNeighbor),
	}

	for n := 1; n <= cfg.Assets.PlayerCount; n++ {
		path := fmt.Sprintf(cfg.Assets.PlayerFrames, n)
		right, err := loadCropped(fsys, path)
		if err != nil {
			log.Printf("Warning: player frame %s: %v", path, err)
			art.PlayerRight, art.PlayerLeft = nil, nil
			break
		}
		art.PlayerRight = append(art.PlayerRight, right)
		art.PlayerLeft = append(art.PlayerLeft, flipped(right))
	}

	bg, _, err := ebitenutil.NewImageFromFileSystem(fsys, cfg.Assets.Background)
	if err != nil {
		log.Printf("Warning: background %s: %v", cfg.Assets.Background, err)
	} else {
		art.Background = bg
	}

	return art
}

// Tile returns the image for tile id, or nil if id is outside the catalog.
func (a *Art) Tile(id int) *ebiten.Image {
	if id < 1 || id > len(a.Tiles) {
		return nil
	}
	return a.Tiles[id-1]
}

// PlayerFrame returns the walk frame for facing (negative = left). It
// returns nil when no player frames were loaded.
func (a *Art) PlayerFrame(frame, facing int) *ebiten.Image {
	frames := a.PlayerRight
	if facing < 0 {
		frames = a.PlayerLeft
	}
	if len(frames) == 0 {
		return nil
	}
	return frames[frame%len(frames)]
}

// Thumbnails scales every catalog image to a size x size ebiten image.
func Thumbnails(catalog *tileset.Catalog, size int, scaler draw.Scaler) []*ebiten.Image {
	out := make([]*ebiten.Image, 0, catalog.Len())
	for _, t := range catalog.Tiles() {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		if t.Image != nil {
			scaler.Scale(dst, dst.Bounds(), t.Image, t.Image.Bounds(), draw.Over, nil)
		}
		out = append(out, ebiten.NewImageFromImage(dst))
	}
	return out
}

func loadCropped(fsys fs.FS, path string) (*ebiten.Image, error) {
	img, src, err := ebitenutil.NewImageFromFileSystem(fsys, path)
	if err != nil {
		return nil, err
	}
	visible := tileset.VisibleBounds(src)
	if visible.Empty() {
		return img, nil
	}
	return img.SubImage(visible.Add(src.Bounds().Min)).(*ebiten.Image), nil
}

func flipped(img *ebiten.Image) *ebiten.Image {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	out := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(-1, 1)
	op.GeoM.Translate(float64(w), 0)
	out.DrawImage(img, op)
	return out
}
