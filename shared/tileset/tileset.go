// Package tileset loads the tile image catalog shared by the game and the
// level editor. It has no dependency on ebitengine; callers convert the
// decoded images for drawing.
package tileset

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ErrNoTiles is returned when a tile directory holds no PNG files.
var ErrNoTiles = errors.New("no tile images found")

// Tile describes one catalog entry. IDs are 1-based positions in the sorted
// directory listing.
type Tile struct {
	ID      int
	Name    string
	Width   int
	Height  int
	Visible image.Rectangle // relative to the image origin; empty if fully transparent
	Image   image.Image
}

// Catalog is an ordered list of tiles indexed by tile id.
type Catalog struct {
	tiles []Tile
}

// New builds a catalog from already-decoded images, in id order.
func New(names []string, images []image.Image) *Catalog {
	c := &Catalog{tiles: make([]Tile, len(images))}
	for i, img := range images {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		c.tiles[i] = newTile(i+1, name, img)
	}
	return c
}

func newTile(id int, name string, img image.Image) Tile {
	b := img.Bounds()
	return Tile{
		ID:      id,
		Name:    name,
		Width:   b.Dx(),
		Height:  b.Dy(),
		Visible: VisibleBounds(img),
		Image:   img,
	}
}

// Load reads every .png file in dir (sorted by name) from fsys.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read tile directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoTiles)
	}
	sort.Strings(names)

	c := &Catalog{tiles: make([]Tile, 0, len(names))}
	for i, name := range names {
		img, err := decode(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		c.tiles = append(c.tiles, newTile(i+1, name, img))
	}
	return c, nil
}

func decode(fsys fs.FS, p string) (image.Image, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open tile %s: %w", p, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode tile %s: %w", p, err)
	}
	return img, nil
}

// Len returns the number of tiles; valid ids are 1..Len().
func (c *Catalog) Len() int {
	return len(c.tiles)
}

// Tile returns the tile for id.
func (c *Catalog) Tile(id int) (Tile, bool) {
	if id < 1 || id > len(c.tiles) {
		return Tile{}, false
	}
	return c.tiles[id-1], true
}

// Bounds returns the pixel size and visible box of tile id.
func (c *Catalog) Bounds(id int) (w, h int, visible image.Rectangle, ok bool) {
	t, ok := c.Tile(id)
	if !ok || t.Image == nil {
		return 0, 0, image.Rectangle{}, false
	}
	return t.Width, t.Height, t.Visible, true
}

// Tiles returns the catalog entries in id order.
func (c *Catalog) Tiles() []Tile {
	return c.tiles
}

// VisibleBounds returns the smallest rectangle, relative to the image origin,
// that contains every pixel with non-zero alpha.
func VisibleBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX-b.Min.X, minY-b.Min.Y, maxX-b.Min.X+1, maxY-b.Min.Y+1)
}
