package tileset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

// solidImage returns a w x h image with an opaque block covering visible.
func solidImage(w, h int, visible image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		for x := visible.Min.X; x < visible.Max.X; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestVisibleBounds(t *testing.T) {
	tests := []struct {
		name    string
		visible image.Rectangle
		want    image.Rectangle
	}{
		{"full", image.Rect(0, 0, 18, 18), image.Rect(0, 0, 18, 18)},
		{"bottom half", image.Rect(0, 9, 18, 18), image.Rect(0, 9, 18, 18)},
		{"single pixel", image.Rect(4, 7, 5, 8), image.Rect(4, 7, 5, 8)},
		{"transparent", image.Rectangle{}, image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleBounds(solidImage(18, 18, tt.visible))
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestVisibleBoundsIgnoresImageOrigin(t *testing.T) {
	img := solidImage(20, 20, image.Rect(5, 5, 10, 10))
	sub := img.SubImage(image.Rect(5, 5, 20, 20))

	if got, want := VisibleBounds(sub), image.Rect(0, 0, 5, 5); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLoadSortsAndNumbersTiles(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles/tile_0002.png": {Data: encodePNG(t, solidImage(18, 18, image.Rect(0, 9, 18, 18)))},
		"tiles/tile_0001.png": {Data: encodePNG(t, solidImage(18, 18, image.Rect(0, 0, 18, 18)))},
		"tiles/readme.txt":    {Data: []byte("not a tile")},
	}

	c, err := Load(fsys, "tiles")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 tiles, got %d", c.Len())
	}

	first, ok := c.Tile(1)
	if !ok || first.Name != "tile_0001.png" {
		t.Fatalf("expected tile 1 to be tile_0001.png, got %+v", first)
	}

	w, h, vis, ok := c.Bounds(2)
	if !ok {
		t.Fatal("expected bounds for tile 2")
	}
	if w != 18 || h != 18 || vis != image.Rect(0, 9, 18, 18) {
		t.Errorf("unexpected bounds for tile 2: %dx%d %v", w, h, vis)
	}

	if _, ok := c.Tile(0); ok {
		t.Error("id 0 must not resolve")
	}
	if _, ok := c.Tile(3); ok {
		t.Error("id past the catalog must not resolve")
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles/notes.txt": {Data: []byte("empty")},
	}

	_, err := Load(fsys, "tiles")
	if !errors.Is(err, ErrNoTiles) {
		t.Fatalf("expected ErrNoTiles, got %v", err)
	}
}

func TestLoadRejectsCorruptImage(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles/tile_0001.png": {Data: []byte("definitely not a png")},
	}

	if _, err := Load(fsys, "tiles"); err == nil {
		t.Fatal("expected decode error")
	}
}
