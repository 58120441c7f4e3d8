package core

import (
	"image"
	"image/color"
	"reflect"
	"testing"

	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/leveldata"
	"github.com/automoto/pixel-platformer/shared/tileset"
)

func singleCell(id int) leveldata.Grid {
	return place(leveldata.NewGrid(cfg.World.Rows, cfg.World.Cols), [3]int{2, 3, id})
}

func TestTileGridSolidIDsCollide(t *testing.T) {
	catalog := fullCatalog(320)
	for _, id := range cfg.Tiles.SolidIDs() {
		g := NewTileGrid(singleCell(id), catalog, cfg.Tiles, cfg.World)
		tile, ok := g.TileAt(2, 3)
		if !ok {
			t.Fatalf("id %d: no tile at (2, 3)", id)
		}
		if tile.Class != TileSolid || tile.Collision.Empty() {
			t.Errorf("id %d: class %v, collision %+v; want solid with area", id, tile.Class, tile.Collision)
		}
	}
}

func TestTileGridDecorativeIDsDoNotCollide(t *testing.T) {
	catalog := fullCatalog(320)
	for id := 1; id <= 320; id++ {
		if Classify(id, cfg.Tiles) != TileDecorative {
			continue
		}
		g := NewTileGrid(singleCell(id), catalog, cfg.Tiles, cfg.World)
		tile, ok := g.TileAt(2, 3)
		if !ok {
			t.Fatalf("id %d: no tile at (2, 3)", id)
		}
		if !tile.Collision.Empty() {
			t.Errorf("id %d: collision %+v, want zero area", id, tile.Collision)
		}
		if g.SolidCount() != 0 {
			t.Errorf("id %d: SolidCount = %d, want 0", id, g.SolidCount())
		}
	}
}

func TestTileGridSkipsSpecials(t *testing.T) {
	g := NewTileGrid(singleCell(idCoin), fullCatalog(320), cfg.Tiles, cfg.World)
	if len(g.Tiles) != 0 {
		t.Errorf("Tiles = %v, want none", g.Tiles)
	}
}

func TestTileGridDisplayRect(t *testing.T) {
	g := NewTileGrid(singleCell(idDecor), fullCatalog(320), cfg.Tiles, cfg.World)
	tile, _ := g.TileAt(2, 3)
	want := Rect{X: 128, Y: 192, W: 64, H: 64}
	if tile.Display != want {
		t.Errorf("Display = %+v, want %+v", tile.Display, want)
	}
}

func TestTileGridVisibleBounds(t *testing.T) {
	catalog := fullCatalog(320)
	catalog.visible = map[int]image.Rectangle{
		idGround: image.Rect(0, 32, 64, 64), // lower half only
	}
	g := NewTileGrid(singleCell(idGround), catalog, cfg.Tiles, cfg.World)
	tile, _ := g.TileAt(2, 3)
	want := Rect{X: 128, Y: 224, W: 64, H: 32}
	if tile.Collision != want {
		t.Errorf("Collision = %+v, want %+v", tile.Collision, want)
	}
}

func TestTileGridScalesSmallImages(t *testing.T) {
	// An 18x18 image with its top 9 rows transparent, as shipped in the pack.
	img := image.NewNRGBA(image.Rect(0, 0, 18, 18))
	for y := 9; y < 18; y++ {
		for x := 0; x < 18; x++ {
			img.Set(x, y, color.NRGBA{A: 255})
		}
	}
	catalog := tileset.New([]string{"ground.png"}, []image.Image{img})

	g := NewTileGrid(singleCell(1), catalog, cfg.Tiles, cfg.World)
	tile, _ := g.TileAt(2, 3)
	want := Rect{X: 128, Y: 192 + 32, W: 64, H: 32}
	if tile.Collision != want {
		t.Errorf("Collision = %+v, want %+v", tile.Collision, want)
	}
}

func TestTileGridFallsBackToFullCell(t *testing.T) {
	tests := []struct {
		name    string
		catalog *stubCatalog
	}{
		{"missing image", &stubCatalog{n: 320, missing: map[int]bool{idGround: true}}},
		{"transparent image", &stubCatalog{n: 320, visible: map[int]image.Rectangle{idGround: {}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTileGrid(singleCell(idGround), tt.catalog, cfg.Tiles, cfg.World)
			tile, _ := g.TileAt(2, 3)
			if tile.Collision != tile.Display {
				t.Errorf("Collision = %+v, want the cell %+v", tile.Collision, tile.Display)
			}
		})
	}
}

func TestTileGridOutOfRangeID(t *testing.T) {
	level := place(leveldata.NewGrid(cfg.World.Rows, cfg.World.Cols),
		[3]int{4, 5, 999},
		[3]int{0, 0, idGround},
	)
	g := NewTileGrid(level, fullCatalog(320), cfg.Tiles, cfg.World)

	want := []Diagnostic{{ID: 999, Col: 4, Row: 5, Reason: "id outside catalog"}}
	if !reflect.DeepEqual(g.Diagnostics, want) {
		t.Errorf("Diagnostics = %+v, want %+v", g.Diagnostics, want)
	}
	if _, ok := g.TileAt(4, 5); ok {
		t.Error("out-of-range tile was kept")
	}
	if g.SolidCount() != 1 {
		t.Errorf("SolidCount = %d, want 1", g.SolidCount())
	}
}

func TestTileGridRegistersSolidsInSpace(t *testing.T) {
	g := NewTileGrid(levelWithFloor(), fullCatalog(320), cfg.Tiles, cfg.World)
	objs := g.Space().Objects()
	if len(objs) != cfg.World.Cols {
		t.Fatalf("space holds %d objects, want %d", len(objs), cfg.World.Cols)
	}
	for _, obj := range objs {
		tile, ok := obj.Data.(*Tile)
		if !ok || tile.Class != TileSolid {
			t.Errorf("object data %T is not a solid tile", obj.Data)
		}
	}
}

func TestTileGridDeterministic(t *testing.T) {
	level := levelWithFloor([3]int{3, 11, idCoin}, [3]int{5, 4, 174}, [3]int{6, 4, idDecor})
	catalog := fullCatalog(320)
	catalog.visible = map[int]image.Rectangle{174: image.Rect(3, 7, 50, 61)}

	a := NewTileGrid(level, catalog, cfg.Tiles, cfg.World)
	b := NewTileGrid(level, catalog, cfg.Tiles, cfg.World)
	if !reflect.DeepEqual(a.Tiles, b.Tiles) {
		t.Errorf("tile grids differ:\n%+v\n%+v", a.Tiles, b.Tiles)
	}

	sa := NewSpecialTileRegistry(a.Space(), level, catalog, cfg.Tiles, cfg.World, cfg.Player)
	sb := NewSpecialTileRegistry(b.Space(), level, catalog, cfg.Tiles, cfg.World, cfg.Player)
	for i, s := range sa.Live() {
		if other := sb.Live()[i]; s.Collision != other.Collision || s.Kind != other.Kind {
			t.Errorf("special %d differs: %+v vs %+v", i, s, other)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		id   int
		want TileClass
	}{
		{0, TileEmpty},
		{idGround, TileSolid},
		{idDecor, TileDecorative},
		{idTrampoline, TileSpecial},
		{idSpike, TileSpecial},
		{idCoin, TileSpecial},
		{idFlag, TileSpecial},
	}
	for _, tt := range tests {
		if got := Classify(tt.id, cfg.Tiles); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
