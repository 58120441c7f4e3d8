package core

import (
	"image"
	"log"
	"math"

	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Resolv tags for objects in a level space
const (
	TagSolid   = "solid"
	TagSpecial = "special"
	TagPlayer  = "player"
)

// Catalog is the part of the tile catalog the core depends on: for image N,
// its pixel size and visible bounding box.
type Catalog interface {
	Len() int
	Bounds(id int) (w, h int, visible image.Rectangle, ok bool)
}

// TileClass classifies a tile id.
type TileClass int

const (
	TileEmpty TileClass = iota
	TileDecorative
	TileSolid
	TileSpecial
)

func (c TileClass) String() string {
	switch c {
	case TileEmpty:
		return "empty"
	case TileDecorative:
		return "decorative"
	case TileSolid:
		return "solid"
	case TileSpecial:
		return "special"
	}
	return "unknown"
}

// Classify returns the class of id under rules.
func Classify(id int, rules *cfg.TileRules) TileClass {
	switch {
	case id <= 0:
		return TileEmpty
	case hasSpecial(rules, id):
		return TileSpecial
	case rules.IsSolid(id):
		return TileSolid
	default:
		return TileDecorative
	}
}

func hasSpecial(rules *cfg.TileRules, id int) bool {
	_, ok := rules.Special(id)
	return ok
}

// Tile is one non-special grid cell. Decorative tiles carry a zero collision
// rectangle.
type Tile struct {
	ID        int
	Col, Row  int
	Class     TileClass
	Display   Rect
	Collision Rect

	order int
}

// Diagnostic records a grid cell that could not be built.
type Diagnostic struct {
	ID       int
	Col, Row int
	Reason   string
}

// TileGrid is the static tile layout of one level.
type TileGrid struct {
	Tiles       []Tile // row-major
	Diagnostics []Diagnostic

	space *resolv.Space
	cols  int
}

// NewTileGrid parses level into tiles and registers every solid tile in a
// fresh resolv space. Ids past the end of the catalog are skipped with a
// diagnostic; special ids are left to the SpecialTileRegistry.
func NewTileGrid(level leveldata.Grid, catalog Catalog, rules *cfg.TileRules, world cfg.WorldConfig) *TileGrid {
	g := &TileGrid{
		space: resolv.NewSpace(int(world.ScreenWidth), int(world.ScreenHeight), world.CellSize, world.CellSize),
		cols:  level.Cols(),
	}

	for row, ids := range level {
		for col, id := range ids {
			if id <= 0 {
				continue
			}
			if id > catalog.Len() {
				g.Diagnostics = append(g.Diagnostics, Diagnostic{
					ID:     id,
					Col:    col,
					Row:    row,
					Reason: "id outside catalog",
				})
				log.Printf("Warning: tile id %d at row %d, col %d is outside the catalog (%d tiles), skipped",
					id, row, col, catalog.Len())
				continue
			}

			class := Classify(id, rules)
			if class == TileSpecial {
				continue
			}

			display := cellRect(col, row, world.TileSize)
			tile := Tile{
				ID:      id,
				Col:     col,
				Row:     row,
				Class:   class,
				Display: display,
				order:   row*g.cols + col,
			}
			if class == TileSolid {
				tile.Collision = collisionRect(catalog, id, display, world.TileSize)
			}
			g.Tiles = append(g.Tiles, tile)
		}
	}

	// Tiles is complete, so pointers into it are stable from here on.
	for i := range g.Tiles {
		t := &g.Tiles[i]
		if t.Class != TileSolid {
			continue
		}
		c := t.Collision
		obj := resolv.NewObject(c.X, c.Y, c.W, c.H, TagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, c.W, c.H))
		obj.Data = t
		g.space.Add(obj)
	}

	return g
}

// Space returns the level's collision space. The SpecialTileRegistry and the
// actor sensor share it.
func (g *TileGrid) Space() *resolv.Space {
	return g.space
}

// SolidCount returns the number of tiles that block movement.
func (g *TileGrid) SolidCount() int {
	n := 0
	for _, t := range g.Tiles {
		if t.Class == TileSolid {
			n++
		}
	}
	return n
}

// TileAt returns the non-special tile at (col, row), if any.
func (g *TileGrid) TileAt(col, row int) (Tile, bool) {
	for _, t := range g.Tiles {
		if t.Col == col && t.Row == row {
			return t, true
		}
	}
	return Tile{}, false
}

func cellRect(col, row int, tileSize float64) Rect {
	return Rect{
		X: float64(col) * tileSize,
		Y: float64(row) * tileSize,
		W: tileSize,
		H: tileSize,
	}
}

// collisionRect scales the visible box of image id to the tile size and
// places it in the cell, snapped to whole pixels. Images with no metadata or
// no visible pixels collide with the whole cell.
func collisionRect(catalog Catalog, id int, cell Rect, tileSize float64) Rect {
	w, h, visible, ok := catalog.Bounds(id)
	if !ok || w <= 0 || h <= 0 || visible.Empty() {
		return cell
	}

	scaleX := tileSize / float64(w)
	scaleY := tileSize / float64(h)
	x0 := math.Round(float64(visible.Min.X) * scaleX)
	y0 := math.Round(float64(visible.Min.Y) * scaleY)
	x1 := math.Round(float64(visible.Max.X) * scaleX)
	y1 := math.Round(float64(visible.Max.Y) * scaleY)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: cell.X + x0, Y: cell.Y + y0, W: x1 - x0, H: y1 - y0}
}
