package core

import (
	"image"
	"testing"

	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/leveldata"
)

// stubCatalog reports n 64x64 images that are opaque edge to edge, except
// for ids listed in visible or missing.
type stubCatalog struct {
	n       int
	visible map[int]image.Rectangle
	missing map[int]bool
}

func fullCatalog(n int) *stubCatalog {
	return &stubCatalog{n: n}
}

func (c *stubCatalog) Len() int { return c.n }

func (c *stubCatalog) Bounds(id int) (int, int, image.Rectangle, bool) {
	if id < 1 || id > c.n || c.missing[id] {
		return 0, 0, image.Rectangle{}, false
	}
	if r, ok := c.visible[id]; ok {
		return 64, 64, r, true
	}
	return 64, 64, image.Rect(0, 0, 64, 64), true
}

const (
	floorRow = 12
	floorY   = 768 // top of floorRow
	// restY puts the bottom of the collision box on floorY.
	restY = floorY - 90
	// Ids from the default rule set.
	idGround     = 1
	idDecor      = 100
	idTrampoline = 128
	idSpike      = 12
	idCoin       = 58
	idFlag       = 49
)

// levelWithFloor returns an empty 15x15 grid with a solid floor on floorRow,
// then applies the given cell overrides.
func levelWithFloor(cells ...[3]int) leveldata.Grid {
	g := leveldata.NewGrid(cfg.World.Rows, cfg.World.Cols)
	for col := range g[floorRow] {
		g[floorRow][col] = idGround
	}
	return place(g, cells...)
}

// place sets each {col, row, id} cell in g.
func place(g leveldata.Grid, cells ...[3]int) leveldata.Grid {
	for _, c := range cells {
		g[c[1]][c[0]] = c[2]
	}
	return g
}

func newController(t *testing.T, levels ...leveldata.Grid) *LevelController {
	t.Helper()
	lc, err := NewLevelController(levels, fullCatalog(320), cfg.Tiles, cfg.World, cfg.Player)
	if err != nil {
		t.Fatalf("NewLevelController: %v", err)
	}
	return lc
}

func startSession(t *testing.T, lc *LevelController) *Session {
	t.Helper()
	s, err := lc.Start(0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

// standAt places the actor on the floor at sprite x.
func standAt(s *Session, x float64) {
	s.Actor.MoveTo(x, restY)
	s.Actor.VelY = 0
	s.Actor.Airborne = false
}

func countSound(sounds []cfg.SoundID, id cfg.SoundID) int {
	n := 0
	for _, s := range sounds {
		if s == id {
			n++
		}
	}
	return n
}
