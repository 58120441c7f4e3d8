package core

import (
	"errors"
	"testing"

	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/leveldata"
)

func TestNewLevelControllerErrors(t *testing.T) {
	if _, err := NewLevelController(nil, fullCatalog(320), cfg.Tiles, cfg.World, cfg.Player); !errors.Is(err, ErrNoLevels) {
		t.Errorf("no levels: err = %v, want ErrNoLevels", err)
	}

	short := leveldata.NewGrid(cfg.World.Rows-1, cfg.World.Cols)
	_, err := NewLevelController([]leveldata.Grid{levelWithFloor(), short}, fullCatalog(320), cfg.Tiles, cfg.World, cfg.Player)
	if !errors.Is(err, leveldata.ErrBadGridSize) {
		t.Errorf("short level: err = %v, want ErrBadGridSize", err)
	}
}

func TestStart(t *testing.T) {
	lc := newController(t, levelWithFloor([3]int{5, 11, idCoin}))
	if lc.LevelCount() != 1 {
		t.Errorf("LevelCount = %d, want 1", lc.LevelCount())
	}

	s := startSession(t, lc)
	if s.Actor.X != cfg.World.StartX || s.Actor.Y != cfg.World.StartY || !s.Actor.Airborne {
		t.Errorf("actor %+v, want airborne at the start position", s.Actor)
	}
	if s.Specials.Count(cfg.SpecialCoin) != 1 {
		t.Errorf("coins = %d, want 1", s.Specials.Count(cfg.SpecialCoin))
	}
	if s.Actor.Sensor().Space != s.Grid.Space() {
		t.Error("actor sensor is not in the level space")
	}

	if _, err := lc.Start(1); err == nil {
		t.Error("Start(1) on a single level succeeded")
	}
}

func TestFlagAdvancesLevel(t *testing.T) {
	first := levelWithFloor([3]int{3, 11, idFlag}, [3]int{10, 11, idCoin})
	second := levelWithFloor([3]int{8, 11, idCoin}, [3]int{9, 11, idCoin})
	lc := newController(t, first, second)
	s := startSession(t, lc)
	old := s.Specials
	standAt(s, 180)

	next, res := lc.Step(s, Input{})
	if !res.LevelChanged || next.LevelIndex != 1 {
		t.Fatalf("changed = %v, index = %d; want level 1", res.LevelChanged, next.LevelIndex)
	}
	if next == s {
		t.Error("session not replaced")
	}
	if old.Len() != 0 {
		t.Errorf("old registry holds %d objects, want 0", old.Len())
	}
	if next.Specials.Count(cfg.SpecialCoin) != 2 {
		t.Errorf("new level coins = %d, want 2", next.Specials.Count(cfg.SpecialCoin))
	}
	if next.Actor != s.Actor {
		t.Error("actor not carried over")
	}
	if next.Actor.X != cfg.World.StartX || next.Actor.Y != cfg.World.StartY {
		t.Errorf("actor at (%v, %v), want the start position", next.Actor.X, next.Actor.Y)
	}
	if next.Actor.Sensor().Space != next.Grid.Space() {
		t.Error("actor sensor left in the old space")
	}
	if countSound(res.Sounds, cfg.SoundLevelComplete) != 1 {
		t.Errorf("sounds = %v, want one level complete", res.Sounds)
	}

	// Only the new level's tiles are seen from here on.
	standAt(next, 180)
	next, res = lc.Step(next, Input{})
	if res.AdvanceLevel || next.LevelIndex != 1 {
		t.Error("old flag still live")
	}
}

func TestAdvanceOutOfRange(t *testing.T) {
	lc := newController(t, levelWithFloor(), levelWithFloor())
	s := startSession(t, lc)

	for _, target := range []int{-1, 2, 10} {
		next, ok := lc.Advance(s, target)
		if ok || next != s || s.LevelIndex != 0 {
			t.Errorf("Advance(%d) = %v; want a no-op", target, ok)
		}
	}

	next, ok := lc.Advance(s, 1)
	if !ok || next.LevelIndex != 1 {
		t.Errorf("Advance(1) = %v, index %d", ok, next.LevelIndex)
	}
}

func TestRestartRestoresCoins(t *testing.T) {
	lc := newController(t, levelWithFloor([3]int{3, 11, idCoin}))
	s := startSession(t, lc)
	standAt(s, 180)
	s, _ = lc.Step(s, Input{})
	if s.Specials.Len() != 0 {
		t.Fatal("coin not collected")
	}

	old := s
	s = lc.Restart(s)
	if s.Specials.Count(cfg.SpecialCoin) != 1 {
		t.Errorf("coins after restart = %d, want 1", s.Specials.Count(cfg.SpecialCoin))
	}
	if s.Actor.Coins != 1 {
		t.Errorf("collected count = %d, want 1", s.Actor.Coins)
	}
	if s.Actor.X != cfg.World.StartX || s.Actor.Y != cfg.World.StartY || s.Actor.VelY != 0 {
		t.Errorf("actor at (%v, %v) vel %v after restart", s.Actor.X, s.Actor.Y, s.Actor.VelY)
	}
	if old.Specials.Len() != 0 {
		t.Error("old registry not cleared")
	}
}

func TestOutOfRangeSpecialSkipped(t *testing.T) {
	level := levelWithFloor([3]int{3, 11, idTrampoline})
	lc, err := NewLevelController([]leveldata.Grid{level}, fullCatalog(100), cfg.Tiles, cfg.World, cfg.Player)
	if err != nil {
		t.Fatal(err)
	}
	s := startSession(t, lc)
	if s.Specials.Len() != 0 {
		t.Errorf("registry holds %d objects, want 0", s.Specials.Len())
	}
	if len(s.Grid.Diagnostics) != 1 || s.Grid.Diagnostics[0].ID != idTrampoline {
		t.Errorf("Diagnostics = %+v", s.Grid.Diagnostics)
	}
}

func TestSpecialsInRowMajorOrder(t *testing.T) {
	level := levelWithFloor([3]int{9, 2, idCoin}, [3]int{1, 2, idFlag}, [3]int{0, 5, idSpike})
	g := NewTileGrid(level, fullCatalog(320), cfg.Tiles, cfg.World)
	r := NewSpecialTileRegistry(g.Space(), level, fullCatalog(320), cfg.Tiles, cfg.World, cfg.Player)

	var kinds []cfg.SpecialKind
	for _, s := range r.Live() {
		kinds = append(kinds, s.Kind)
	}
	want := []cfg.SpecialKind{cfg.SpecialFlag, cfg.SpecialCoin, cfg.SpecialSpikes}
	for i := range want {
		if i >= len(kinds) || kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len after Clear = %d", r.Len())
	}
	for _, obj := range g.Space().Objects() {
		if obj.HasTags(TagSpecial) {
			t.Error("special object left in the space after Clear")
		}
	}
}
