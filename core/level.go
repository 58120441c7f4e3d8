package core

import (
	"errors"
	"fmt"
	"log"

	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/leveldata"
)

// ErrNoLevels is returned when a controller is created with an empty level
// list.
var ErrNoLevels = errors.New("no levels")

// Session is the live state of the level being played.
type Session struct {
	LevelIndex int
	Actor      *Actor
	Grid       *TileGrid
	Specials   *SpecialTileRegistry
}

// LevelController owns the level sequence and runs one simulation step at a
// time.
type LevelController struct {
	levels  []leveldata.Grid
	catalog Catalog
	rules   *cfg.TileRules
	world   cfg.WorldConfig
	player  cfg.PlayerConfig

	motion   MotionIntegrator
	resolver CollisionResolver
}

// NewLevelController validates every level against the world's grid size.
func NewLevelController(levels []leveldata.Grid, catalog Catalog, rules *cfg.TileRules, world cfg.WorldConfig, player cfg.PlayerConfig) (*LevelController, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, g := range levels {
		// Ids past the catalog are tolerated here and reported per tile.
		if err := g.Validate(world.Rows, world.Cols, 0); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}

	return &LevelController{
		levels:   levels,
		catalog:  catalog,
		rules:    rules,
		world:    world,
		player:   player,
		motion:   MotionIntegrator{Player: player},
		resolver: CollisionResolver{World: world, Player: player},
	}, nil
}

// LevelCount returns the number of levels.
func (lc *LevelController) LevelCount() int {
	return len(lc.levels)
}

// Start builds level index with a fresh actor at the start position.
func (lc *LevelController) Start(index int) (*Session, error) {
	if index < 0 || index >= len(lc.levels) {
		return nil, fmt.Errorf("level %d out of range [0, %d)", index, len(lc.levels))
	}
	return lc.build(index, NewActor(lc.world.StartX, lc.world.StartY, lc.player)), nil
}

// Step runs one tick: motion, collision, specials and any level change the
// flag asked for. The returned session replaces s; it is s itself unless the
// level changed.
func (lc *LevelController) Step(s *Session, in Input) (*Session, StepResult) {
	dx, dy, jumped := lc.motion.Step(s.Actor, in)
	res := lc.resolver.Resolve(s.Actor, dx, dy, s.Specials)
	if jumped {
		res.Sounds = append([]cfg.SoundID{cfg.SoundJump}, res.Sounds...)
	}

	if res.AdvanceLevel {
		if next, ok := lc.Advance(s, s.LevelIndex+1); ok {
			s = next
			res.LevelChanged = true
			res.Sounds = append(res.Sounds, cfg.SoundLevelComplete)
		}
	}
	return s, res
}

// Advance discards the level pair held by s and returns a new session on
// level target, carrying the actor over to the start position. An
// out-of-range target is ignored: s is returned unchanged with ok false.
func (lc *LevelController) Advance(s *Session, target int) (next *Session, ok bool) {
	if target < 0 || target >= len(lc.levels) {
		return s, false
	}

	s.Specials.Clear()
	next = lc.build(target, s.Actor)
	next.Actor.MoveTo(lc.world.StartX, lc.world.StartY)
	log.Printf("Entered level %d of %d", target+1, len(lc.levels))
	return next, true
}

// Restart rebuilds the current level, restoring its coins, and respawns the
// actor at the start. Coins already counted stay counted.
func (lc *LevelController) Restart(s *Session) *Session {
	s.Specials.Clear()
	next := lc.build(s.LevelIndex, s.Actor)
	next.Actor.Respawn(lc.world.StartX, lc.world.StartY)
	return next
}

func (lc *LevelController) build(index int, actor *Actor) *Session {
	level := lc.levels[index]
	grid := NewTileGrid(level, lc.catalog, lc.rules, lc.world)
	s := &Session{
		LevelIndex: index,
		Actor:      actor,
		Grid:       grid,
		Specials:   NewSpecialTileRegistry(grid.Space(), level, lc.catalog, lc.rules, lc.world, lc.player),
	}
	actor.attach(grid.Space())
	return s
}
