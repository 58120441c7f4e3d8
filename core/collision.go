package core

import (
	"sort"

	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/gamemath"
)

// Contacts summarises what the actor touched during one step.
type Contacts struct {
	Wall       bool // horizontal movement was blocked
	Ground     bool
	Head       bool
	Trampoline bool
	Spikes     bool
	Coins      int
	Flag       bool
	FellOut    bool
}

// StepResult is everything one simulation step reports to its caller.
type StepResult struct {
	Contacts Contacts
	Sounds   []cfg.SoundID

	// AdvanceLevel asks the LevelController to move to the next level.
	AdvanceLevel bool
	// LevelChanged is set by the controller once a new level is live.
	LevelChanged bool
}

func (r *StepResult) play(id cfg.SoundID) {
	r.Sounds = append(r.Sounds, id)
}

// CollisionResolver clips a tentative displacement against a level and
// applies special-tile effects.
type CollisionResolver struct {
	World  cfg.WorldConfig
	Player cfg.PlayerConfig
}

// Resolve moves a by at most (dx, dy). Solid tiles are found through the
// actor's sensor in the shared level space. The order is fixed: horizontal
// clip, vertical clip, move, special tiles, screen edge clamp, fall-through
// reset.
func (cr CollisionResolver) Resolve(a *Actor, dx, dy float64, specials *SpecialTileRegistry) StepResult {
	var res StepResult
	solids := cr.nearbySolids(a)

	x := a.X + dx
	for _, t := range solids {
		if t.Collision.Overlaps(a.collisionAt(x, a.Y)) {
			x = a.X
			res.Contacts.Wall = true
		}
	}

	// Each clamp places the box flush against the tile, and later tiles are
	// tested against the clamped position.
	y := a.Y + dy
	a.Airborne = true
	for _, t := range solids {
		if !t.Collision.Overlaps(a.collisionAt(a.X, y)) {
			continue
		}
		if a.VelY < 0 {
			y = t.Collision.Bottom() - cr.Player.CollisionOffsetY
			a.VelY = 0
			res.Contacts.Head = true
		} else {
			y = t.Collision.Top() - cr.Player.CollisionOffsetY - cr.Player.CollisionHeight
			a.Airborne = false
			res.Contacts.Ground = true
		}
	}

	a.MoveTo(x, y)

	cr.dispatchSpecials(a, specials, &res)
	cr.clampToScreen(a)

	if a.Sprite().Top() > cr.World.ScreenHeight {
		a.Respawn(cr.World.StartX, cr.World.StartY)
		res.Contacts.FellOut = true
	}

	return res
}

// nearbySolids returns the solid tiles within one step of the actor, in
// row-major order. The sensor is padded by the maximum per-tick travel, so
// every tile either sweep can reach is included.
func (cr CollisionResolver) nearbySolids(a *Actor) []*Tile {
	check := a.Sensor().Check(0, 0, TagSolid)
	if check == nil {
		return nil
	}

	objs := check.ObjectsByTags(TagSolid)
	tiles := make([]*Tile, 0, len(objs))
	for _, obj := range objs {
		if t, ok := obj.Data.(*Tile); ok {
			tiles = append(tiles, t)
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].order < tiles[j].order
	})
	return tiles
}

func (cr CollisionResolver) dispatchSpecials(a *Actor, specials *SpecialTileRegistry, res *StepResult) {
	for _, s := range specials.Live() {
		box := a.Collision()
		if !s.Collision.Overlaps(box) {
			continue
		}

		switch s.Kind {
		case cfg.SpecialTrampoline:
			if a.VelY >= 0 && box.Bottom() <= s.Collision.Top()+s.Tolerance {
				a.VelY = -s.BounceSpeed
				a.Airborne = true
				res.Contacts.Trampoline = true
				res.play(cfg.SoundTrampoline)
			}
		case cfg.SpecialSpikes:
			a.Respawn(cr.World.StartX, cr.World.StartY)
			res.Contacts.Spikes = true
			res.play(cfg.SoundSpikes)
		case cfg.SpecialCoin:
			if specials.Remove(s) {
				a.Coins++
				res.Contacts.Coins++
				res.play(cfg.SoundCoin)
			}
		case cfg.SpecialFlag:
			a.MoveTo(cr.World.StartX, cr.World.StartY)
			res.Contacts.Flag = true
			res.AdvanceLevel = true
		}
	}
}

// clampToScreen keeps the sprite between the left and right edges of the
// play field. There is no top clamp, and falling out of the bottom is
// handled as a respawn.
func (cr CollisionResolver) clampToScreen(a *Actor) {
	x := gamemath.ClampFloat(a.X, 0, cr.World.ScreenWidth-a.Sprite().W)
	if x != a.X {
		a.MoveTo(x, a.Y)
	}
}
