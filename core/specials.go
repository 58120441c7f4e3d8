package core

import (
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/leveldata"
	"github.com/solarlune/resolv"
)

// SpecialTile is a non-blocking object with kind-specific behaviour. One
// struct covers every kind; the resolver switches on Kind.
type SpecialTile struct {
	ID        int
	Kind      cfg.SpecialKind
	Col, Row  int
	Display   Rect
	Collision Rect

	// Trampoline parameters
	BounceSpeed float64
	Tolerance   float64

	order int
	obj   *resolv.Object
}

// SpecialTileRegistry holds the live special objects of one level.
type SpecialTileRegistry struct {
	space *resolv.Space
	live  []*SpecialTile
}

// NewSpecialTileRegistry creates one special object per occurrence of a
// special id in level and adds it to space.
func NewSpecialTileRegistry(space *resolv.Space, level leveldata.Grid, catalog Catalog, rules *cfg.TileRules, world cfg.WorldConfig, player cfg.PlayerConfig) *SpecialTileRegistry {
	r := &SpecialTileRegistry{space: space}
	cols := level.Cols()

	for row, ids := range level {
		for col, id := range ids {
			// Out-of-range ids are reported by the TileGrid.
			if id <= 0 || id > catalog.Len() {
				continue
			}
			kind, ok := rules.Special(id)
			if !ok {
				continue
			}

			display := cellRect(col, row, world.TileSize)
			s := &SpecialTile{
				ID:        id,
				Kind:      kind,
				Col:       col,
				Row:       row,
				Display:   display,
				Collision: collisionRect(catalog, id, display, world.TileSize),
				order:     row*cols + col,
			}
			if kind == cfg.SpecialTrampoline {
				s.BounceSpeed = player.TrampolineSpeed
				s.Tolerance = player.TrampolineTolerance
			}

			c := s.Collision
			s.obj = resolv.NewObject(c.X, c.Y, c.W, c.H, TagSpecial, kind.String())
			s.obj.SetShape(resolv.NewRectangle(0, 0, c.W, c.H))
			s.obj.Data = s
			space.Add(s.obj)

			r.live = append(r.live, s)
		}
	}

	return r
}

// Live returns a snapshot of the live special objects in row-major order.
// Removing objects while iterating the snapshot is safe.
func (r *SpecialTileRegistry) Live() []*SpecialTile {
	return append([]*SpecialTile(nil), r.live...)
}

// Len returns the number of live special objects.
func (r *SpecialTileRegistry) Len() int {
	return len(r.live)
}

// Count returns the number of live objects of kind.
func (r *SpecialTileRegistry) Count(kind cfg.SpecialKind) int {
	n := 0
	for _, s := range r.live {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Contains reports whether s is still live.
func (r *SpecialTileRegistry) Contains(s *SpecialTile) bool {
	return r.indexOf(s) >= 0
}

// Remove drops s from the registry and its space. It reports false if s was
// already gone.
func (r *SpecialTileRegistry) Remove(s *SpecialTile) bool {
	i := r.indexOf(s)
	if i < 0 {
		return false
	}
	r.live = append(r.live[:i], r.live[i+1:]...)
	r.space.Remove(s.obj)
	return true
}

// Clear removes every live object.
func (r *SpecialTileRegistry) Clear() {
	for _, s := range r.live {
		r.space.Remove(s.obj)
	}
	r.live = nil
}

func (r *SpecialTileRegistry) indexOf(s *SpecialTile) int {
	for i, live := range r.live {
		if live == s {
			return i
		}
	}
	return -1
}
