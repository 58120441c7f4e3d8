// Package leveldata provides level grid storage shared between the game and
// the level editor. It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrBadGridSize is returned when a grid does not have the expected shape.
	ErrBadGridSize = errors.New("grid has wrong size")
	// ErrUnknownTile is returned when a grid references an id outside the catalog.
	ErrUnknownTile = errors.New("tile id outside catalog")
)

// Grid is a row-major grid of tile ids; 0 marks an empty cell.
type Grid [][]int

// NewGrid returns an empty rows x cols grid.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for y := range g {
		g[y] = make([]int, cols)
	}
	return g
}

// Clone returns a deep copy so callers can edit without touching the source.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = append([]int(nil), row...)
	}
	return c
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the width of the first row.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Validate checks the grid is rows x cols and every id is in 0..maxID.
// A non-positive maxID skips the id check.
func (g Grid) Validate(rows, cols, maxID int) error {
	if len(g) != rows {
		return fmt.Errorf("%w: %d rows, want %d", ErrBadGridSize, len(g), rows)
	}
	for y, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadGridSize, y, len(row), cols)
		}
		if maxID <= 0 {
			continue
		}
		for x, id := range row {
			if id < 0 || id > maxID {
				return fmt.Errorf("%w: id %d at row %d, col %d", ErrUnknownTile, id, y, x)
			}
		}
	}
	return nil
}

// Level is one named level entry.
type Level struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Grid Grid      `json:"grid"`
}

// File is the on-disk level collection, in play order.
type File struct {
	Levels []Level `json:"levels"`
}

// Grids returns the level grids in play order.
func (f *File) Grids() []Grid {
	grids := make([]Grid, len(f.Levels))
	for i, l := range f.Levels {
		grids[i] = l.Grid
	}
	return grids
}
