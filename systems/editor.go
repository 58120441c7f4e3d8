package systems

import (
	"fmt"
	"log"

	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/fonts"
	"github.com/automoto/pixel-platformer/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// How long a save/clear message stays on screen, in ticks
const editorStatusTicks = 120

var editorDrawOp = &ebiten.DrawImageOptions{}

// gridOffsetY centres the level grid vertically in the editor window.
func gridOffsetY() int {
	return (cfg.Editor.Height - cfg.World.Rows*cfg.Editor.CellSize) / 2
}

// GridCell maps a window position to a level cell.
func GridCell(x, y int) (col, row int, ok bool) {
	size := cfg.Editor.CellSize
	dx, dy := x-cfg.Editor.GridOffsetX, y-gridOffsetY()
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	col, row = dx/size, dy/size
	if col >= cfg.World.Cols || row >= cfg.World.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// InPalette reports whether a window position lies in the palette strip.
func InPalette(x, y int) bool {
	return x >= cfg.Editor.PaletteColumn*cfg.Editor.CellSize && x < cfg.Editor.Width &&
		y >= 0 && y < cfg.Editor.Height
}

// PaletteSlot returns the top-left corner of the palette entry for tile id.
// Tiles fill columns of PaletteRows from top to bottom.
func PaletteSlot(id int) (x, y int) {
	i := id - 1
	size := cfg.Editor.CellSize
	col := cfg.Editor.PaletteColumn + i/cfg.Editor.PaletteRows
	row := i % cfg.Editor.PaletteRows
	return col * size, row * size
}

// PaletteTile returns the tile id under a window position, given count
// palette entries.
func PaletteTile(x, y, count int) (int, bool) {
	if !InPalette(x, y) {
		return 0, false
	}
	size := cfg.Editor.CellSize
	col := x/size - cfg.Editor.PaletteColumn
	row := y / size
	if row >= cfg.Editor.PaletteRows {
		return 0, false
	}
	id := col*cfg.Editor.PaletteRows + row + 1
	if id < 1 || id > count {
		return 0, false
	}
	return id, true
}

// UpdateEditor handles palette selection, painting and the save/clear keys.
func UpdateEditor(e *ecs.ECS) {
	entry, ok := components.Editor.First(e.World)
	if !ok {
		return
	}
	ed := components.Editor.Get(entry)
	input := getOrCreateInput(e)

	if ed.StatusTicks > 0 {
		ed.StatusTicks--
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if id, ok := PaletteTile(mx, my, len(ed.Palette)); ok {
			ed.Selected = id
		}
	}
	if col, row, ok := GridCell(mx, my); ok {
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && ed.Selected > 0:
			paint(ed, col, row, ed.Selected)
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
			paint(ed, col, row, 0)
		}
	}

	if GetAction(input, cfg.ActionEditorSave).JustPressed {
		if SaveEditorLevel(ed) {
			PlaySFX(e, cfg.SoundEditorSave)
		}
	}
	if GetAction(input, cfg.ActionEditorClear).JustPressed {
		ClearEditorLevel(ed)
	}
}

func paint(ed *components.EditorData, col, row, id int) {
	if ed.Grid[row][col] == id {
		return
	}
	ed.Grid[row][col] = id
	ed.Dirty = true
}

// ClearEditorLevel empties every cell.
func ClearEditorLevel(ed *components.EditorData) {
	ed.Grid = leveldata.NewGrid(cfg.World.Rows, cfg.World.Cols)
	ed.Dirty = true
	setStatus(ed, "Level cleared")
}

// SaveEditorLevel validates the grid and appends it to the level file as the
// next level_N entry. Failures are logged and shown in the status line.
func SaveEditorLevel(ed *components.EditorData) bool {
	if err := ed.Grid.Validate(cfg.World.Rows, cfg.World.Cols, len(ed.Palette)); err != nil {
		log.Printf("Warning: not saving level: %v", err)
		setStatus(ed, "Not saved: "+err.Error())
		return false
	}

	level, err := leveldata.AppendToFile(ed.Path, ed.Grid)
	if err != nil {
		log.Printf("Warning: could not save level: %v", err)
		setStatus(ed, "Save failed")
		return false
	}

	log.Printf("Saved %s (%s) to %s", level.Name, level.ID, ed.Path)
	ed.Dirty = false
	setStatus(ed, fmt.Sprintf("Saved as %s", level.Name))
	return true
}

func setStatus(ed *components.EditorData, msg string) {
	ed.Status = msg
	ed.StatusTicks = editorStatusTicks
}

// DrawEditor renders the palette, the level grid and the status line.
func DrawEditor(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Editor.First(e.World)
	if !ok {
		return
	}
	ed := components.Editor.Get(entry)
	screen.Fill(cfg.Editor.BackgroundColor)

	size := float32(cfg.Editor.CellSize)

	// Palette
	for i, img := range ed.Palette {
		x, y := PaletteSlot(i + 1)
		drawEditorTile(screen, img, x, y)
		vector.StrokeRect(screen, float32(x), float32(y), size, size, 1, cfg.Editor.PaletteBorder, false)
	}
	if ed.Selected > 0 {
		x, y := PaletteSlot(ed.Selected)
		vector.StrokeRect(screen, float32(x), float32(y), size, size, 3, cfg.Editor.SelectionColor, false)
	}

	// Level
	ox, oy := cfg.Editor.GridOffsetX, gridOffsetY()
	for row, ids := range ed.Grid {
		for col, id := range ids {
			if id < 1 || id > len(ed.Palette) {
				continue
			}
			drawEditorTile(screen, ed.Palette[id-1], ox+col*cfg.Editor.CellSize, oy+row*cfg.Editor.CellSize)
		}
	}

	// Grid lines
	w := float32(cfg.World.Cols) * size
	h := float32(cfg.World.Rows) * size
	for row := 0; row <= cfg.World.Rows; row++ {
		y := float32(oy) + float32(row)*size
		vector.StrokeLine(screen, float32(ox), y, float32(ox)+w, y, 1, cfg.Editor.GridLineColor, false)
	}
	for col := 0; col <= cfg.World.Cols; col++ {
		x := float32(ox) + float32(col)*size
		vector.StrokeLine(screen, x, float32(oy), x, float32(oy)+h, 1, cfg.Editor.GridLineColor, false)
	}

	face := fonts.Small.Get()
	text.Draw(screen, "LMB paint  RMB erase  S save  R clear", face, 16, 24, cfg.Black)
	if ed.StatusTicks > 0 {
		text.Draw(screen, ed.Status, face, 16, 44, cfg.Black)
	}
}

func drawEditorTile(screen, img *ebiten.Image, x, y int) {
	if img == nil {
		return
	}
	editorDrawOp.GeoM.Reset()
	editorDrawOp.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, editorDrawOp)
}
