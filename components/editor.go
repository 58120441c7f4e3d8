package components

import (
	"github.com/automoto/pixel-platformer/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// EditorData is the state of the level editor.
type EditorData struct {
	Grid     leveldata.Grid
	Palette  []*ebiten.Image // index id-1, scaled to the editor cell size
	Selected int             // tile id painted by the left button, 0 = none
	Path     string
	Dirty    bool // painted since the last save

	Status      string // last save/clear message
	StatusTicks int
}

var Editor = donburi.NewComponentType[EditorData]()
