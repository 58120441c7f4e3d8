package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the "Level N" caption faded in and out on level start.
type BannerData struct {
	Text  string
	Fade  *gween.Sequence // alpha 0 -> 1 -> 1 -> 0
	Alpha float32
	Done  bool
}

var Banner = donburi.NewComponentType[BannerData]()
