package components

import (
	"github.com/automoto/pixel-platformer/assets"
	"github.com/yohamta/donburi"
)

// ArtData gives renderers access to the loaded images.
type ArtData struct {
	*assets.Art
}

var Art = donburi.NewComponentType[ArtData]()
