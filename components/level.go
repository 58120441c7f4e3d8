package components

import (
	"github.com/automoto/pixel-platformer/core"
	"github.com/yohamta/donburi"
)

// LevelData holds the level sequence and the session being played.
type LevelData struct {
	Controller *core.LevelController
	Session    *core.Session
	LastStep   core.StepResult

	// Highest level index reached, persisted as progress
	Reached int
}

var Level = donburi.NewComponentType[LevelData]()
