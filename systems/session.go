package systems

import (
	"fmt"

	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession runs one simulation step and forwards its side effects:
// sounds to the audio queue, level changes to the banner and the saved
// progress.
func UpdateSession(e *ecs.ECS) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		level.Session = level.Controller.Restart(level.Session)
	}

	next, res := level.Controller.Step(level.Session, MotionInput(input))
	level.Session = next
	level.LastStep = res

	for _, sound := range res.Sounds {
		PlaySFX(e, sound)
	}

	if res.LevelChanged {
		ShowBanner(e, LevelTitle(next.LevelIndex))
		if next.LevelIndex > level.Reached {
			level.Reached = next.LevelIndex
			SaveProgress(level.Reached)
		}
	}
}

// LevelTitle is the banner text for a level index.
func LevelTitle(index int) string {
	return fmt.Sprintf("Level %d", index+1)
}
