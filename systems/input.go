package systems

import (
	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// KeyBindings maps each action to the keys that trigger it.
var KeyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	cfg.ActionMoveRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	cfg.ActionJump:        {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
	cfg.ActionRestart:     {ebiten.KeyR},
	cfg.ActionToggleDebug: {ebiten.KeyF1},
	cfg.ActionToggleMute:  {ebiten.KeyM},
	cfg.ActionEditorSave:  {ebiten.KeyS},
	cfg.ActionEditorClear: {ebiten.KeyR},
}

// UpdateInput polls the keyboard into the Input component.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range KeyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// MotionInput is the held-key snapshot the simulation step consumes.
func MotionInput(input *components.InputData) core.Input {
	return core.Input{
		Left:  input.Current[cfg.ActionMoveLeft],
		Right: input.Current[cfg.ActionMoveRight],
		Jump:  input.Current[cfg.ActionJump],
	}
}
