package systems

import (
	"testing"

	"github.com/automoto/pixel-platformer/components"
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/core"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name string
		prev bool
		curr bool
		want components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"pressed this frame", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"released this frame", true, false, components.ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			input.Previous[cfg.ActionJump] = tt.prev
			input.Current[cfg.ActionJump] = tt.curr

			got := GetAction(&input, cfg.ActionJump)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMotionInputUsesHeldKeys(t *testing.T) {
	var input components.InputData
	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionJump] = true
	input.Previous[cfg.ActionMoveRight] = true

	got := MotionInput(&input)
	want := core.Input{Left: true, Jump: true}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestEveryActionHasAKey(t *testing.T) {
	for id := cfg.ActionMoveLeft; id < cfg.ActionCount; id++ {
		if len(KeyBindings[id]) == 0 {
			t.Errorf("action %d has no key binding", id)
		}
	}
}

func TestLevelTitle(t *testing.T) {
	if got := LevelTitle(0); got != "Level 1" {
		t.Errorf("expected Level 1, got %q", got)
	}
	if got := LevelTitle(4); got != "Level 5" {
		t.Errorf("expected Level 5, got %q", got)
	}
}
