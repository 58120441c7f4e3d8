package core

import (
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/shared/gamemath"
)

// Input is the snapshot of held keys for one step.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// MotionIntegrator turns input and gravity into a tentative displacement.
type MotionIntegrator struct {
	Player cfg.PlayerConfig
}

// Step advances a's velocity, jump latch and walk animation by one tick and
// returns the displacement before collision clipping. jumped reports whether
// a jump started this tick.
func (m MotionIntegrator) Step(a *Actor, in Input) (dx, dy float64, jumped bool) {
	p := m.Player

	dx = gamemath.WalkSpeed(in.Left, in.Right, p.WalkSpeed)
	if in.Right {
		a.FrameCounter++
		a.Facing = cfg.DirectionRight
	}
	if in.Left {
		a.FrameCounter++
		a.Facing = cfg.DirectionLeft
	}

	if in.Jump {
		if !a.JumpLatched && !a.Airborne {
			a.VelY = -p.JumpSpeed
			a.JumpLatched = true
			jumped = true
		}
	} else {
		a.JumpLatched = false
	}

	m.animate(a, in)

	a.VelY = gamemath.ApplyGravity(a.VelY, p.Gravity, p.MaxFallSpeed)
	dy = a.VelY
	return dx, dy, jumped
}

func (m MotionIntegrator) animate(a *Actor, in Input) {
	if in.Left == in.Right {
		a.FrameCounter = 0
		a.Frame = 0
		return
	}
	if a.FrameCounter > m.Player.WalkFrameDelay {
		a.FrameCounter = 0
		a.Frame++
		if a.Frame >= m.Player.WalkFrames {
			a.Frame = 0
		}
	}
}
