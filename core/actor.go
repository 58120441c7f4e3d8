package core

import (
	cfg "github.com/automoto/pixel-platformer/config"
	"github.com/solarlune/resolv"
)

// Actor is the player. Its position is the top-left of the sprite; the
// collision box is always derived from it, so it stays at the same offset
// inside the sprite whatever moves the actor.
type Actor struct {
	X, Y        float64
	VelY        float64
	Airborne    bool
	JumpLatched bool
	Facing      int // cfg.DirectionLeft or cfg.DirectionRight

	Frame        int // walk animation frame
	FrameCounter int

	Coins int

	dims   cfg.PlayerConfig
	reach  float64
	sensor *resolv.Object
}

// NewActor creates an airborne actor at (x, y) facing right.
func NewActor(x, y float64, player cfg.PlayerConfig) *Actor {
	a := &Actor{
		X:        x,
		Y:        y,
		Airborne: true,
		Facing:   cfg.DirectionRight,
		dims:     player,
		reach:    maxStep(player) + 1,
	}
	c := a.Collision()
	a.sensor = resolv.NewObject(c.X-a.reach, c.Y-a.reach, c.W+2*a.reach, c.H+2*a.reach, TagPlayer)
	a.sensor.Data = a
	return a
}

// maxStep is the furthest the actor can travel along either axis in one tick.
func maxStep(p cfg.PlayerConfig) float64 {
	m := p.WalkSpeed
	for _, v := range []float64{p.JumpSpeed, p.TrampolineSpeed, p.MaxFallSpeed} {
		if v > m {
			m = v
		}
	}
	return m
}

// Sprite returns the sprite rectangle.
func (a *Actor) Sprite() Rect {
	return Rect{X: a.X, Y: a.Y, W: a.dims.SpriteWidth, H: a.dims.SpriteHeight}
}

// Collision returns the collision rectangle.
func (a *Actor) Collision() Rect {
	return a.collisionAt(a.X, a.Y)
}

// collisionAt returns the collision rectangle the actor would have with its
// sprite at (x, y).
func (a *Actor) collisionAt(x, y float64) Rect {
	return Rect{
		X: x + a.dims.CollisionOffsetX,
		Y: y + a.dims.CollisionOffsetY,
		W: a.dims.CollisionWidth,
		H: a.dims.CollisionHeight,
	}
}

// MoveTo places the sprite's top-left corner at (x, y).
func (a *Actor) MoveTo(x, y float64) {
	a.X, a.Y = x, y
	a.syncSensor()
}

// Respawn moves the actor to (x, y) and stops its vertical motion.
func (a *Actor) Respawn(x, y float64) {
	a.MoveTo(x, y)
	a.VelY = 0
}

// Sensor returns the broad-phase object that follows the actor. It is padded
// by one tick of maximum travel on every side.
func (a *Actor) Sensor() *resolv.Object {
	return a.sensor
}

// attach moves the sensor into space, leaving whatever space held it before.
func (a *Actor) attach(space *resolv.Space) {
	if a.sensor.Space != nil {
		a.sensor.Space.Remove(a.sensor)
	}
	space.Add(a.sensor)
	a.syncSensor()
}

func (a *Actor) syncSensor() {
	c := a.Collision()
	a.sensor.X = c.X - a.reach
	a.sensor.Y = c.Y - a.reach
	if a.sensor.Space != nil {
		a.sensor.Update()
	}
}
