package system

import "github.com/younwookim/sidecore/internal/domain/entity"

// Intents are velocity changes decided in the logic tick and applied to the
// actor in the physics tick.

// MoveIntent sets horizontal velocity and keeps vertical
type MoveIntent struct {
	VX float64
}

// Apply writes vx
func (i MoveIntent) Apply(a *entity.Actor) {
	a.Velocity.X = i.VX
}

// JumpIntent zeroes vertical velocity then applies an upward impulse
type JumpIntent struct {
	Force float64
}

// Apply performs the jump
func (i JumpIntent) Apply(a *entity.Actor) {
	a.Velocity.Y = 0
	a.ApplyImpulse(entity.Vec2{Y: i.Force})
}

// DashIntent drives the actor horizontally with no vertical motion
type DashIntent struct {
	Direction int // -1 for left, 1 for right
	Speed     float64
}

// Apply writes the dash velocity
func (i DashIntent) Apply(a *entity.Actor) {
	a.Velocity.X = float64(i.Direction) * i.Speed
	a.Velocity.Y = 0
}
