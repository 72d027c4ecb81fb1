package system

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/sidecore/internal/domain/entity"
)

// MovingPlatform moves a kinematic actor back and forth between two points at
// constant speed. Each leg is a linear tween from 0 to 1.
type MovingPlatform struct {
	actor    *entity.Actor
	from, to entity.Vec2
	speed    float64

	tween    *gween.Tween
	forward  bool
	lastPos  entity.Vec2
	velocity entity.Vec2
}

// NewMovingPlatform places the actor at from, heading to to.
// Zero speed or coincident points give a stationary platform.
func NewMovingPlatform(actor *entity.Actor, from, to entity.Vec2, speed float64) *MovingPlatform {
	actor.GravityScale = 0
	actor.Teleport(from)

	p := &MovingPlatform{
		actor:   actor,
		from:    from,
		to:      to,
		speed:   speed,
		forward: true,
		lastPos: from,
	}
	dist := from.Dist(to)
	if speed > 0 && dist > 0 {
		p.tween = gween.New(0, 1, float32(dist/speed), ease.Linear)
	}
	return p
}

// ID returns the platform actor's entity ID
func (p *MovingPlatform) ID() entity.EntityID { return p.actor.ID }

// Actor returns the platform body
func (p *MovingPlatform) Actor() *entity.Actor { return p.actor }

// Velocity returns the last position delta over the fixed step
func (p *MovingPlatform) Velocity() entity.Vec2 { return p.velocity }

// Forward reports whether the platform is on the from -> to leg
func (p *MovingPlatform) Forward() bool { return p.forward }

// OnLogicTick does nothing; platforms only move on the physics tick
func (p *MovingPlatform) OnLogicTick(dt float64) {}

// OnPhysicsTick advances the current leg and records the velocity
func (p *MovingPlatform) OnPhysicsTick(fixedDt float64) {
	if p.tween == nil || fixedDt <= 0 {
		p.velocity = entity.Vec2{}
		p.actor.Velocity = p.velocity
		return
	}

	t, done := p.tween.Update(float32(fixedDt))
	a, b := p.from, p.to
	if !p.forward {
		a, b = b, a
	}
	newPos := a.Add(b.Sub(a).Scale(float64(t)))
	if done {
		p.forward = !p.forward
		p.tween.Reset()
	}

	p.velocity = newPos.Sub(p.lastPos).Scale(1 / fixedDt)
	p.lastPos = newPos
	p.actor.Position = newPos
	p.actor.Velocity = p.velocity
}

// PlatformSource resolves a platform handle to its current velocity
type PlatformSource interface {
	PlatformVelocity(id entity.EntityID) (entity.Vec2, bool)
}

// PlatformRideTracker remembers which moving platform an actor stands on
type PlatformRideTracker struct {
	ride   entity.PlatformRide
	source PlatformSource
}

// NewPlatformRideTracker creates a tracker resolving platforms through source
func NewPlatformRideTracker(source PlatformSource) *PlatformRideTracker {
	return &PlatformRideTracker{source: source}
}

// OnContact attaches to other when it is a moving platform and any contact
// normal points predominantly upward
func (t *PlatformRideTracker) OnContact(other entity.EntityID, isPlatform bool, normals []entity.Vec2) {
	if !isPlatform || other == entity.NoEntity {
		return
	}
	for _, n := range normals {
		if n.Y > 0.5 {
			t.ride.Attach(other)
			return
		}
	}
}

// OnContactLost clears the ride only if other is the ridden platform
func (t *PlatformRideTracker) OnContactLost(other entity.EntityID) {
	t.ride.Detach(other)
}

// OnPhysicsTick samples the ridden platform's velocity.
// A platform the source no longer knows clears the handle.
func (t *PlatformRideTracker) OnPhysicsTick(fixedDt float64) {
	if !t.ride.Riding() {
		t.ride.Velocity = entity.Vec2{}
		return
	}
	if t.source == nil {
		t.ride.Clear()
		return
	}
	v, ok := t.source.PlatformVelocity(t.ride.Platform)
	if !ok {
		t.ride.Clear()
		return
	}
	t.ride.Velocity = v
}

// Platform returns the ridden platform, NoEntity if none
func (t *PlatformRideTracker) Platform() entity.EntityID { return t.ride.Platform }

// Velocity returns the last sampled platform velocity
func (t *PlatformRideTracker) Velocity() entity.Vec2 { return t.ride.Velocity }

// Compose adds the platform velocity to v
func (t *PlatformRideTracker) Compose(v entity.Vec2) entity.Vec2 {
	return v.Add(t.ride.Velocity)
}

// Reset drops the ride
func (t *PlatformRideTracker) Reset() {
	t.ride.Clear()
}
