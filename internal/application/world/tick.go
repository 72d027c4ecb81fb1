package world

import (
	"github.com/younwookim/sidecore/internal/application/system"
	"github.com/younwookim/sidecore/internal/domain/entity"
)

// OnLogicTick advances the clock and runs every controller's decision step.
// Input is polled once, then: player movement, health, animation, then
// enemies in spawn order.
func (w *World) OnLogicTick(dt float64) {
	w.clock.Advance(dt)
	w.poll()

	if p := w.player; p != nil {
		p.Movement.OnLogicTick(dt)
		p.Health.OnLogicTick(dt)
		p.Animation.OnLogicTick(dt)
	}
	for _, e := range w.enemies {
		e.AI.OnLogicTick(dt)
		e.Health.OnLogicTick(dt)
	}
}

// OnPhysicsTick moves platforms, writes controller velocities, steps the
// backend and then resolves damage from the new positions.
func (w *World) OnPhysicsTick(fixedDt float64) {
	for _, p := range w.platforms {
		p.OnPhysicsTick(fixedDt)
	}

	if p := w.player; p != nil {
		p.Ride.OnPhysicsTick(fixedDt)
		p.Movement.OnPhysicsTick(fixedDt)
		p.Health.OnPhysicsTick(fixedDt)
		w.setCarrier(p.Actor.ID, p.Ride, p.Health.Alive())
	}
	for _, e := range w.enemies {
		e.Ride.OnPhysicsTick(fixedDt)
		e.AI.OnPhysicsTick(fixedDt)
		e.Health.OnPhysicsTick(fixedDt)
		w.setCarrier(e.Actor.ID, e.Ride, e.Health.Alive())
	}

	if w.backend != nil {
		w.backend.Step(fixedDt, w)
	} else {
		w.integrate(fixedDt)
	}

	w.resolveContactDamage()
	w.resolveAttack()
	w.resolveHazards()
}

// setCarrier pushes the ridden platform's velocity into the backend.
// Dying actors hold their stage velocity and do not ride.
func (w *World) setCarrier(id entity.EntityID, ride *system.PlatformRideTracker, alive bool) {
	if w.backend == nil {
		return
	}
	v := entity.Vec2{}
	if alive {
		v = ride.Compose(v)
	}
	w.backend.SetCarrier(id, v)
}

// integrate moves actors by their velocity when there is no backend
func (w *World) integrate(fixedDt float64) {
	g := w.tuning.Physics.Gravity
	move := func(a *entity.Actor, v entity.Vec2) {
		a.Velocity.Y += g * a.GravityScale * fixedDt
		a.Position = a.Position.Add(a.Velocity.Add(v).Scale(fixedDt))
	}
	if p := w.player; p != nil {
		move(p.Actor, p.Ride.Velocity())
	}
	for _, e := range w.enemies {
		move(e.Actor, e.Ride.Velocity())
	}
}

// resolveContactDamage hurts the player while any live enemy body overlaps it
func (w *World) resolveContactDamage() {
	p := w.player
	if p == nil || !p.Health.Alive() {
		return
	}
	body := p.Actor.Bounds()
	for _, e := range w.enemies {
		if !e.Health.Alive() || e.Contact.Damage <= 0 {
			continue
		}
		if e.Actor.Bounds().Overlaps(body) && e.Contact.Apply(p.Health) {
			return
		}
	}
}

// resolveAttack hurts every live enemy inside the active attack volume.
// The enemy's invulnerability window stops repeat hits within one swing.
func (w *World) resolveAttack() {
	p := w.player
	if p == nil || !p.Health.Alive() {
		return
	}
	area, ok := p.Movement.AttackHitbox()
	if !ok {
		return
	}
	damage := w.tuning.Player.Attack.Damage
	if damage <= 0 {
		return
	}
	for _, e := range w.enemies {
		if e.Health.Alive() && e.Actor.Bounds().Overlaps(area) {
			e.Health.ApplyDamage(damage)
		}
	}
}

// resolveHazards resets the player on hazards and below the kill plane.
// Enemies take hazard damage or die below the kill plane.
func (w *World) resolveHazards() {
	if p := w.player; p != nil && p.Health.Alive() {
		if w.inHazard(p.Actor) || w.belowKillPlane(p.Actor) {
			if !p.Health.InstantRespawn() {
				p.Health.Kill()
			}
		}
	}
	for _, e := range w.enemies {
		if !e.Health.Alive() {
			continue
		}
		if w.belowKillPlane(e.Actor) {
			e.Health.Kill()
			continue
		}
		if w.inHazard(e.Actor) {
			e.Health.ApplyDamage(w.tuning.Physics.HazardDamage)
		}
	}
}

func (w *World) inHazard(a *entity.Actor) bool {
	body := a.Bounds()
	for _, h := range w.hazards {
		if h.Overlaps(body) {
			return true
		}
	}
	return false
}

func (w *World) belowKillPlane(a *entity.Actor) bool {
	return w.hasKillPlane && a.Position.Y < w.killPlane
}

// OnContactBegin routes a new contact to the receiver's trackers and AI
func (w *World) OnContactBegin(self entity.EntityID, c system.Contact) {
	w.onContact(self, c, true)
}

// OnContactStay keeps ride tracking current while touching
func (w *World) OnContactStay(self entity.EntityID, c system.Contact) {
	w.onContact(self, c, false)
}

// OnContactEnd drops the ride when the ridden platform is left
func (w *World) OnContactEnd(self, other entity.EntityID) {
	if p := w.player; p != nil && p.Actor.ID == self {
		p.Ride.OnContactLost(other)
		return
	}
	if e := w.enemy(self); e != nil {
		e.Ride.OnContactLost(other)
	}
}

func (w *World) onContact(self entity.EntityID, c system.Contact, begin bool) {
	isPlatform := c.Layer.Has(entity.LayerPlatform) && w.platform(c.Other) != nil
	normals := []entity.Vec2{c.Normal}

	if p := w.player; p != nil && p.Actor.ID == self {
		p.Ride.OnContact(c.Other, isPlatform, normals)
		return
	}
	if e := w.enemy(self); e != nil {
		e.Ride.OnContact(c.Other, isPlatform, normals)
		if begin {
			e.AI.OnContact(c)
		}
	}
}
