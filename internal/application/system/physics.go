package system

import "github.com/younwookim/sidecore/internal/domain/entity"

// Physics is the query surface of the collision backend.
// A nil Physics is valid: every query reports nothing.
type Physics interface {
	// OverlapAt reports whether any shape on mask lies within radius of point
	OverlapAt(point entity.Vec2, radius float64, mask entity.Layer) bool
	// Raycast returns the first hit along dir within maxDistance
	Raycast(origin, dir entity.Vec2, maxDistance float64, mask entity.Layer) (entity.RayHit, bool)
}

// GroundMask is the set of layers an actor can stand on or bump into
const GroundMask = entity.LayerGround | entity.LayerPlatform

// Contact is a collision contact seen from the receiving entity.
// Normal points from the other body toward the receiver.
type Contact struct {
	Other  entity.EntityID
	Layer  entity.Layer
	Normal entity.Vec2
}

// Standing reports whether the receiver rests on top of the other body
func (c Contact) Standing() bool {
	return c.Normal.Y > 0.5
}

// Side reports whether the contact is predominantly horizontal
func (c Contact) Side() bool {
	return c.Normal.X > 0.5 || c.Normal.X < -0.5
}

// ContactListener receives contact events from the physics step.
// self is the entity the contact is reported for.
type ContactListener interface {
	OnContactBegin(self entity.EntityID, c Contact)
	OnContactStay(self entity.EntityID, c Contact)
	OnContactEnd(self, other entity.EntityID)
}

// BodyKind selects how the backend moves a body
type BodyKind int

const (
	// BodyDynamic bodies are integrated by the backend and pushed by solids
	BodyDynamic BodyKind = iota
	// BodyKinematic bodies follow their actor's position and are never pushed
	BodyKinematic
)

func overlapAt(p Physics, point entity.Vec2, radius float64, mask entity.Layer) bool {
	if p == nil || mask == entity.LayerNone {
		return false
	}
	return p.OverlapAt(point, radius, mask)
}

func raycast(p Physics, origin, dir entity.Vec2, maxDistance float64, mask entity.Layer) (entity.RayHit, bool) {
	if p == nil || mask == entity.LayerNone || maxDistance <= 0 {
		return entity.RayHit{}, false
	}
	return p.Raycast(origin, dir, maxDistance, mask)
}

func approach(current, target, maxDelta float64) float64 {
	if current < target {
		current += maxDelta
		if current > target {
			current = target
		}
	} else if current > target {
		current -= maxDelta
		if current < target {
			current = target
		}
	}
	return current
}
